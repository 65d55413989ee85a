// internal/audio/sound_manager.go
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-wave-survival/internal/event"
)

const sampleRate = beep.SampleRate(48000)

// SoundManager — звуковой коллаборатор. Подписывается на события симуляции
// и проигрывает короткие синтезированные сигналы; ядро его не ждёт.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Ошибка инициализации не фатальна:
// менеджер просто остаётся немым.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Subscribe вешает менеджер на интересные ему события.
func (sm *SoundManager) Subscribe(dispatcher *event.Dispatcher) {
	for _, t := range []event.EventType{
		event.EnemyAttack,
		event.EnemyHit,
		event.EnemyKilled,
		event.PlayerDamaged,
		event.PickupConsumed,
		event.WaveStarted,
	} {
		dispatcher.Subscribe(t, sm)
	}
}

// OnEvent реализует event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyAttack:
		sm.play(180, 90, time.Millisecond*120)
	case event.EnemyHit:
		sm.play(320, 220, time.Millisecond*80)
	case event.EnemyKilled:
		sm.play(240, 60, time.Millisecond*300)
	case event.PlayerDamaged:
		sm.play(110, 70, time.Millisecond*200)
	case event.PickupConsumed:
		if p, ok := e.Data.(event.PickupPayload); ok && p.Used {
			sm.play(520, 880, time.Millisecond*150)
		}
	case event.WaveStarted:
		sm.play(330, 660, time.Millisecond*400)
	}
}

// play запускает короткий свип частоты с затухающей огибающей.
func (sm *SoundManager) play(fromHz, toHz float64, d time.Duration) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	streamer := beep.Take(sampleRate.N(d), newSweepGenerator(sampleRate, fromHz, toHz, d))
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// sweepGenerator — синусоида, скользящая от fromHz к toHz с экспоненциальным
// затуханием.
type sweepGenerator struct {
	sr       beep.SampleRate
	fromHz   float64
	toHz     float64
	total    int
	produced int
	phase    float64
}

func newSweepGenerator(sr beep.SampleRate, fromHz, toHz float64, d time.Duration) *sweepGenerator {
	return &sweepGenerator{
		sr:     sr,
		fromHz: fromHz,
		toHz:   toHz,
		total:  sr.N(d),
	}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.produced) / float64(g.total)
		if t > 1 {
			t = 1
		}
		freq := g.fromHz + (g.toHz-g.fromHz)*t
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-3 * t)
		v := math.Sin(g.phase) * envelope * 0.25
		samples[i][0] = v
		samples[i][1] = v
		g.produced++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
