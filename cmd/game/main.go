// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/state"
)

const startFromGame = false // true — начинать с игры, false — с меню

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	seed := flag.Int64("seed", 0, "PRNG seed, 0 = current time")
	tuningPath := flag.String("tuning", "tuning.yaml", "path to tuning overrides (optional)")
	enemiesPath := flag.String("enemies", "", "path to enemy definitions JSON (optional)")
	wavesPath := flag.String("waves", "", "path to wave patterns JSON (optional)")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	// Внешние данные грузим до создания окна: битый конфиг валит процесс сразу.
	tuning, err := config.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatalf("tuning: %v", err)
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatalf("enemy definitions: %v", err)
		}
	}
	if *wavesPath != "" {
		if err := defs.LoadWaveDefinitions(*wavesPath); err != nil {
			log.Fatalf("wave patterns: %v", err)
		}
	}
	if err := defs.Validate(); err != nil {
		log.Fatalf("definitions: %v", err)
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, *seed, tuning))
	} else {
		sm.SetState(state.NewMenuState(sm, *seed, tuning))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Survival")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
