// internal/system/wave.go
package system

import (
	"fmt"
	"math"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/utils"
)

// WaveSystem управляет жизненным циклом волн:
// Pending → Spawning → Active → Cleared. Спавн отложен на WaveSpawnDelay,
// чтобы успел отыграть баннер волны; защита от гонки "волна зачищена до
// спавна" — минимальный возраст волны, а не обработка исключений.
type WaveSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	scheduler  *Scheduler
	tuning     config.Tuning

	// Локальная копия таблицы волн: дальше авторских записей таблица
	// дорастает синтезированными конфигами и никогда не усыхает.
	patterns map[int]defs.WaveDefinition
}

// NewWaveSystem валидирует таблицы на старте: пустая или битая конфигурация
// валит запуск, а не молча спавнит ноль врагов.
func NewWaveSystem(ecs *entity.ECS, dispatcher *event.Dispatcher, rng *utils.PRNGService, scheduler *Scheduler, tuning config.Tuning) (*WaveSystem, error) {
	if err := defs.Validate(); err != nil {
		return nil, fmt.Errorf("wave system configuration: %w", err)
	}
	patterns := make(map[int]defs.WaveDefinition, len(defs.WavePatterns))
	for n, def := range defs.WavePatterns {
		patterns[n] = def
	}
	return &WaveSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		rng:        rng,
		scheduler:  scheduler,
		tuning:     tuning,
		patterns:   patterns,
	}, nil
}

// StartNextWave объявляет следующую волну и планирует её спавн.
// Вызывающая сторона обязана потребить ровно одно true из Update() перед
// повторным вызовом, иначе задвоит волны.
func (s *WaveSystem) StartNextWave() *component.Wave {
	number := 1
	if s.ecs.Wave != nil {
		number = s.ecs.Wave.Number + 1
	}

	wave := &component.Wave{
		Number:    number,
		Config:    s.configFor(number),
		State:     component.WaveSpawning,
		StartedAt: s.ecs.GameTime,
	}
	s.ecs.Wave = wave

	s.dispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WavePayload{Number: number},
	})

	// Отложенный спавн: к моменту срабатывания игра могла рестартовать,
	// поэтому проверяем, что волна всё ещё та самая.
	s.scheduler.After(s.tuning.WaveSpawnDelay, func() {
		if s.ecs.Wave != wave || wave.State != component.WaveSpawning {
			return
		}
		s.spawnWaveEnemies(wave)
	})

	return wave
}

// configFor возвращает состав волны number. Волны дальше авторской таблицы
// синтезируются масштабированием последней записи: regular ×1.2,
// tank ×1.2 +1, runner ×1.3 +2 (с округлением вниз).
func (s *WaveSystem) configFor(number int) defs.WaveDefinition {
	if def, ok := s.patterns[number]; ok {
		return def
	}

	last := len(s.patterns) // таблица сплошная с единицы
	def := s.patterns[last]
	for n := last + 1; n <= number; n++ {
		def = defs.WaveDefinition{
			Regular: int(math.Floor(float64(def.Regular) * 1.2)),
			Tank:    int(math.Floor(float64(def.Tank)*1.2)) + 1,
			Runner:  int(math.Floor(float64(def.Runner)*1.3)) + 2,
		}
		s.patterns[n] = def
	}
	return def
}

// spawnWaveEnemies создаёт врагов волны. Сначала защитный сброс: в ростере
// не должно быть ничего от прошлой волны.
func (s *WaveSystem) spawnWaveEnemies(wave *component.Wave) {
	for _, id := range s.ecs.EnemyIDs() {
		s.ecs.RemoveEnemy(id)
	}

	for i := 0; i < wave.Config.Regular; i++ {
		s.spawnEnemy(defs.ClassRegular)
	}
	for i := 0; i < wave.Config.Tank; i++ {
		s.spawnEnemy(defs.ClassTank)
	}
	for i := 0; i < wave.Config.Runner; i++ {
		s.spawnEnemy(defs.ClassRunner)
	}

	wave.State = component.WaveActive
}

// spawnEnemy создаёт одного врага в случайной точке кольца спавна его
// класса. Кольца авторские: танки дальше всех, бегуны ближе.
func (s *WaveSystem) spawnEnemy(class defs.EnemyClass) {
	def := defs.LookupEnemy(class)
	id := s.ecs.NewEntity()

	spawnPos := s.rng.Annulus(utils.Vec2{}, def.SpawnMinRadius, def.SpawnMaxRadius)
	s.ecs.Positions[id] = &component.Position{Vec2: spawnPos}
	s.ecs.Enemies[id] = component.NewEnemy(def)

	s.dispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyPayload{ID: id, Class: class, Position: spawnPos},
	})
}

// Update вызывается раз в тик симуляции. Возвращает true ровно один раз —
// на том тике, когда живых врагов не осталось И волна прожила минимальный
// срок (защита от гонки с отложенным спавном). Во всех остальных случаях,
// включая уже зачищенную волну, возвращает false.
func (s *WaveSystem) Update() bool {
	wave := s.ecs.Wave
	if wave == nil || wave.State != component.WaveActive {
		return false
	}
	if s.ecs.GameTime-wave.StartedAt < s.tuning.WaveMinDuration {
		return false
	}
	if s.ecs.LivingEnemyCount() > 0 {
		return false
	}

	wave.State = component.WaveCleared
	return true
}
