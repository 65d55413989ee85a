// internal/app/game.go
package app

import (
	"fmt"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/system"
	"go-wave-survival/internal/utils"
)

// Количество и размеры препятствий арены. Окружение статично: AI читает
// его, но никогда не мутирует.
const (
	obstacleCount     = 26
	obstacleMinRadius = 1.2
	obstacleMaxRadius = 2.8
	obstacleRingMin   = 8.0
	obstacleRingMax   = 70.0

	interWaveDelay = 3.0 // передышка между зачисткой и объявлением следующей волны
)

// Game держит всё состояние симуляции и гоняет её фиксированный тик.
// Порядок внутри тика жёсткий: таймеры → игрок → AI всех врагов → бой →
// аптечки → проверка зачистки волны. Убийство, опустошившее ростер на этом
// тике, видно этой же проверке.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Scheduler       *system.Scheduler
	Rng             *utils.PRNGService

	SteeringSystem   *system.SteeringSystem
	AISystem         *system.EnemyAISystem
	CombatSystem     *system.CombatSystem
	WaveSystem       *system.WaveSystem
	PickupSystem     *system.HealthPackSystem
	PlayerSystem     *system.PlayerSystem
	RenderSystem     *system.RenderSystem

	Tuning config.Tuning

	gameTime float64
	score    int

	// Замах: одна цель за замах, защёлка сбрасывается при новом замахе.
	swingTimer    float64
	swingCooldown float64
	swingHit      bool
}

// NewGame собирает игру. Битая конфигурация (пустые таблицы волн/врагов)
// валит создание с ошибкой — тихого старта без врагов не бывает.
func NewGame(seed int64, tuning config.Tuning) (*Game, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	scheduler := system.NewScheduler()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Scheduler:       scheduler,
		Rng:             rng,
		Tuning:          tuning,
	}

	g.PlayerSystem = system.NewPlayerSystem(ecs, dispatcher)
	g.SteeringSystem = system.NewSteeringSystem(ecs, rng, tuning)
	g.AISystem = system.NewEnemyAISystem(ecs, dispatcher, g.SteeringSystem, g.PlayerSystem, tuning)
	g.CombatSystem = system.NewCombatSystem(ecs, dispatcher, rng, tuning.HitFlashDuration)

	waveSystem, err := system.NewWaveSystem(ecs, dispatcher, rng, scheduler, tuning)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize wave system: %w", err)
	}
	g.WaveSystem = waveSystem

	g.PickupSystem = system.NewHealthPackSystem(ecs, dispatcher, g.CombatSystem, g.PlayerSystem, tuning)
	g.RenderSystem = system.NewRenderSystem(ecs, g.PlayerSystem)

	// Счёт ведёт слушатель убийств, а не перехват чужих вызовов.
	dispatcher.Subscribe(event.EnemyKilled, event.ListenerFunc(g.onEnemyKilled))

	g.populateObstacles()
	g.WaveSystem.StartNextWave()

	return g, nil
}

// populateObstacles расставляет статическую геометрию арены. Центр
// оставляем чистым — там стартует игрок.
func (g *Game) populateObstacles() {
	for i := 0; i < obstacleCount; i++ {
		id := g.ECS.NewEntity()
		pos := g.Rng.Annulus(utils.Vec2{}, obstacleRingMin, obstacleRingMax)
		g.ECS.Positions[id] = &component.Position{Vec2: pos}
		g.ECS.Obstacles[id] = &component.Obstacle{
			Radius: g.Rng.InRange(obstacleMinRadius, obstacleMaxRadius),
		}
	}
}

// Update — один тик симуляции.
func (g *Game) Update(deltaTime float64) {
	if g.ECS.Phase == component.PhaseGameOver {
		return
	}

	g.gameTime += deltaTime
	g.ECS.GameTime = g.gameTime

	// Отложенные действия (спавн волны и т.п.) срабатывают до логики тика.
	g.Scheduler.Advance(deltaTime)

	g.PlayerSystem.Update(deltaTime)

	// Сначала движение всех врагов — бой читает уже финальные позиции тика.
	g.AISystem.Update(deltaTime)

	g.updateSwing(deltaTime)
	g.PickupSystem.Update()

	// Проверка зачистки строго последней: смерть, опустошившая ростер на
	// этом тике, обязана быть видна этой же проверке.
	if g.WaveSystem.Update() {
		wave := g.ECS.Wave
		bonus := wave.Number * config.WaveClearScoreBase
		g.addScore(bonus)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.WaveCleared,
			Data: event.WavePayload{Number: wave.Number, Score: g.score},
		})
		g.Scheduler.After(interWaveDelay, func() {
			g.WaveSystem.StartNextWave()
		})
	}
}

// TriggerSwing запускает замах, если кулдаун истёк. Сам замах — короткое
// окно, в котором может зарегистрироваться максимум одно попадание.
func (g *Game) TriggerSwing() {
	if g.ECS.Phase != component.PhasePlaying {
		return
	}
	if g.swingCooldown > 0 {
		return
	}
	g.swingCooldown = config.PlayerSwingCooldown
	g.swingTimer = config.PlayerSwingWindow
	g.swingHit = false
}

func (g *Game) updateSwing(deltaTime float64) {
	if g.swingCooldown > 0 {
		g.swingCooldown -= deltaTime
	}
	if g.swingTimer <= 0 {
		return
	}
	g.swingTimer -= deltaTime

	if g.swingHit {
		return
	}
	id, ok := g.CombatSystem.ResolvePlayerAttack(
		g.PlayerSystem.Position(),
		g.PlayerSystem.Facing(),
		config.PlayerSwingArcCos,
	)
	if !ok {
		return
	}
	g.CombatSystem.ApplyDamage(id, config.PlayerSwingDamage)
	g.swingHit = true
}

func (g *Game) onEnemyKilled(e event.Event) {
	payload, ok := e.Data.(event.EnemyPayload)
	if !ok {
		return
	}
	g.addScore(defs.LookupEnemy(payload.Class).ScoreValue)
}

func (g *Game) addScore(delta int) {
	if delta == 0 {
		return
	}
	g.score += delta
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.ScoreChanged,
		Data: event.ScorePayload{Delta: delta, Total: g.score},
	})
}

// Score возвращает текущий счёт.
func (g *Game) Score() int {
	return g.score
}

// GetGameTime возвращает игровое время.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// WaveNumber возвращает номер активной волны (0, если волны ещё нет).
func (g *Game) WaveNumber() int {
	if g.ECS.Wave == nil {
		return 0
	}
	return g.ECS.Wave.Number
}

// IsGameOver сообщает, погиб ли игрок.
func (g *Game) IsGameOver() bool {
	return g.ECS.Phase == component.PhaseGameOver
}

// MovePlayer и TurnPlayer — тонкие прокладки для слоя ввода.
func (g *Game) MovePlayer(delta utils.Vec2) {
	if g.ECS.Phase != component.PhasePlaying {
		return
	}
	g.PlayerSystem.Move(delta)
}

func (g *Game) TurnPlayer(deltaAngle float64) {
	if g.ECS.Phase != component.PhasePlaying {
		return
	}
	g.PlayerSystem.Turn(deltaAngle)
}
