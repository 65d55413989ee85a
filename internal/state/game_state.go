// internal/state/game_state.go
package state

import (
	"log"

	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	game "go-wave-survival/internal/app"
	"go-wave-survival/internal/audio"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/event"
	"go-wave-survival/internal/ui"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *game.Game
	sound         *audio.SoundManager
	waveIndicator *ui.WaveIndicator
	healthBar     *ui.PlayerHealthIndicator
	scorePanel    *ui.ScorePanel
	seed          int64
	tuning        config.Tuning
	announceTimer float64
}

func NewGameState(sm *StateMachine, seed int64, tuning config.Tuning) *GameState {
	gameLogic, err := game.NewGame(seed, tuning)
	if err != nil {
		// Конфигурация проверяется на старте процесса; сюда мы попадаем
		// только при порче данных в рантайме.
		log.Fatalf("game init: %v", err)
	}

	face := basicfont.Face7x13

	sound := audio.NewSoundManager()
	sound.Subscribe(gameLogic.EventDispatcher)

	gs := &GameState{
		sm:            sm,
		game:          gameLogic,
		sound:         sound,
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 40, face),
		healthBar:     ui.NewPlayerHealthIndicator(20, float32(config.ScreenHeight-50)),
		scorePanel:    ui.NewScorePanel(config.ScreenWidth-220, 30, face),
		seed:          seed,
		tuning:        tuning,
	}

	// Анонс волны держим пару секунд после каждого старта.
	gameLogic.EventDispatcher.Subscribe(event.WaveStarted, event.ListenerFunc(func(event.Event) {
		gs.announceTimer = 2.0
	}))

	return gs
}

func (g *GameState) Enter() {
	if g.announceTimer == 0 {
		g.announceTimer = 2.0
	}
	// Возврат из паузы проходит через Enter, поднимаем звук заново.
	if err := g.sound.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	}
}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleInput(deltaTime)
	g.game.Update(deltaTime)

	if g.announceTimer > 0 {
		g.announceTimer -= deltaTime
	}

	if g.game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.game.Score(), g.game.WaveNumber(), g.seed, g.tuning))
	}
}

// handleInput переводит клавиатуру/мышь в команды симуляции.
// WASD двигает игрока относительно его взгляда, стрелки поворачивают.
func (g *GameState) handleInput(deltaTime float64) {
	forward := 0.0
	strafe := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		forward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		forward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe -= 1
	}
	if forward != 0 || strafe != 0 {
		dir := g.game.PlayerSystem.Facing()
		// Perp смотрит влево от взгляда, D — шаг вправо.
		move := dir.Scale(forward).Add(dir.Perp().Scale(-strafe))
		if move.LenSq() > 0 {
			g.game.MovePlayer(move.Normalized().Scale(config.PlayerMoveSpeed * deltaTime))
		}
	}

	turn := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyE) {
		turn += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		turn -= 1
	}
	if turn != 0 {
		g.game.TurnPlayer(turn * config.PlayerTurnSpeed * deltaTime)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.TriggerSwing()
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.game.RenderSystem.Draw(screen)

	g.waveIndicator.Draw(screen, g.game.WaveNumber(), g.announceTimer > 0)

	healing, progress := g.game.PlayerSystem.Healing()
	g.healthBar.Draw(screen, g.game.PlayerSystem.Health(), g.game.PlayerSystem.MaxHealth(), healing, progress)
	g.scorePanel.Draw(screen, g.game.Score(), g.game.ECS.LivingEnemyCount())
}

func (g *GameState) Exit() {
	// Звук чистим здесь, а не в Update: выйти из состояния можно и через меню.
	g.sound.Cleanup()
}
