// internal/state/game_over_state.go
package state

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-wave-survival/internal/config"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final score and waits for a restart.
type GameOverState struct {
	sm     *StateMachine
	score  int
	wave   int
	seed   int64
	tuning config.Tuning
	face   font.Face
}

func NewGameOverState(sm *StateMachine, score, wave int, seed int64, tuning config.Tuning) *GameOverState {
	return &GameOverState{
		sm:     sm,
		score:  score,
		wave:   wave,
		seed:   seed,
		tuning: tuning,
		face:   basicfont.Face7x13,
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		// Рестарт — это свежая симуляция, старую не реанимируем.
		s.sm.SetState(NewGameState(s.sm, s.seed, s.tuning))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.seed, s.tuning))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{18, 8, 8, 255})

	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("SCORE %d", s.score),
		fmt.Sprintf("REACHED WAVE %d", s.wave),
		"",
		"SPACE - restart, ESC - menu",
	}
	y := config.ScreenHeight/2 - len(lines)*12
	for _, line := range lines {
		bounds := text.BoundString(s.face, line)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		text.Draw(screen, line, s.face, x, y, color.White)
		y += 24
	}
}

func (s *GameOverState) Exit() {}
