// internal/state/menu_state.go
package state

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-wave-survival/internal/config"
)

// MenuState — состояние меню
type MenuState struct {
	sm     *StateMachine
	seed   int64
	tuning config.Tuning
	face   font.Face
}

func NewMenuState(sm *StateMachine, seed int64, tuning config.Tuning) *MenuState {
	return &MenuState{sm: sm, seed: seed, tuning: tuning, face: basicfont.Face7x13}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.seed, m.tuning))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{12, 12, 18, 255})

	lines := []string{
		"WAVE SURVIVAL",
		"",
		"WASD - move, arrows/QE - turn",
		"Mouse / Space - swing",
		"F9 - pause",
		"",
		"Press SPACE to start",
	}
	y := config.ScreenHeight/2 - len(lines)*12
	for _, line := range lines {
		bounds := text.BoundString(m.face, line)
		x := (config.ScreenWidth - bounds.Dx()) / 2
		text.Draw(screen, line, m.face, x, y, color.White)
		y += 24
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
