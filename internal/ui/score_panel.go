// internal/ui/score_panel.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-wave-survival/internal/config"
)

// ScorePanel отображает счёт и число живых врагов.
type ScorePanel struct {
	X, Y     int
	fontFace font.Face
}

// NewScorePanel создает панель счёта.
func NewScorePanel(x, y int, face font.Face) *ScorePanel {
	return &ScorePanel{X: x, Y: y, fontFace: face}
}

// Draw отрисовывает панель.
func (p *ScorePanel) Draw(screen *ebiten.Image, score, aliveEnemies int) {
	text.Draw(screen, fmt.Sprintf("SCORE %d", score), p.fontFace, p.X, p.Y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("ENEMIES %d", aliveEnemies), p.fontFace, p.X, p.Y+18, config.TextLightColor)
}
