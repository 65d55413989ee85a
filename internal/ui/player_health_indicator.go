// internal/ui/player_health_indicator.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survival/internal/config"
)

const (
	healthBarWidth  = 260
	healthBarHeight = 18
	healBarHeight   = 6
)

// PlayerHealthIndicator отображает здоровье игрока полосой и прогресс
// активного лечения тонкой полоской под ней.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует индикатор здоровья игрока.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int, healing bool, healProgress float64) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.HealthBarBack, false)

	if maxHealth > 0 && health > 0 {
		frac := float32(health) / float32(maxHealth)
		vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth*frac, healthBarHeight, config.HealthBarFill, false)
	}

	if healing {
		w := healthBarWidth * float32(healProgress)
		vector.DrawFilledRect(screen, i.X, i.Y+healthBarHeight+2, w, healBarHeight, config.HealBarFill, false)
	}
}
