// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-wave-survival/internal/component"
	"go-wave-survival/internal/config"
	"go-wave-survival/internal/defs"
	"go-wave-survival/internal/entity"
)

// RenderSystem — отладочный вид сверху. Симуляция живёт на плоскости XZ,
// экранные координаты: X → вправо, Z → вниз от центра экрана.
type RenderSystem struct {
	ecs    *entity.ECS
	player *PlayerSystem
}

func NewRenderSystem(ecs *entity.ECS, player *PlayerSystem) *RenderSystem {
	return &RenderSystem{ecs: ecs, player: player}
}

func worldToScreen(x, z float64) (float32, float32) {
	sx := float32(config.ScreenWidth)/2 + float32(x*config.WorldToScreen)
	sy := float32(config.ScreenHeight)/2 + float32(z*config.WorldToScreen)
	return sx, sy
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	// Пол арены
	cx, cy := worldToScreen(0, 0)
	vector.DrawFilledCircle(screen, cx, cy, float32(config.ArenaRadius*config.WorldToScreen), config.ArenaFloorColor, true)

	// Препятствия
	for id, obstacle := range s.ecs.Obstacles {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			x, y := worldToScreen(pos.X, pos.Z)
			vector.DrawFilledCircle(screen, x, y, float32(obstacle.Radius*config.WorldToScreen), config.ObstacleColor, true)
		}
	}

	// Аптечки
	for id := range s.ecs.HealthPacks {
		if pos, hasPos := s.ecs.Positions[id]; hasPos {
			x, y := worldToScreen(pos.X, pos.Z)
			vector.DrawFilledCircle(screen, x, y, float32(0.8*config.WorldToScreen), config.HealthPackColor, true)
		}
	}

	// Враги
	for id, enemy := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		x, y := worldToScreen(pos.X, pos.Z)
		radius := float32(0.9 * enemy.Scale * config.WorldToScreen)

		vector.DrawFilledCircle(screen, x, y, radius, enemyColor(enemy), true)

		// Насечка направления взгляда
		if enemy.State != component.StateDead {
			fx := x + float32(math.Sin(enemy.Facing))*radius*1.4
			fy := y + float32(math.Cos(enemy.Facing))*radius*1.4
			vector.StrokeLine(screen, x, y, fx, fy, 2.0, config.TextLightColor, true)
		}
	}

	// Игрок и его конус замаха
	px, py := worldToScreen(s.player.Position().X, s.player.Position().Z)
	facing := s.player.FacingAngle()
	vector.DrawFilledCircle(screen, px, py, float32(0.8*config.WorldToScreen), config.PlayerColor, true)
	fx := px + float32(math.Sin(facing))*18
	fy := py + float32(math.Cos(facing))*18
	vector.StrokeLine(screen, px, py, fx, fy, 3.0, config.SwingArcColor, true)
}

func enemyColor(enemy *component.Enemy) color.RGBA {
	if enemy.State == component.StateDead {
		return config.EnemyColorDead
	}
	if enemy.IsHit {
		return config.EnemyHitFlash
	}
	switch enemy.Class {
	case defs.ClassTank:
		return config.EnemyColorTank
	case defs.ClassRunner:
		return config.EnemyColorRunner
	default:
		return config.EnemyColorRegular
	}
}
