// internal/component/movement.go
package component

import "go-wave-survival/internal/utils"

// Position — компонент позиции на плоскости XZ.
// Высота (Y) — дело рендера и анимации, в симуляции её нет.
type Position struct {
	utils.Vec2
}

// NewPosition создаёт компонент позиции.
func NewPosition(x, z float64) *Position {
	return &Position{Vec2: utils.Vec2{X: x, Z: z}}
}
