// internal/component/obstacle.go
package component

// Obstacle — статическое препятствие арены. Заполняется один раз при
// генерации окружения, для AI и боя оно read-only.
type Obstacle struct {
	Radius float64
}
