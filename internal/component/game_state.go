// internal/component/game_state.go
package component

// GamePhase — компонент для хранения фазы игры.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)
