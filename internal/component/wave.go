// internal/component/wave.go
package component

import "go-wave-survival/internal/defs"

// WaveState — фаза жизненного цикла волны.
type WaveState int

const (
	WavePending WaveState = iota
	WaveSpawning
	WaveActive
	WaveCleared
)

func (s WaveState) String() string {
	switch s {
	case WavePending:
		return "pending"
	case WaveSpawning:
		return "spawning"
	case WaveActive:
		return "active"
	case WaveCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Wave — компонент активной волны.
type Wave struct {
	Number    int
	Config    defs.WaveDefinition
	State     WaveState
	StartedAt float64 // игровое время старта волны (момент объявления)
}
