// internal/defs/waves.go
package defs

// WaveDefinition описывает состав одной волны врагов.
type WaveDefinition struct {
	Regular int `json:"regular"`
	Tank    int `json:"tank"`
	Runner  int `json:"runner"`
}

// Total возвращает суммарное число врагов в волне.
func (w WaveDefinition) Total() int {
	return w.Regular + w.Tank + w.Runner
}

// WavePatterns определяет авторскую последовательность волн.
// Ключ карты - это номер волны. Волны дальше последней синтезируются
// масштабированием (см. system.WaveSystem).
var WavePatterns = map[int]WaveDefinition{
	1: {Regular: 5, Tank: 0, Runner: 0},
	2: {Regular: 8, Tank: 0, Runner: 0},
	3: {Regular: 8, Tank: 1, Runner: 2},
	4: {Regular: 10, Tank: 2, Runner: 3},
	5: {Regular: 12, Tank: 3, Runner: 5},
	6: {Regular: 14, Tank: 4, Runner: 7},
	7: {Regular: 16, Tank: 6, Runner: 9},
}
