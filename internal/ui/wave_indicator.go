// internal/ui/wave_indicator.go
package ui

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-wave-survival/internal/config"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y     int
	fontFace font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{X: x, Y: y, fontFace: face}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор на экране. Во время спавна волны номер
// служит и баннером объявления.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int, announcing bool) {
	if waveNumber <= 0 {
		return
	}

	label := "WAVE " + toRoman(waveNumber)
	if announcing {
		label = ">>> " + label + " <<<"
	}

	bounds := text.BoundString(i.fontFace, label)
	x := i.X - bounds.Dx()/2
	text.Draw(screen, label, i.fontFace, x, i.Y, config.TextLightColor)
}
