package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
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

// Label is the wave caption, e.g. "Wave III / VI" or "Wave IV" in endless modes.
func Label(w component.WaveRuntimeState) string {
	label := "Wave " + toRoman(w.Index+1)
	if w.Total > 0 {
		label += " / " + toRoman(w.Total)
	}
	if w.Cycle > 0 {
		label += fmt.Sprintf(" (loop %d)", w.Cycle)
	}
	return label
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, w component.WaveRuntimeState, bossActive bool) {
	var textColor color.Color = config.TextLightColor
	if bossActive {
		textColor = config.BossColor // Красный для босс-волн
	}
	text.Draw(screen, Label(w), i.fontFace, i.X, i.Y, textColor)
	if w.InCountdown {
		text.Draw(screen, fmt.Sprintf("next wave in %.1fs", w.CountdownRemaining), i.fontFace, i.X, i.Y+LineHeight, config.TypedColor)
	}
}
