// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float32
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
	Face         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float32, clr color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        clr,
		BossColor:    color.RGBA{220, 40, 40, 255},
		OutlineColor: color.RGBA{0, 0, 0, 255},
		Face:         DefaultFace,
	}
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

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := "Wave " + toRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = i.BossColor // Красный для каждой десятой волны
	}

	// Обводка в один пиксель
	for _, d := range [][2]float32{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		drawTextCentered(screen, label, i.Face, i.X+d[0], i.Y+d[1], i.OutlineColor)
	}
	drawTextCentered(screen, label, i.Face, i.X, i.Y, textColor)
}
