// pkg/render/color.go
package render

import (
	"image/color"

	"go-cactus-defense/pkg/utils"
)

// FieldColors holds all the color definitions needed to render the playing field.
type FieldColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	EnemyColor      color.RGBA
	HealthBackColor color.RGBA
	HealthFillColor color.RGBA
	RangeColor      color.RGBA
	SelectedColor   color.RGBA
	TowerColors     []color.RGBA // По индексу вида башни
}

// TowerColor returns the fill for tower kind index i, gray for unknown kinds.
func (c *FieldColors) TowerColor(i int) color.RGBA {
	if i < 0 || i >= len(c.TowerColors) {
		return color.RGBA{128, 128, 128, 255}
	}
	return c.TowerColors[i]
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha channel scaled by a in [0, 1].
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	a = utils.Clamp(a, 0, 1)
	// Цвета premultiplied, поэтому масштабируем все каналы.
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
