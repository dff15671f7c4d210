// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-cactus-defense/pkg/render"
)

// Rect — прямоугольник кнопки в экранных координатах.
type Rect struct {
	X, Y, W, H float32
}

// Contains проверяет, попадает ли точка в прямоугольник.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// TowerButton — кнопка выбора башни на панели: цвет вида, название и цена.
type TowerButton struct {
	Rect       Rect
	Label      string
	Color      color.RGBA
	BgColor    color.RGBA
	Selected   bool
	Affordable bool
	Face       font.Face
}

// NewTowerButton создает новую кнопку башни.
func NewTowerButton(rect Rect, label string, clr, bg color.RGBA) *TowerButton {
	return &TowerButton{
		Rect:       rect,
		Label:      label,
		Color:      clr,
		BgColor:    bg,
		Affordable: true,
		Face:       DefaultFace,
	}
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *TowerButton) IsClicked(x, y int) bool {
	return b.Rect.Contains(float32(x), float32(y))
}

// Draw отрисовывает кнопку.
func (b *TowerButton) Draw(screen *ebiten.Image, selectedColor color.RGBA) {
	bg := b.BgColor
	if !b.Affordable {
		// Недоступная по цене кнопка тусклее.
		bg = render.WithAlpha(bg, 0.5)
	}
	vector.DrawFilledRect(screen, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, bg, false)

	border := b.Color
	width := float32(1)
	if b.Selected {
		border = selectedColor
		width = 3
	}
	vector.StrokeRect(screen, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, width, border, false)

	swatch := b.Rect.H / 2
	vector.DrawFilledCircle(screen, b.Rect.X+swatch, b.Rect.Y+swatch, swatch/2, b.Color, true)
	drawTextCentered(screen, b.Label, b.Face, b.Rect.X+b.Rect.W/2+swatch/2, b.Rect.Y+b.Rect.H/2, color.White)
}
