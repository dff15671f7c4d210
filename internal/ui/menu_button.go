// internal/ui/menu_button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MenuButton представляет собой простую кнопку для использования в меню.
type MenuButton struct {
	Rect    Rect
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
	face    font.Face
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect Rect, label string, bg, fg color.RGBA) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    label,
		bgColor: bg,
		fgColor: fg,
		face:    DefaultFace,
	}
}

// Draw отрисовывает кнопку.
func (b *MenuButton) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, b.bgColor, false)
	vector.StrokeRect(screen, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, 2, color.RGBA{200, 200, 200, 255}, false)
	drawTextCentered(screen, b.Text, b.face, b.Rect.X+b.Rect.W/2, b.Rect.Y+b.Rect.H/2, b.fgColor)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(x, y int) bool {
	return b.Rect.Contains(float32(x), float32(y))
}
