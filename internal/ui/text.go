// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — встроенный моноширинный шрифт, ассеты не нужны.
var DefaultFace font.Face = basicfont.Face7x13

// drawTextCentered рисует строку с центром в (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float32, clr color.Color) {
	bounds := text.BoundString(face, s)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(screen, s, face, int(cx)-w/2, int(cy)+h/2, clr)
}
