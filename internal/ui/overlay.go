// internal/ui/overlay.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawOverlay затемняет экран и пишет заголовок с подзаголовком по центру.
func DrawOverlay(screen *ebiten.Image, title, subtitle string, shade, fg color.RGBA) {
	bounds := screen.Bounds()
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, shade, false)

	drawTextCentered(screen, title, DefaultFace, w/2, h/2-20, fg)
	if subtitle != "" {
		drawTextCentered(screen, subtitle, DefaultFace, w/2, h/2, fg)
	}
}
