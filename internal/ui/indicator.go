// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// StatsIndicator выводит токены, жизни и счёт в строку HUD.
type StatsIndicator struct {
	X, Y  int
	Color color.RGBA
	Face  font.Face
}

func NewStatsIndicator(x, y int, clr color.RGBA) *StatsIndicator {
	return &StatsIndicator{X: x, Y: y, Color: clr, Face: DefaultFace}
}

// Draw отрисовывает показатели.
func (i *StatsIndicator) Draw(screen *ebiten.Image, tokens, lives, score int) {
	text.Draw(screen, statsLine(tokens, lives, score), i.Face, i.X, i.Y, i.Color)
}

func statsLine(tokens, lives, score int) string {
	return fmt.Sprintf("Tokens: %d   Lives: %d   Score: %d", tokens, lives, score)
}
