// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton — круглая кнопка паузы с короткой анимацией нажатия.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color

	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		fillImg:    fillImg,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		p := vector.Path{}
		p.MoveTo(b.X-size, b.Y-size*1.2)
		p.LineTo(b.X-size, b.Y+size*1.2)
		p.LineTo(b.X+size, b.Y)
		p.Close()
		b.vs, b.is = p.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
		r, g, bl, a := b.PlayColor.RGBA()
		for i := range b.vs {
			b.vs[i].ColorR = float32(r) / 0xffff
			b.vs[i].ColorG = float32(g) / 0xffff
			b.vs[i].ColorB = float32(bl) / 0xffff
			b.vs[i].ColorA = float32(a) / 0xffff
		}
		screen.DrawTriangles(b.vs, b.is, b.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
		return
	}

	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
}

// IsClicked проверяет попадание в круг радиуса Size*1.5 вокруг центра.
func (b *PauseButton) IsClicked(x, y int) bool {
	dx := float64(float32(x) - b.X)
	dy := float64(float32(y) - b.Y)
	return math.Hypot(dx, dy) <= float64(b.Size)*1.5
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused != paused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}
