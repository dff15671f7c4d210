// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-cactus-defense/pkg/utils"
)

// Point is a field coordinate in pixels, before the renderer's offset.
type Point struct {
	X, Y float64
}

// Sizes groups the radii and widths the renderer draws with.
type Sizes struct {
	PathWidth        float32
	TowerRadius      float32
	EnemyRadius      float32
	HealthBarWidth   float32
	HealthBarHeight  float32
	HealthBarOffsetY float32
}

// FieldRenderer рисует игровое поле: путь, башни, врагов и снаряды.
// Путь статичен, поэтому он рисуется один раз в отдельное изображение.
type FieldRenderer struct {
	offsetX, offsetY float64
	colors           *FieldColors
	sizes            Sizes
	strokeImg        *ebiten.Image
	strokeVs         []ebiten.Vertex
	strokeIs         []uint16
	mapImage         *ebiten.Image // Предрендеренный задник
}

func NewFieldRenderer(width, height int, offsetX, offsetY float64, colors *FieldColors, sizes Sizes) *FieldRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	return &FieldRenderer{
		offsetX:   offsetX,
		offsetY:   offsetY,
		colors:    colors,
		sizes:     sizes,
		strokeImg: strokeImg,
		strokeVs:  make([]ebiten.Vertex, 0, 64),
		strokeIs:  make([]uint16, 0, 64),
		mapImage:  ebiten.NewImage(width, height),
	}
}

// RenderMapImage создаёт предрендеренное изображение поля с путём.
func (r *FieldRenderer) RenderMapImage(path []Point) {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)
	if len(path) < 2 {
		return
	}

	p := vector.Path{}
	for i, wp := range path {
		// Задник рисуется в своих координатах, смещение применяется в DrawField.
		if i == 0 {
			p.MoveTo(float32(wp.X), float32(wp.Y))
		} else {
			p.LineTo(float32(wp.X), float32(wp.Y))
		}
	}

	r.strokeVs, r.strokeIs = p.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    r.sizes.PathWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	c := r.colors.PathColor
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	r.mapImage.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// DrawField рисует предрендеренный задник одним вызовом.
func (r *FieldRenderer) DrawField(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.offsetX, r.offsetY)
	screen.DrawImage(r.mapImage, op)
}

// ScreenToField переводит координаты курсора в координаты поля.
func (r *FieldRenderer) ScreenToField(x, y int) Point {
	return Point{X: float64(x) - r.offsetX, Y: float64(y) - r.offsetY}
}

func (r *FieldRenderer) toScreen(p Point) (float32, float32) {
	return float32(p.X + r.offsetX), float32(p.Y + r.offsetY)
}

// DrawTower рисует башню вида kind с обводкой; selected подсвечивает её.
func (r *FieldRenderer) DrawTower(screen *ebiten.Image, pos Point, kind int, selected bool) {
	x, y := r.toScreen(pos)
	fill := r.colors.TowerColor(kind)
	stroke := DarkenColor(fill)
	if selected {
		stroke = r.colors.SelectedColor
	}
	vector.DrawFilledCircle(screen, x, y, r.sizes.TowerRadius+2, stroke, true)
	vector.DrawFilledCircle(screen, x, y, r.sizes.TowerRadius, fill, true)
}

// DrawRange обводит круг радиуса атаки.
func (r *FieldRenderer) DrawRange(screen *ebiten.Image, pos Point, radius float64) {
	x, y := r.toScreen(pos)
	vector.StrokeCircle(screen, x, y, float32(radius), 1, r.colors.RangeColor, true)
}

// DrawEnemy рисует врага и полоску здоровья; healthFrac в [0, 1].
func (r *FieldRenderer) DrawEnemy(screen *ebiten.Image, pos Point, healthFrac float64) {
	x, y := r.toScreen(pos)
	vector.DrawFilledCircle(screen, x, y, r.sizes.EnemyRadius, r.colors.EnemyColor, true)

	healthFrac = utils.Clamp(healthFrac, 0, 1)
	w, h := r.sizes.HealthBarWidth, r.sizes.HealthBarHeight
	bx, by := x-w/2, y-r.sizes.HealthBarOffsetY
	vector.DrawFilledRect(screen, bx, by, w, h, r.colors.HealthBackColor, false)
	vector.DrawFilledRect(screen, bx, by, w*float32(healthFrac), h, r.colors.HealthFillColor, false)
}

// DrawProjectile рисует снаряд цветом башни-источника; alpha задаёт мерцание.
func (r *FieldRenderer) DrawProjectile(screen *ebiten.Image, pos Point, kind int, alpha float64) {
	x, y := r.toScreen(pos)
	vector.DrawFilledCircle(screen, x, y, 5, WithAlpha(r.colors.TowerColor(kind), alpha), true)
}
