package plotui

import (
	"image"
	"strconv"

	"github.com/wesen/plotgrid/internal/plane"
)

// Minimum cells per logical unit. Terminal cells are about twice as tall
// as they are wide, so the horizontal unit is kept at least twice the
// vertical one where space allows.
const (
	minUnitX = 2
	minUnitY = 1
)

// viewport places the plane inside the canvas region. Surface pixel (0, 0)
// sits at screen cell Origin; the cell buffer is Cols×Rows and starts
// at Buf.
type viewport struct {
	Canvas image.Rectangle
	Buf    image.Point
	Origin image.Point
	Cols   int
	Rows   int
	Mapper plane.Mapper
}

// fitViewport sizes the plane to the largest whole number of cells per
// unit that fits canvas, leaving a margin for tick labels.
func fitViewport(canvas image.Rectangle, r plane.Range) viewport {
	span := r.Span()
	labelW := max(len(strconv.Itoa(r.Min)), len(strconv.Itoa(r.Max)))
	left := labelW + 1

	// Pixels 0..W need W+1 columns plus one for a centered label at the
	// right edge; pixels 0..H need H+1 rows plus one for labels below.
	availW := canvas.Dx() - left - 2
	availH := canvas.Dy() - 2

	unitY := max(minUnitY, availH/span)
	unitX := max(minUnitX, min(availW/span, 2*unitY))

	w, h := unitX*span, unitY*span
	cols, rows := left+w+2, h+2
	buf := image.Pt(
		canvas.Min.X+max(0, (canvas.Dx()-cols)/2),
		canvas.Min.Y+max(0, (canvas.Dy()-rows)/2),
	)
	return viewport{
		Canvas: canvas,
		Buf:    buf,
		Origin: buf.Add(image.Pt(left, 0)),
		Cols:   cols,
		Rows:   rows,
		Mapper: plane.Mapper{Range: r, W: float64(w), H: float64(h)},
	}
}

// Fits reports whether the whole plane is visible in the canvas.
func (v viewport) Fits() bool {
	return v.Cols > 0 && v.Cols <= v.Canvas.Dx() && v.Rows <= v.Canvas.Dy()
}

// ToSurface converts a screen cell to surface pixels.
func (v viewport) ToSurface(x, y int) (float64, float64) {
	return float64(x - v.Origin.X), float64(y - v.Origin.Y)
}

// Contains reports whether screen cell (x, y) is on the canvas.
func (v viewport) Contains(x, y int) bool {
	return image.Pt(x, y).In(v.Canvas)
}
