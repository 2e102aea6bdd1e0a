// Package imagesurface implements surface.Surface on an image.RGBA using
// the golang.org/x/image vector rasteriser and a fixed bitmap font.
package imagesurface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/wesen/plotgrid/pkg/surface"
)

// kappa places cubic Bézier control points so four segments approximate
// a circle.
const kappa = 0.5522847498

// Surface draws into an in-memory RGBA image.
type Surface struct {
	surface.Stack

	img  *image.RGBA
	face font.Face
}

// New creates a transparent w×h surface.
func New(w, h int) *Surface {
	return &Surface{
		Stack: surface.NewStack(),
		img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		face:  basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (s *Surface) Image() *image.RGBA { return s.img }

// Size implements surface.Surface.
func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear resets every pixel to transparent.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// FillRect implements surface.Surface.
func (s *Surface) FillRect(x, y, w, h float64) {
	s.fill(s.Cur.Fill, func(r *vector.Rasterizer) {
		r.MoveTo(f32(x), f32(y))
		r.LineTo(f32(x+w), f32(y))
		r.LineTo(f32(x+w), f32(y+h))
		r.LineTo(f32(x), f32(y+h))
		r.ClosePath()
	})
}

// FillCircle implements surface.Surface.
func (s *Surface) FillCircle(cx, cy, r float64) {
	k := r * kappa
	s.fill(s.Cur.Fill, func(z *vector.Rasterizer) {
		z.MoveTo(f32(cx+r), f32(cy))
		z.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
		z.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
		z.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
		z.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
		z.ClosePath()
	})
}

// StrokeLine fills the quad of the current line width around the segment.
// Caps are butt, as canvas defaults to.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	hw := s.Cur.LineWidth / 2
	nx, ny := -dy/n*hw, dx/n*hw
	s.fill(s.Cur.Stroke, func(r *vector.Rasterizer) {
		r.MoveTo(f32(x0+nx), f32(y0+ny))
		r.LineTo(f32(x1+nx), f32(y1+ny))
		r.LineTo(f32(x1-nx), f32(y1-ny))
		r.LineTo(f32(x0-nx), f32(y0-ny))
		r.ClosePath()
	})
}

// FillText draws text in the fill colour, anchored by the current
// alignment and baseline against the font's ascent+descent box.
func (s *Surface) FillText(text string, x, y float64) {
	m := s.face.Metrics()
	w := float64(font.MeasureString(s.face, text)) / 64
	h := float64(m.Ascent+m.Descent) / 64
	dx, dy := s.Anchor(w, h)
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.Cur.Fill),
		Face: s.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round((x + dx) * 64)),
			Y: fixed.Int26_6(math.Round((y+dy)*64)) + m.Ascent,
		},
	}
	d.DrawString(text)
}

// fill rasterises the path built by fn and composites c over the image.
func (s *Surface) fill(c color.Color, fn func(*vector.Rasterizer)) {
	b := s.img.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	fn(r)
	r.Draw(s.img, b, image.NewUniform(c), image.Point{})
}

func f32(v float64) float32 { return float32(v) }
