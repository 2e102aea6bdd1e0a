// Package cellsurface implements surface.Surface on a terminal cell
// buffer. One cell is one surface pixel; cell (OX, OY) of the buffer is
// surface pixel (0, 0), which leaves room for labels left of and above the
// drawing extent.
package cellsurface

import (
	"image/color"
	"math"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/plotgrid/pkg/cellbuf"
	"github.com/wesen/plotgrid/pkg/drawutil"
	"github.com/wesen/plotgrid/pkg/surface"
)

// Marker glyphs used for single-cell discs.
const (
	SolidMarker  = '●'
	HollowMarker = '○'
)

// pair is the colour pair a StyleKey stands for.
type pair struct {
	fg, bg       color.RGBA
	hasFg, hasBg bool
}

// Surface draws into a cellbuf.Buffer.
type Surface struct {
	surface.Stack

	buf    *cellbuf.Buffer
	ox, oy int
	w, h   float64
	clear  cellbuf.StyleKey

	pairs []pair
	keys  map[pair]cellbuf.StyleKey
}

// New creates a surface backed by a cols×rows buffer. (ox, oy) is the cell
// of surface pixel (0, 0) and (w, h) the drawing extent reported by Size.
// Clear paints clearBG; pass nil to leave cleared cells unstyled.
func New(cols, rows, ox, oy int, w, h float64, clearBG color.Color) *Surface {
	s := &Surface{
		Stack: surface.NewStack(),
		ox:    ox,
		oy:    oy,
		w:     w,
		h:     h,
		keys:  make(map[pair]cellbuf.StyleKey),
	}
	s.pairs = append(s.pairs, pair{}) // key 0: unstyled
	s.keys[pair{}] = 0
	if clearBG != nil {
		s.clear = s.key(pair{bg: toRGBA(clearBG), hasBg: true})
	}
	s.buf = cellbuf.New(cols, rows, s.clear)
	return s
}

// Buffer exposes the backing cells.
func (s *Surface) Buffer() *cellbuf.Buffer { return s.buf }

// Size implements surface.Surface.
func (s *Surface) Size() (float64, float64) { return s.w, s.h }

// Clear implements surface.Surface.
func (s *Surface) Clear() { s.buf.Fill(s.clear) }

// FillRect covers every cell the rectangle overlaps. Cell i spans
// [i-0.5, i+0.5) in surface pixels.
func (s *Surface) FillRect(x, y, w, h float64) {
	x0, x1 := overlap(x, x+w)
	y0, y1 := overlap(y, y+h)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			s.paint(cx, cy, func(c cellbuf.Cell) cellbuf.Cell {
				bg := s.over(s.pairs[c.Style], s.Cur.Fill)
				return cellbuf.Cell{Ch: ' ', Style: s.key(pair{bg: bg, hasBg: true})}
			})
		}
	}
}

// FillCircle fills the cells whose centres lie inside the circle. A circle
// that covers a single cell is drawn as a marker glyph instead, solid when
// the fill is opaque and hollow when it is translucent.
func (s *Surface) FillCircle(cx, cy, r float64) {
	pts := drawutil.Disc(cx, cy, r)
	if len(pts) == 1 {
		ch := SolidMarker
		if !surface.Opaque(s.Cur.Fill) {
			ch = HollowMarker
		}
		s.paint(pts[0].X, pts[0].Y, func(c cellbuf.Cell) cellbuf.Cell {
			p := s.pairs[c.Style]
			return cellbuf.Cell{Ch: ch, Style: s.key(s.fgOver(p, s.Cur.Fill))}
		})
		return
	}
	for _, pt := range pts {
		s.paint(pt.X, pt.Y, func(c cellbuf.Cell) cellbuf.Cell {
			bg := s.over(s.pairs[c.Style], s.Cur.Fill)
			return cellbuf.Cell{Ch: ' ', Style: s.key(pair{bg: bg, hasBg: true})}
		})
	}
}

// StrokeLine draws with box-drawing glyphs; a line width of 2 or more
// uses the heavy variants.
func (s *Surface) StrokeLine(x0, y0, x1, y1 float64) {
	w := drawutil.WeightLight
	if s.Cur.LineWidth >= 2 {
		w = drawutil.WeightHeavy
	}
	stroke := s.Cur.Stroke
	drawutil.DrawLine(s.buf,
		cell(x0)+s.ox, cell(y0)+s.oy, cell(x1)+s.ox, cell(y1)+s.oy, w,
		func(prev cellbuf.Cell) cellbuf.StyleKey {
			return s.key(s.fgOver(s.pairs[prev.Style], stroke))
		})
}

// FillText writes s one rune per cell, anchored by the current alignment
// and baseline. Text is one cell tall.
func (s *Surface) FillText(text string, x, y float64) {
	runes := []rune(text)
	dx, dy := s.Anchor(float64(len(runes)), 1)
	startX := int(math.Floor(x + dx + 0.5))
	startY := int(math.Floor(y + dy + 0.5))
	for i, ch := range runes {
		s.paint(startX+i, startY, func(c cellbuf.Cell) cellbuf.Cell {
			return cellbuf.Cell{Ch: ch, Style: s.key(s.fgOver(s.pairs[c.Style], s.Cur.Fill))}
		})
	}
}

// At returns the rune and colours of surface pixel (x, y). Colours are nil
// when unset.
func (s *Surface) At(x, y int) (ch rune, fg, bg color.Color) {
	c, ok := s.buf.Get(x+s.ox, y+s.oy)
	if !ok {
		return 0, nil, nil
	}
	p := s.pairs[c.Style]
	if p.hasFg {
		fg = p.fg
	}
	if p.hasBg {
		bg = p.bg
	}
	return c.Ch, fg, bg
}

// Render produces the lipgloss-styled text of the whole buffer.
func (s *Surface) Render() string {
	styles := make([]lipgloss.Style, len(s.pairs))
	for k, p := range s.pairs {
		st := lipgloss.NewStyle()
		if p.hasFg {
			st = st.Foreground(p.fg)
		}
		if p.hasBg {
			st = st.Background(p.bg)
		}
		styles[k] = st
	}
	return s.buf.Render(func(k cellbuf.StyleKey) (lipgloss.Style, bool) {
		if k <= 0 || int(k) >= len(styles) {
			return lipgloss.Style{}, false
		}
		return styles[k], true
	})
}

// paint rewrites surface pixel (x, y) through fn, ignoring pixels outside
// the buffer.
func (s *Surface) paint(x, y int, fn func(cellbuf.Cell) cellbuf.Cell) {
	bx, by := x+s.ox, y+s.oy
	c, ok := s.buf.Get(bx, by)
	if !ok {
		return
	}
	n := fn(c)
	s.buf.Set(bx, by, n.Ch, n.Style)
}

// key interns a colour pair.
func (s *Surface) key(p pair) cellbuf.StyleKey {
	if k, ok := s.keys[p]; ok {
		return k
	}
	k := cellbuf.StyleKey(len(s.pairs))
	s.pairs = append(s.pairs, p)
	s.keys[p] = k
	return k
}

// fgOver keeps the background of p and sets the foreground to c composited
// over it.
func (s *Surface) fgOver(p pair, c color.Color) pair {
	return pair{fg: s.over(p, c), hasFg: true, bg: p.bg, hasBg: p.hasBg}
}

// over composites c onto the background of p. Translucent colours over an
// unset background are treated as opaque.
func (s *Surface) over(p pair, c color.Color) color.RGBA {
	_, _, _, a := c.RGBA()
	if a == 0xffff || !p.hasBg || a == 0 {
		return toRGBA(c)
	}
	top, _ := colorful.MakeColor(c)
	bottom, _ := colorful.MakeColor(p.bg)
	return toRGBA(bottom.BlendRgb(top, float64(a)/0xffff).Clamped())
}

// toRGBA flattens c to opaque 8-bit RGB, undoing alpha premultiplication.
func toRGBA(c color.Color) color.RGBA {
	if cc, ok := colorful.MakeColor(c); ok {
		r, g, b := cc.Clamped().RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return color.RGBA{}
}

// cell maps a surface pixel coordinate to the cell whose span contains it.
func cell(v float64) int { return int(math.Floor(v + 0.5)) }

// overlap returns the half-open cell range overlapping [lo, hi).
func overlap(lo, hi float64) (int, int) {
	return int(math.Floor(lo-0.5)) + 1, int(math.Ceil(hi + 0.5))
}
