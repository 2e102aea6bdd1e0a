// Package render draws the coordinate plane and plotted points onto a
// surface.Surface. Every call redraws from scratch; nothing is retained
// between calls.
package render

import (
	"image/color"
	"math"
	"strconv"

	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/pkg/surface"
)

// MarkerKind says what, if anything, sits on top of the grid.
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	MarkerPreview
	MarkerPlotted
)

// Marker is the point drawn over the grid in a scene.
type Marker struct {
	Kind MarkerKind
	At   plane.Point
}

// Grid clears s and draws the background, one gridline per integer step,
// the two axes and their tick labels. The y label at the origin is skipped
// so it does not collide with the x label there.
//
// The axes sit at 0 when 0 is inside the range, otherwise at the nearest
// range edge.
func Grid(s surface.Surface, m plane.Mapper, t Theme) {
	w, h := s.Size()
	s.Clear()
	s.Save()
	defer s.Restore()

	s.SetFill(t.Background)
	s.FillRect(0, 0, w, h)

	r := m.Range
	s.SetStroke(t.GridLine)
	s.SetLineWidth(t.GridWidth)
	for i := r.Min; i <= r.Max; i++ {
		x, y := m.PointToSurface(plane.Pt(i, i))
		x, y = t.snap(x), t.snap(y)
		s.StrokeLine(x, 0, x, m.H)
		s.StrokeLine(0, y, m.W, y)
	}

	origin := plane.Pt(clamp(0, r.Min, r.Max), clamp(0, r.Min, r.Max))
	x0, y0 := m.PointToSurface(origin)
	s.SetStroke(t.Axis)
	s.SetLineWidth(t.AxisWidth)
	s.StrokeLine(t.snap(x0), 0, t.snap(x0), m.H)
	s.StrokeLine(0, t.snap(y0), m.W, t.snap(y0))

	s.SetFill(t.Label)
	s.SetTextAlign(surface.AlignCenter)
	s.SetTextBaseline(surface.BaselineTop)
	for i := r.Min; i <= r.Max; i++ {
		tx, _ := m.PointToSurface(plane.Pt(i, 0))
		s.FillText(strconv.Itoa(i), tx, y0+t.XLabelGap)
	}
	s.SetTextAlign(surface.AlignRight)
	s.SetTextBaseline(surface.BaselineMiddle)
	for i := r.Min; i <= r.Max; i++ {
		if i == origin.Y {
			continue
		}
		_, ty := m.PointToSurface(plane.Pt(0, i))
		s.FillText(strconv.Itoa(i), x0-t.YLabelGap, ty)
	}
}

// Point draws the opaque marker of a finalised plot.
func Point(s surface.Surface, m plane.Mapper, t Theme, p plane.Point) {
	marker(s, m, t, p, t.Point)
}

// Preview draws the translucent marker that follows the pointer.
func Preview(s surface.Surface, m plane.Mapper, t Theme, p plane.Point) {
	marker(s, m, t, p, t.Preview)
}

// Scene draws the grid and then the marker, if any.
func Scene(s surface.Surface, m plane.Mapper, t Theme, mk Marker) {
	Grid(s, m, t)
	switch mk.Kind {
	case MarkerPreview:
		Preview(s, m, t, mk.At)
	case MarkerPlotted:
		Point(s, m, t, mk.At)
	}
}

func marker(s surface.Surface, m plane.Mapper, t Theme, p plane.Point, fill color.Color) {
	s.Save()
	defer s.Restore()
	cx, cy := m.PointToSurface(p)
	s.SetFill(fill)
	s.FillCircle(cx, cy, t.MarkerRadius)
}

// snap places a line coordinate for the theme.
func (t Theme) snap(v float64) float64 {
	if t.Crisp {
		return math.Round(v) + 0.5
	}
	return v
}

func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }
