package drawutil

import (
	"image"
	"math"

	"github.com/wesen/plotgrid/pkg/cellbuf"
)

// pointChar returns the line character for a point based on its local
// direction (looking at the next or previous point).
func pointChar(pts []image.Point, i int, w Weight) rune {
	var dx, dy int
	if i < len(pts)-1 {
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	} else if i > 0 {
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return LineChar(dx, dy, w)
}

// DrawLine draws a Bresenham line into buf with per-point line characters,
// merging into any line glyph already present. Coordinates are
// buffer-local and cells off the buffer are skipped. styleFor picks each
// cell's style from the cell being overwritten, so a line can keep
// whatever background it crosses. A zero-length line draws nothing.
func DrawLine(buf *cellbuf.Buffer, x0, y0, x1, y1 int, w Weight, styleFor func(prev cellbuf.Cell) cellbuf.StyleKey) {
	pts := Bresenham(x0, y0, x1, y1)
	if len(pts) < 2 {
		return
	}
	for i, p := range pts {
		prev, ok := buf.Get(p.X, p.Y)
		if !ok {
			continue
		}
		buf.Set(p.X, p.Y, Merge(prev.Ch, pointChar(pts, i, w)), styleFor(prev))
	}
}

// Disc returns the cells whose centres lie within radius r of (cx, cy).
// A disc smaller than one cell still covers the cell nearest its centre.
func Disc(cx, cy, r float64) []image.Point {
	var pts []image.Point
	x0, x1 := int(math.Ceil(cx-r)), int(math.Floor(cx+r))
	y0, y1 := int(math.Ceil(cy-r)), int(math.Floor(cy+r))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy <= r*r {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	if len(pts) == 0 {
		pts = append(pts, image.Pt(int(math.Round(cx)), int(math.Round(cy))))
	}
	return pts
}
