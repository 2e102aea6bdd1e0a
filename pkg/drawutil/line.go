// Package drawutil provides terminal drawing primitives: Bresenham lines,
// box-drawing glyph selection with junction merging, and disc
// rasterisation, plus convenience functions that draw into a
// cellbuf.Buffer.
package drawutil

import "image"

// Bresenham returns the integer points on the line from (x0,y0) to (x1,y1)
// using Bresenham's line algorithm. The result always includes both endpoints.
// The loop is capped at dx+dy+2 iterations to prevent infinite loops.
func Bresenham(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// Weight is the stroke weight of a box-drawing glyph.
type Weight int

const (
	WeightNone Weight = iota
	WeightLight
	WeightHeavy
)

// strokes is the (vertical, horizontal) weight pair a glyph is made of.
type strokes struct{ v, h Weight }

var glyphs = map[strokes]rune{
	{WeightLight, WeightNone}:  '│',
	{WeightHeavy, WeightNone}:  '┃',
	{WeightNone, WeightLight}:  '─',
	{WeightNone, WeightHeavy}:  '━',
	{WeightLight, WeightLight}: '┼',
	{WeightHeavy, WeightLight}: '╂',
	{WeightLight, WeightHeavy}: '┿',
	{WeightHeavy, WeightHeavy}: '╋',
}

var glyphStrokes = func() map[rune]strokes {
	m := make(map[rune]strokes, len(glyphs))
	for s, r := range glyphs {
		m[r] = s
	}
	return m
}()

// LineChar returns the glyph for a line segment with direction (dx, dy)
// at the given weight. Diagonals have no heavy variant.
func LineChar(dx, dy int, w Weight) rune {
	if w == WeightNone {
		w = WeightLight
	}
	if dx == 0 {
		return glyphs[strokes{v: w}]
	}
	if dy == 0 {
		return glyphs[strokes{h: w}]
	}
	if (dx > 0) == (dy > 0) {
		return '\\'
	}
	return '/'
}

// Merge combines a glyph already in a cell with a new line glyph so that
// crossing lines become a junction. Weights combine by maximum per
// direction. Anything that is not a straight box-drawing glyph is simply
// replaced by next.
func Merge(prev, next rune) rune {
	a, okA := glyphStrokes[prev]
	b, okB := glyphStrokes[next]
	if !okA || !okB {
		return next
	}
	return glyphs[strokes{v: max(a.v, b.v), h: max(a.h, b.h)}]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
