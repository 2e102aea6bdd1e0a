// Package tealayout splits the terminal into a framed screen (toolbar on
// top, footer at the bottom, side panel on the right, canvas in the
// middle) and builds the lipgloss layers that fill it.
package tealayout

import "image"

// Chrome sizes the fixed bars around the canvas: Toolbar and Footer in
// rows, Panel in columns.
type Chrome struct {
	Toolbar int
	Footer  int
	Panel   int
}

// Layout is one terminal size split by a Chrome. A region that does not
// fit is the zero rectangle.
type Layout struct {
	TermW, TermH int

	Toolbar image.Rectangle
	Footer  image.Rectangle
	Panel   image.Rectangle
	Canvas  image.Rectangle
}

// Split computes the regions for a termW×termH terminal. The toolbar wins
// over the footer when rows run out; the panel and canvas share whatever
// rows are left between them, the panel taking its columns first.
func (c Chrome) Split(termW, termH int) Layout {
	termW, termH = max(termW, 0), max(termH, 0)
	top := min(c.Toolbar, termH)
	bottom := max(termH-c.Footer, top)
	right := max(termW-c.Panel, 0)

	return Layout{
		TermW:   termW,
		TermH:   termH,
		Toolbar: rect(0, 0, termW, top),
		Footer:  rect(0, bottom, termW, termH),
		Panel:   rect(right, top, termW, bottom),
		Canvas:  rect(0, top, right, bottom),
	}
}

// rect is image.Rect that collapses degenerate rectangles to zero.
func rect(x0, y0, x1, y1 int) image.Rectangle {
	if x0 >= x1 || y0 >= y1 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x1, y1)
}
