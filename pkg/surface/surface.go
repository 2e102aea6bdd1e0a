// Package surface defines an immediate-mode 2D drawing surface in the
// manner of an HTML canvas context: style state is set first, then shapes
// are filled or stroked with it. Save and Restore push and pop that state.
//
// Backends live in subpackages: cellsurface draws into a terminal cell
// buffer, imagesurface rasterises into an image.RGBA.
package surface

import "image/color"

// Align is the horizontal anchor of text relative to its x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical anchor of text relative to its y coordinate.
type Baseline int

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
)

// Surface is the drawing capability the renderers need.
type Surface interface {
	// Size is the drawable extent in surface pixels.
	Size() (w, h float64)
	// Clear resets every pixel to fully transparent / blank.
	Clear()

	SetFill(c color.Color)
	SetStroke(c color.Color)
	SetLineWidth(w float64)
	SetTextAlign(a Align)
	SetTextBaseline(b Baseline)
	Save()
	Restore()

	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	StrokeLine(x0, y0, x1, y1 float64)
	FillText(s string, x, y float64)
}

// State is the style state shared by every backend.
type State struct {
	Fill      color.Color
	Stroke    color.Color
	LineWidth float64
	Align     Align
	Baseline  Baseline
}

// DefaultState is black fill and stroke, width 1, left/top text.
func DefaultState() State {
	return State{
		Fill:      color.Black,
		Stroke:    color.Black,
		LineWidth: 1,
		Align:     AlignLeft,
		Baseline:  BaselineTop,
	}
}

// Stack holds the current State plus the saved ones. Backends embed it to
// get the style setters and Save/Restore for free.
type Stack struct {
	Cur   State
	saved []State
}

// NewStack returns a stack positioned at DefaultState.
func NewStack() Stack { return Stack{Cur: DefaultState()} }

func (s *Stack) SetFill(c color.Color)      { s.Cur.Fill = c }
func (s *Stack) SetStroke(c color.Color)    { s.Cur.Stroke = c }
func (s *Stack) SetTextAlign(a Align)       { s.Cur.Align = a }
func (s *Stack) SetTextBaseline(b Baseline) { s.Cur.Baseline = b }

// SetLineWidth ignores non-positive widths, as canvas does.
func (s *Stack) SetLineWidth(w float64) {
	if w > 0 {
		s.Cur.LineWidth = w
	}
}

// Save pushes a copy of the current state.
func (s *Stack) Save() { s.saved = append(s.saved, s.Cur) }

// Restore pops the last saved state. An unbalanced Restore is a no-op.
func (s *Stack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.Cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Depth is the number of saved states.
func (s *Stack) Depth() int { return len(s.saved) }

// Anchor returns the offset to apply to a text box of size (w, h) so that
// the current alignment and baseline place it relative to its anchor.
func (s *Stack) Anchor(w, h float64) (dx, dy float64) {
	switch s.Cur.Align {
	case AlignCenter:
		dx = -w / 2
	case AlignRight:
		dx = -w
	}
	switch s.Cur.Baseline {
	case BaselineMiddle:
		dy = -h / 2
	case BaselineBottom:
		dy = -h
	}
	return dx, dy
}

// Opaque reports whether c has full alpha.
func Opaque(c color.Color) bool {
	_, _, _, a := c.RGBA()
	return a == 0xffff
}
