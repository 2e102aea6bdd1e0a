// Package plane maps between the logical cartesian plane the user plots on
// and the pixel space of a drawing surface.
package plane

import (
	"errors"
	"fmt"
	"math"
)

// Default logical bounds of the plane, inclusive on both axes.
const (
	DefaultMin = -10
	DefaultMax = 10
)

// ErrOutOfRange is wrapped by Range.Check when a point lies off the plane.
var ErrOutOfRange = errors.New("point out of range")

// Point is an integer point on the logical plane.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Range is the inclusive logical bound applied to both axes.
type Range struct {
	Min, Max int
}

// DefaultRange returns -10..10.
func DefaultRange() Range { return Range{Min: DefaultMin, Max: DefaultMax} }

// Span is the logical width of the range.
func (r Range) Span() int { return r.Max - r.Min }

// Validate rejects empty or inverted ranges.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return fmt.Errorf("range min %d must be below max %d", r.Min, r.Max)
	}
	return nil
}

// Contains reports whether both coordinates of p lie within the range.
func (r Range) Contains(p Point) bool {
	return p.X >= r.Min && p.X <= r.Max && p.Y >= r.Min && p.Y <= r.Max
}

// Check returns an error wrapping ErrOutOfRange when p is off the plane.
// The error text is the message shown to the user.
func (r Range) Check(p Point) error {
	if r.Contains(p) {
		return nil
	}
	return &RangeError{Range: r, Point: p}
}

// RangeError describes a point that fell outside a Range.
type RangeError struct {
	Range Range
	Point Point
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Values must be between %d and %d.", e.Range.Min, e.Range.Max)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

// Snap rounds v to the nearest integer, halves away from zero. Both axes
// go through this so a point on a cell boundary snaps the same way
// horizontally and vertically.
func Snap(v float64) int {
	return int(math.Round(v))
}

// SnapPoint snaps a continuous logical position to the integer lattice.
func SnapPoint(x, y float64) Point {
	return Point{X: Snap(x), Y: Snap(y)}
}
