package plane

// Mapper converts between logical coordinates and surface pixels. The
// logical range maps onto [0, W] horizontally and [0, H] vertically with
// the y axis inverted, so Range.Max on y lands on pixel row 0.
type Mapper struct {
	Range Range
	W, H  float64
}

// NewMapper returns a mapper onto a square surface of the given size.
func NewMapper(r Range, size float64) Mapper {
	return Mapper{Range: r, W: size, H: size}
}

// UnitX is the number of pixels per logical unit along x.
func (m Mapper) UnitX() float64 { return m.W / float64(m.Range.Span()) }

// UnitY is the number of pixels per logical unit along y.
func (m Mapper) UnitY() float64 { return m.H / float64(m.Range.Span()) }

// ToSurface maps a logical position to surface pixels.
func (m Mapper) ToSurface(x, y float64) (sx, sy float64) {
	lo := float64(m.Range.Min)
	sx = (x - lo) * m.UnitX()
	sy = m.H - (y-lo)*m.UnitY()
	return sx, sy
}

// ToLogical is the exact inverse of ToSurface.
func (m Mapper) ToLogical(sx, sy float64) (x, y float64) {
	lo := float64(m.Range.Min)
	x = lo + sx/m.UnitX()
	y = lo + (m.H-sy)/m.UnitY()
	return x, y
}

// PointToSurface maps an integer point to surface pixels.
func (m Mapper) PointToSurface(p Point) (sx, sy float64) {
	return m.ToSurface(float64(p.X), float64(p.Y))
}

// Snap maps a surface pixel back to the nearest lattice point.
func (m Mapper) Snap(sx, sy float64) Point {
	return SnapPoint(m.ToLogical(sx, sy))
}
