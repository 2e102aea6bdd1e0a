// Package cellbuf provides a 2D character buffer with per-cell styling
// and efficient Lipgloss-based rendering.
//
// Each cell holds a rune and a StyleKey (an int enum). At render time,
// the caller provides a map[StyleKey]lipgloss.Style so the buffer is
// decoupled from specific color schemes.
//
// Limitation: all runes are assumed to be single-width. CJK or other
// double-width characters are not handled correctly.
package cellbuf

// StyleKey identifies a visual style. The caller defines the mapping
// from StyleKey to lipgloss.Style at render time.
type StyleKey int

// Cell is a single character in the buffer with an associated style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a 2D grid of styled cells.
type Buffer struct {
	W, H  int
	Cells [][]Cell // [row][col]
}

// New creates a Buffer of the given size, filled with spaces in the
// given default style.
func New(w, h int, defaultStyle StyleKey) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(defaultStyle)
	return b
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Get returns the cell at (x, y) and whether it exists.
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return Cell{}, false
	}
	return b.Cells[y][x], true
}

// Set writes a single character at (x, y). Out-of-bounds writes are
// silently ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// FillRect sets every cell in [x0,x1)×[y0,y1) to ch in the given style,
// clipped to the buffer.
func (b *Buffer) FillRect(x0, y0, x1, y1 int, ch rune, style StyleKey) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, b.W), min(y1, b.H)
	for y := y0; y < y1; y++ {
		row := b.Cells[y]
		for x := x0; x < x1; x++ {
			row[x] = Cell{Ch: ch, Style: style}
		}
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	b.FillRect(0, 0, b.W, b.H, ' ', style)
}

// String returns the buffer's runes without styling, rows joined by "\n".
func (b *Buffer) String() string {
	rows := make([]rune, 0, (b.W+1)*b.H)
	for y, row := range b.Cells {
		if y > 0 {
			rows = append(rows, '\n')
		}
		for _, c := range row {
			rows = append(rows, c.Ch)
		}
	}
	return string(rows)
}
