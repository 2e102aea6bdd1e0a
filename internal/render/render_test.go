package render

import (
	"image/color"
	"testing"

	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/pkg/surface/cellsurface"
	"github.com/wesen/plotgrid/pkg/surface/imagesurface"
)

func rgba(c color.Color) color.RGBA { return color.RGBAModel.Convert(c).(color.RGBA) }

// ── Terminal surface ──

// termScene renders onto an 80×40 cell plane (4 cells per unit across, 2
// down) with a two-cell left margin.
func termScene(t *testing.T, mk Marker) *cellsurface.Surface {
	t.Helper()
	th := TerminalTheme()
	m := plane.Mapper{Range: plane.DefaultRange(), W: 80, H: 40}
	s := cellsurface.New(85, 42, 2, 0, 80, 40, th.Background)
	Scene(s, m, th, mk)
	return s
}

func TestGridTerminalGlyphs(t *testing.T) {
	s := termScene(t, Marker{})
	tests := []struct {
		x, y int
		want rune
		what string
	}{
		{40, 11, '┃', "y axis"},
		{42, 20, '━', "x axis"},
		{40, 20, '╋', "origin"},
		{44, 11, '│', "vertical gridline"},
		{42, 10, '─', "horizontal gridline"},
		{44, 10, '┼', "gridline crossing"},
		{40, 10, '╂', "y axis over horizontal gridline"},
		{41, 11, ' ', "empty cell"},
	}
	for _, tc := range tests {
		if ch, _, _ := s.At(tc.x, tc.y); ch != tc.want {
			t.Errorf("%s at (%d,%d): %q, want %q", tc.what, tc.x, tc.y, ch, tc.want)
		}
	}
}

func TestGridTerminalLabels(t *testing.T) {
	s := termScene(t, Marker{})
	th := TerminalTheme()
	tests := []struct {
		x, y int
		want rune
	}{
		{60, 21, '5'}, // x label under the axis
		{40, 21, '0'}, // x label at the origin
		{-1, 21, '-'}, // "-10" spills into the margin
		{38, 10, '5'}, // y label right-aligned left of the axis
		{36, 40, '-'}, // "-10" on the bottom row
		{38, 20, '━'}, // y label 0 is skipped
	}
	for _, tc := range tests {
		ch, fg, _ := s.At(tc.x, tc.y)
		if ch != tc.want {
			t.Errorf("(%d,%d): %q, want %q", tc.x, tc.y, ch, tc.want)
			continue
		}
		if tc.want != '━' && fg != rgba(th.Label) {
			t.Errorf("(%d,%d): label colour %v", tc.x, tc.y, fg)
		}
	}
}

func TestSceneTerminalMarkers(t *testing.T) {
	p := plane.Pt(3, -2) // cell (52, 24)
	s := termScene(t, Marker{Kind: MarkerPlotted, At: p})
	if ch, fg, _ := s.At(52, 24); ch != cellsurface.SolidMarker || fg != rgba(TerminalTheme().Point) {
		t.Errorf("plotted marker: %q fg=%v", ch, fg)
	}

	s = termScene(t, Marker{Kind: MarkerPreview, At: p})
	if ch, _, _ := s.At(52, 24); ch != cellsurface.HollowMarker {
		t.Errorf("preview marker: %q", ch)
	}

	s = termScene(t, Marker{Kind: MarkerNone, At: p})
	if ch, _, _ := s.At(52, 24); ch != '┼' {
		t.Errorf("no marker: %q", ch)
	}
}

func TestGridIsIdempotent(t *testing.T) {
	th := TerminalTheme()
	m := plane.Mapper{Range: plane.DefaultRange(), W: 80, H: 40}
	s := cellsurface.New(85, 42, 2, 0, 80, 40, th.Background)
	Grid(s, m, th)
	first := s.Render()
	Point(s, m, th, plane.Pt(1, 1))
	Grid(s, m, th)
	if second := s.Render(); second != first {
		t.Error("second Grid call did not reproduce the first")
	}
	if s.Depth() != 0 {
		t.Errorf("Grid left %d saved states", s.Depth())
	}
}

func TestGridAxesClampedToRange(t *testing.T) {
	th := TerminalTheme()
	m := plane.Mapper{Range: plane.Range{Min: 2, Max: 6}, W: 16, H: 8}
	s := cellsurface.New(20, 10, 2, 0, 16, 8, th.Background)
	Grid(s, m, th)
	// 0 is below the range, so both axes sit on the min edge
	if ch, _, _ := s.At(0, 3); ch != '┃' {
		t.Errorf("clamped y axis: %q", ch)
	}
	if ch, _, _ := s.At(2, 8); ch != '━' {
		t.Errorf("clamped x axis: %q", ch)
	}
}

// ── Raster surface ──

func imageScene(mk Marker) *imagesurface.Surface {
	s := imagesurface.New(600, 600)
	Scene(s, plane.NewMapper(plane.DefaultRange(), 600), DefaultTheme(), mk)
	return s
}

func TestGridRaster(t *testing.T) {
	th := DefaultTheme()
	img := imageScene(Marker{}).Image()
	tests := []struct {
		x, y int
		want color.Color
		what string
	}{
		{15, 15, th.Background, "background"},
		{300, 100, th.Axis, "y axis"},
		{100, 300, th.Axis, "x axis"},
		{30, 100, th.GridLine, "vertical gridline"},
		{100, 30, th.GridLine, "horizontal gridline"},
	}
	for _, tc := range tests {
		if got := img.RGBAAt(tc.x, tc.y); got != rgba(tc.want) {
			t.Errorf("%s at (%d,%d): %v, want %v", tc.what, tc.x, tc.y, got, rgba(tc.want))
		}
	}
}

func TestGridRasterLabels(t *testing.T) {
	th := DefaultTheme()
	img := imageScene(Marker{}).Image()
	label := rgba(th.Label)
	inked := func(x0, y0, x1, y1 int) bool {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				if img.RGBAAt(x, y) == label {
					return true
				}
			}
		}
		return false
	}
	if !inked(440, 304, 460, 320) {
		t.Error("x label 5 not drawn under the axis")
	}
	if !inked(280, 140, 294, 160) {
		t.Error("y label 5 not drawn left of the axis")
	}
	if inked(280, 294, 294, 306) {
		t.Error("y label 0 drawn at the origin")
	}
}

func TestSceneRasterMarkers(t *testing.T) {
	th := DefaultTheme()
	p := plane.Pt(3, -2) // pixel (390, 360)

	img := imageScene(Marker{Kind: MarkerPlotted, At: p}).Image()
	if got := img.RGBAAt(390, 360); got != rgba(th.Point) {
		t.Errorf("plotted marker centre: %v", got)
	}

	img = imageScene(Marker{Kind: MarkerPreview, At: p}).Image()
	got := img.RGBAAt(392, 362)
	if got == rgba(th.Point) || got == rgba(th.Background) {
		t.Errorf("preview marker not translucent: %v", got)
	}
}
