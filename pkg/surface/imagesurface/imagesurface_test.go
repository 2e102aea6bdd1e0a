package imagesurface

import (
	"image/color"
	"testing"

	"github.com/wesen/plotgrid/pkg/surface"
)

var _ surface.Surface = (*Surface)(nil)

var red = color.RGBA{R: 0xd6, G: 0x45, B: 0x50, A: 0xff}

func rgba(s *Surface, x, y int) color.RGBA { return s.Image().RGBAAt(x, y) }

func TestClearIsTransparent(t *testing.T) {
	s := New(10, 10)
	s.SetFill(red)
	s.FillRect(0, 0, 10, 10)
	s.Clear()
	if c := rgba(s, 5, 5); c.A != 0 {
		t.Errorf("after Clear: %v", c)
	}
}

func TestFillRect(t *testing.T) {
	s := New(20, 20)
	s.SetFill(color.White)
	s.FillRect(0, 0, 20, 20)
	s.SetFill(red)
	s.FillRect(5, 5, 5, 5)
	if c := rgba(s, 7, 7); c != red {
		t.Errorf("inside rect: %v", c)
	}
	if c := rgba(s, 12, 12); c != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("outside rect: %v", c)
	}
}

func TestFillCircle(t *testing.T) {
	s := New(40, 40)
	s.SetFill(red)
	s.FillCircle(20, 20, 6)
	if c := rgba(s, 20, 20); c != red {
		t.Errorf("circle centre: %v", c)
	}
	if c := rgba(s, 20, 30); c.A != 0 {
		t.Errorf("outside circle painted: %v", c)
	}
	// Corner of the bounding box is outside the circle
	if c := rgba(s, 25, 25); c.A != 0 {
		t.Errorf("bbox corner painted: %v", c)
	}
}

func TestFillCircleTranslucent(t *testing.T) {
	s := New(20, 20)
	s.SetFill(color.White)
	s.FillRect(0, 0, 20, 20)
	s.SetFill(color.NRGBA{R: 0xd6, G: 0x45, B: 0x50, A: 153})
	s.FillCircle(10, 10, 6)
	c := rgba(s, 10, 10)
	if c.A != 0xff {
		t.Fatalf("over white should stay opaque: %v", c)
	}
	if c.G <= red.G || c.G == 0xff {
		t.Errorf("translucent fill not blended with white: %v", c)
	}
}

func TestStrokeLineWidth(t *testing.T) {
	s := New(20, 20)
	s.SetStroke(red)
	s.SetLineWidth(2)
	s.StrokeLine(10, 0, 10, 20)
	// Width 2 centred on x=10 covers pixel columns 9 and 10
	for _, x := range []int{9, 10} {
		if c := rgba(s, x, 5); c != red {
			t.Errorf("column %d: %v", x, c)
		}
	}
	if c := rgba(s, 12, 5); c.A != 0 {
		t.Errorf("column 12 painted: %v", c)
	}
}

func TestStrokeLineZeroLength(t *testing.T) {
	s := New(5, 5)
	s.SetStroke(red)
	s.StrokeLine(2, 2, 2, 2)
	if c := rgba(s, 2, 2); c.A != 0 {
		t.Errorf("zero-length line painted: %v", c)
	}
}

func TestFillTextAlignment(t *testing.T) {
	inked := func(s *Surface) (minX, maxX int) {
		minX, maxX = 1<<30, -1
		b := s.Image().Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if s.Image().RGBAAt(x, y).A != 0 {
					minX = min(minX, x)
					maxX = max(maxX, x)
				}
			}
		}
		return minX, maxX
	}

	left := New(100, 20)
	left.SetFill(red)
	left.FillText("10", 50, 2)
	lmin, _ := inked(left)
	if lmin < 50 {
		t.Errorf("left-aligned text starts at %d, before anchor", lmin)
	}

	right := New(100, 20)
	right.SetFill(red)
	right.SetTextAlign(surface.AlignRight)
	right.FillText("10", 50, 2)
	_, rmax := inked(right)
	if rmax >= 50 {
		t.Errorf("right-aligned text ends at %d, past anchor", rmax)
	}

	centre := New(100, 20)
	centre.SetFill(red)
	centre.SetTextAlign(surface.AlignCenter)
	centre.FillText("10", 50, 2)
	cmin, cmax := inked(centre)
	if cmin >= 50 || cmax < 50 {
		t.Errorf("centred text spans %d..%d, should straddle 50", cmin, cmax)
	}
}
