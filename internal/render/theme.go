package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme holds the colours and metrics of a rendered plane. Metrics are in
// surface pixels, so a terminal theme uses cell-sized values.
type Theme struct {
	Background color.Color
	GridLine   color.Color
	Axis       color.Color
	Label      color.Color
	Point      color.Color
	Preview    color.Color

	GridWidth    float64
	AxisWidth    float64
	MarkerRadius float64

	// XLabelGap is the distance from the x axis down to the top of its
	// labels, YLabelGap the distance from the y axis left to the right edge
	// of its labels.
	XLabelGap float64
	YLabelGap float64

	// Crisp offsets lines by half a pixel so one-pixel strokes land on a
	// single raster column. Only meaningful for raster surfaces.
	Crisp bool
}

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// previewAlpha is the opacity of the preview marker.
const previewAlpha = 0.6

// DefaultTheme is the raster look: white paper, pale blue grid.
func DefaultTheme() Theme {
	return Theme{
		Background:   c("#ffffff"),
		GridLine:     c("#d7e2ef"),
		Axis:         c("#294e6a"),
		Label:        c("#102b3a"),
		Point:        c("#d64550"),
		Preview:      color.NRGBA{R: 0xd6, G: 0x45, B: 0x50, A: uint8(previewAlpha * 255)},
		GridWidth:    1,
		AxisWidth:    2,
		MarkerRadius: 6,
		XLabelGap:    4,
		YLabelGap:    6,
		Crisp:        true,
	}
}

// TerminalTheme is the cell look: CRT green on near-black.
func TerminalTheme() Theme {
	return Theme{
		Background:   c("#080e0b"),
		GridLine:     c("#1a3a2a"),
		Axis:         c("#00d4a0"),
		Label:        c("#ddaa44"),
		Point:        c("#ff5566"),
		Preview:      color.NRGBA{R: 0xff, G: 0x55, B: 0x66, A: uint8(previewAlpha * 255)},
		GridWidth:    1,
		AxisWidth:    2,
		MarkerRadius: 0.4,
		XLabelGap:    1,
		YLabelGap:    1,
	}
}
