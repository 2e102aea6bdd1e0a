// plane-demo prints the terminal rendering of the plane, with a plotted
// point and a preview, to visually verify cellsurface + render styling.
//
// Run: go run ./cmd/plane-demo/ [-unit-x 4] [-unit-y 2] [-plain]
package main

import (
	"flag"
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/internal/render"
	"github.com/wesen/plotgrid/pkg/surface/cellsurface"
)

func main() {
	unitX := flag.Int("unit-x", 4, "cells per unit horizontally")
	unitY := flag.Int("unit-y", 2, "cells per unit vertically")
	plain := flag.Bool("plain", false, "print glyphs only, without colour")
	flag.Parse()

	r := plane.DefaultRange()
	m := plane.Mapper{
		Range: r,
		W:     float64(*unitX * r.Span()),
		H:     float64(*unitY * r.Span()),
	}
	theme := render.TerminalTheme()

	// Label margin left of the plane, one column and row past the far edges.
	const left = 4
	s := cellsurface.New(left+int(m.W)+2, int(m.H)+2, left, 0, m.W, m.H, theme.Background)
	render.Grid(s, m, theme)
	render.Point(s, m, theme, plane.Pt(3, 4))
	render.Preview(s, m, theme, plane.Pt(-6, -2))

	if *plain {
		fmt.Println(s.Buffer().String())
		return
	}

	fmt.Println()
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ffc8")).
		Bold(true).
		Underline(true)
	fmt.Println(title.Render("  plane demo: plotted (3, 4), preview (-6, -2)"))
	fmt.Println()

	fmt.Println(s.Render())

	fmt.Println()
	legend := lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	fmt.Println(legend.Render(fmt.Sprintf("  %c plotted  %c preview  ┃━ axes  │─ gridlines",
		cellsurface.SolidMarker, cellsurface.HollowMarker)))
	fmt.Println()
}
