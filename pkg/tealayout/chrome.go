package tealayout

import (
	"image"
	"strings"

	"charm.land/lipgloss/v2"
)

// ToolbarLayer creates a Layer for a toolbar at the top of the screen.
func ToolbarLayer(content string, width int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(0).Z(1).ID("toolbar")
}

// FooterLayer creates a Layer for a footer at a given y position.
func FooterLayer(content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	rendered := style.Width(width).MaxHeight(1).Render(content)
	return lipgloss.NewLayer(rendered).X(0).Y(y).Z(1).ID("footer")
}

// VerticalSeparator creates a Layer with a vertical line of │ characters.
func VerticalSeparator(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "│"
	}
	rendered := style.Render(strings.Join(lines, "\n"))
	return lipgloss.NewLayer(rendered).X(x).Y(y).Z(1).ID("separator")
}

// Centered returns a w×h rectangle centered in area. A rectangle larger
// than area is pinned to area's top-left corner.
func Centered(area image.Rectangle, w, h int) image.Rectangle {
	x := area.Min.X + max(0, (area.Dx()-w)/2)
	y := area.Min.Y + max(0, (area.Dy()-h)/2)
	return image.Rect(x, y, x+w, y+h)
}

// ModalLayer renders content inside boxStyle and centers it over area at
// Z=100.
func ModalLayer(id, content string, area image.Rectangle, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	r := Centered(area, lipgloss.Width(rendered), lipgloss.Height(rendered))
	return lipgloss.NewLayer(rendered).X(r.Min.X).Y(r.Min.Y).Z(100).ID(id)
}

// FillLayer creates a Layer of spaces in style covering r.
func FillLayer(r image.Rectangle, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	return lipgloss.NewLayer(Block(nil, r.Dx(), r.Dy(), style)).X(r.Min.X).Y(r.Min.Y).Z(z).ID(id)
}

// Block joins already-styled lines into a width×height block. Lines are
// truncated or right-padded with pad so the background stays continuous,
// and missing lines are filled with padding.
func Block(lines []string, width, height int, pad lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := make([]string, height)
	for i := range out {
		var s string
		if i < len(lines) {
			s = lines[i]
		}
		vis := lipgloss.Width(s)
		if vis > width {
			s = lipgloss.NewStyle().MaxWidth(width).Render(s)
			vis = lipgloss.Width(s)
		}
		if vis < width {
			s += pad.Render(strings.Repeat(" ", width-vis))
		}
		out[i] = s
	}
	return strings.Join(out, "\n")
}
