package plotui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/plotgrid/internal/session"
	"github.com/wesen/plotgrid/pkg/tealayout"
)

// section renders a titled panel section: title, rule, then body lines.
func section(title string, width int, body ...string) []string {
	lines := []string{
		panelTitleStyle.Render(title),
		panelDimStyle.Render(strings.Repeat("─", max(0, width-2))),
	}
	lines = append(lines, body...)
	return append(lines, "")
}

// buildPanelLayer renders the readouts.
func buildPanelLayer(st *session.State, x, y, width, height int) *lipgloss.Layer {
	var lines []string
	lines = append(lines, section("COORDINATE", width,
		panelValueStyle.Render("  "+st.Coord))...)
	lines = append(lines, section("QUIZ", width,
		wrap(st.Progress, width-2, panelTextStyle)...)...)
	lines = append(lines, section("SCORE", width,
		panelValueStyle.Render("  "+st.Score))...)

	content := tealayout.Block(lines, width, height, panelPadStyle)
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("panel")
}

// wrap word-wraps s to width, indenting each line by two cells.
func wrap(s string, width int, style lipgloss.Style) []string {
	wrapped := lipgloss.NewStyle().Width(max(1, width-2)).Render(s)
	var out []string
	for _, l := range strings.Split(wrapped, "\n") {
		out = append(out, style.Render("  "+strings.TrimRight(l, " ")))
	}
	return out
}
