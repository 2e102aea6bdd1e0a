package plotui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/plotgrid/internal/quiz"
	"github.com/wesen/plotgrid/internal/render"
	"github.com/wesen/plotgrid/pkg/surface/cellsurface"
	"github.com/wesen/plotgrid/pkg/tealayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	v := tea.NewView(m.screen())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// screen composes the full terminal frame.
func (m Model) screen() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	// Layout: toolbar(1) + footer(1) + panel(panelWidth) + canvas(remaining)
	layout := m.layout()
	st := m.session
	keys := m.keys.forResult(st.Result.Visible)

	var layers []*lipgloss.Layer

	// Background
	layers = append(layers,
		tealayout.FillLayer(layout.Toolbar, tbStyle, "toolbar-bg", 0),
		tealayout.FillLayer(layout.Canvas, bgStyle, "canvas-bg", 0),
		tealayout.FillLayer(layout.Footer, ftStyle, "footer-bg", 0),
	)

	// Toolbar
	mode := "PLOT"
	if st.Quiz.Active {
		mode = fmt.Sprintf("QUIZ %d/%d", st.Quiz.Question, quiz.TotalQuestions)
	}
	prefix := fmt.Sprintf(" PLOTGRID  │  %s  │  ", mode)
	h := m.help
	h.SetWidth(m.Width - lipgloss.Width(prefix))
	layers = append(layers, tealayout.ToolbarLayer(prefix+h.ShortHelpView(keys.ShortHelp()), m.Width, tbStyle))

	// Footer carries the status message.
	layers = append(layers, tealayout.FooterLayer(" "+st.Message, m.Width, m.Height-1, ftStyle))

	// Plane
	if m.view.Fits() {
		s := m.scene()
		layers = append(layers,
			lipgloss.NewLayer(s.Render()).X(m.view.Buf.X).Y(m.view.Buf.Y).Z(1).ID("plane"))
	} else if r := layout.Canvas; !r.Empty() {
		notice := ftStyle.Render(fmt.Sprintf("Enlarge the terminal: the plane needs %dx%d cells.",
			m.view.Cols, m.view.Rows))
		layers = append(layers, lipgloss.NewLayer(notice).X(r.Min.X+1).Y(r.Min.Y+1).Z(1).ID("plane"))
	}

	// Side panel
	pr := layout.Panel
	if pw, ph := pr.Dx(), pr.Dy(); pw > 0 && ph > 0 {
		layers = append(layers,
			tealayout.VerticalSeparator(pr.Min.X, pr.Min.Y, ph, panelSepStyle),
			buildPanelLayer(st, pr.Min.X+1, pr.Min.Y, pw-1, ph),
		)
	}

	// Result dialog
	if st.Result.Visible {
		layers = append(layers, tealayout.ModalLayer("result", resultContent(st.Result.Phrase, st.Result.Final),
			layout.Canvas, modalStyle))
	}

	// Compose
	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)
	return canvas.Render()
}

// scene renders the plane and the session marker into a fresh cell surface.
func (m Model) scene() *cellsurface.Surface {
	vp := m.view
	s := cellsurface.New(vp.Cols, vp.Rows, vp.Origin.X-vp.Buf.X, vp.Origin.Y-vp.Buf.Y,
		vp.Mapper.W, vp.Mapper.H, m.theme.Background)
	render.Scene(s, vp.Mapper, m.theme, m.session.Marker)
	return s
}

func resultContent(phrase, final string) string {
	return strings.Join([]string{
		modalPhraseStyle.Render(phrase),
		"",
		modalTextStyle.Render(final),
		"",
		modalKeyStyle.Render("[esc] close    [r] restart"),
	}, "\n")
}
