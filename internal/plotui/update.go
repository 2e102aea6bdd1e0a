package plotui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/wesen/plotgrid/pkg/tealayout"
)

// Fixed chrome sizes.
const (
	toolbarHeight = 1
	footerHeight  = 1
	panelWidth    = 34
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.view = fitViewport(m.layout().Canvas, m.Range())
		m.ctrl.SetMapper(m.view.Mapper)
		m.log.WithField("fits", m.view.Fits()).Debugf("resized to %dx%d", m.Width, m.Height)

	case tea.KeyPressMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg)
	}

	return m, nil
}

// handleKeys processes keyboard input.
func (m Model) handleKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.forResult(m.session.Result.Visible)
	st := m.session

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Start):
		m.ctrl.StartQuiz(st)
	case key.Matches(msg, keys.Clear):
		m.ctrl.Clear(st)
	case key.Matches(msg, keys.Close):
		m.ctrl.CloseResult(st)
	case key.Matches(msg, keys.Restart):
		m.ctrl.RestartQuiz(st)
	}
	return m, nil
}

// chrome frames the canvas. View and the mouse router share it.
var chrome = tealayout.Chrome{Toolbar: toolbarHeight, Footer: footerHeight, Panel: panelWidth}

func (m Model) layout() tealayout.Layout {
	return chrome.Split(m.Width, m.Height)
}
