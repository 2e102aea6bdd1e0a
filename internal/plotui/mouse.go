package plotui

import (
	tea "charm.land/bubbletea/v2"
)

// handleMouse routes mouse events to the controller. The canvas captures
// the pointer on a left click: until the release, motion and the release
// itself are delivered even when the pointer leaves the canvas. Releases
// without a capture, from other buttons or from presses that began off
// the canvas, are dropped.
func handleMouse(m Model, msg tea.MouseMsg) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	if !m.view.Fits() {
		return m, nil
	}
	st := m.session
	inside := m.view.Contains(mouse.X, mouse.Y)
	sx, sy := m.view.ToSurface(mouse.X, mouse.Y)

	switch msg.(type) {
	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft || !inside {
			return m, nil
		}
		// A click may arrive without prior motion; preview where it landed.
		m.ctrl.PointerMove(st, sx, sy)
		m.ctrl.PointerDown(st)

	case tea.MouseMotionMsg:
		if inside || st.Captured {
			m.ctrl.PointerMove(st, sx, sy)
		}

	case tea.MouseReleaseMsg:
		// Only the release that ends a captured left-button press plots.
		if st.Captured {
			m.ctrl.PointerUp(st)
		}
	}

	return m, nil
}
