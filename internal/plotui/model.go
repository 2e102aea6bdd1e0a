// Package plotui is the terminal host: a bubbletea program that draws the
// plane into the terminal, routes mouse gestures to the controller and
// shows the readouts and the result dialog.
package plotui

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"

	"github.com/wesen/plotgrid/internal/controller"
	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/internal/render"
	"github.com/wesen/plotgrid/internal/session"
)

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	ctrl    *controller.Controller
	session *session.State
	theme   render.Theme
	view    viewport
	keys    keyMap
	help    help.Model
	log     logrus.FieldLogger
}

// NewModel creates the initial model for a fresh session on ctrl's plane.
func NewModel(ctrl *controller.Controller, log logrus.FieldLogger) Model {
	h := help.New()
	h.ShortSeparator = "  "
	return Model{
		ctrl:    ctrl,
		session: session.New(),
		theme:   render.TerminalTheme(),
		keys:    defaultKeyMap(),
		help:    h,
		log:     log.WithField("component", "plotui"),
	}
}

// Session exposes the session state.
func (m Model) Session() *session.State { return m.session }

// Range is the logical range of the plane.
func (m Model) Range() plane.Range { return m.ctrl.Mapper().Range }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
