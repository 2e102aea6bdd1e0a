// Package controller turns pointer gestures and button presses into
// session updates: live previews while hovering or dragging, plots on
// release, and quiz answers when a quiz is running.
package controller

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/internal/quiz"
	"github.com/wesen/plotgrid/internal/render"
	"github.com/wesen/plotgrid/internal/session"
)

// Controller handles input for sessions on one plane. It holds no session
// state; every handler updates the *session.State it is given and runs to
// completion before the next event.
type Controller struct {
	mapper plane.Mapper
	engine *quiz.Engine
	log    logrus.FieldLogger
}

// New returns a controller mapping pointer positions through m.
func New(m plane.Mapper, e *quiz.Engine, log logrus.FieldLogger) *Controller {
	return &Controller{mapper: m, engine: e, log: log.WithField("component", "controller")}
}

// Mapper returns the current pixel mapping.
func (c *Controller) Mapper() plane.Mapper { return c.mapper }

// SetMapper replaces the pixel mapping, e.g. after the surface is resized.
// The logical range must stay the same.
func (c *Controller) SetMapper(m plane.Mapper) { c.mapper = m }

// PointerDown starts a drag and captures the pointer.
func (c *Controller) PointerDown(st *session.State) {
	if st.Result.Visible {
		return
	}
	st.PointerDown = true
	st.Captured = true
}

// PointerMove follows the pointer at surface pixel (sx, sy). Outside a
// quiz it previews the snapped point and shows its coordinate; during a
// quiz both are hidden so the grid cannot give the answer away. The
// snapped point is remembered either way for the next release.
func (c *Controller) PointerMove(st *session.State, sx, sy float64) {
	if st.Result.Visible {
		return
	}
	p := c.mapper.Snap(sx, sy)
	if st.Quiz.Active {
		st.Marker = render.Marker{}
		st.SetCoord(quiz.CoordPlaceholder)
	} else {
		st.Marker = render.Marker{Kind: render.MarkerPreview, At: p}
		st.SetCoord(coordText(p))
	}
	st.LastPreview = &p
}

// PointerUp releases the pointer and plots the last previewed point. A
// point off the plane is rejected with a message and nothing is plotted.
// During a quiz the plot is handed to the quiz as the answer.
func (c *Controller) PointerUp(st *session.State) {
	st.PointerDown = false
	st.Captured = false
	if st.Result.Visible || st.LastPreview == nil {
		return
	}
	p := *st.LastPreview
	if err := c.mapper.Range.Check(p); err != nil {
		var rerr *plane.RangeError
		if errors.As(err, &rerr) {
			st.SetMessage(rerr.Error())
		}
		c.log.WithField("point", p.String()).Debug("plot rejected: out of range")
		return
	}

	st.Marker = render.Marker{Kind: render.MarkerPlotted, At: p}
	st.SetCoord(coordText(p))
	st.SetMessage(fmt.Sprintf("Plotted %s.", p))
	c.log.WithField("point", p.String()).Debug("plotted")

	if st.Quiz.Active && st.Quiz.Target != nil {
		c.engine.Evaluate(&st.Quiz, &st.Readouts, p)
	}
}

// Clear wipes the plane, the message and the coordinate readout.
func (c *Controller) Clear(st *session.State) {
	st.Marker = render.Marker{}
	st.SetMessage("")
	st.SetCoord(session.CoordBlank)
}

// StartQuiz begins a new quiz on a blank plane.
func (c *Controller) StartQuiz(st *session.State) {
	st.Marker = render.Marker{}
	c.engine.Start(&st.Quiz, &st.Readouts)
}

// CloseResult dismisses the result dialog.
func (c *Controller) CloseResult(st *session.State) {
	c.engine.Close(&st.Readouts)
}

// RestartQuiz dismisses the result dialog and starts over.
func (c *Controller) RestartQuiz(st *session.State) {
	c.engine.Restart(&st.Quiz, &st.Readouts)
}

func coordText(p plane.Point) string {
	return fmt.Sprintf("Coordinate: %d, %d", p.X, p.Y)
}
