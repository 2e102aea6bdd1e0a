// Package session holds everything one plotting session mutates: the quiz
// progress, the pointer gesture, the marker on the plane and the text
// readouts. Handlers receive a *State and update it in place; hosts render
// from it afterwards.
package session

import (
	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/internal/quiz"
	"github.com/wesen/plotgrid/internal/render"
)

// Initial readout texts.
const (
	CoordBlank   = "Coordinate: —, —"
	ProgressIdle = "Press [s] to start a quiz"
	InitialScore = "Score: 0"
)

// Modal is the result dialog.
type Modal struct {
	Visible bool
	Phrase  string
	Final   string
}

// Readouts are the text sinks shown next to the plane. They implement
// quiz.Display.
type Readouts struct {
	Message  string
	Coord    string
	Progress string
	Score    string
	Result   Modal
}

func (r *Readouts) SetMessage(s string)    { r.Message = s }
func (r *Readouts) AppendMessage(s string) { r.Message += s }
func (r *Readouts) SetCoord(s string)      { r.Coord = s }
func (r *Readouts) SetProgress(s string)   { r.Progress = s }
func (r *Readouts) SetScore(s string)      { r.Score = s }

// ShowResult fills and opens the result dialog.
func (r *Readouts) ShowResult(phrase, final string) {
	r.Result = Modal{Visible: true, Phrase: phrase, Final: final}
}

// HideResult closes the dialog, keeping its text.
func (r *Readouts) HideResult() { r.Result.Visible = false }

// State is one session.
type State struct {
	Quiz quiz.State
	Readouts

	// PointerDown is true between a press and its release; Captured is
	// true while the pointer is captured by the plane.
	PointerDown bool
	Captured    bool
	// LastPreview is the snapped position of the latest pointer move, nil
	// until the pointer first moves over the plane.
	LastPreview *plane.Point

	// Marker is what the next render draws over the grid.
	Marker render.Marker
}

// New returns a session with a blank plane and no quiz.
func New() *State {
	return &State{
		Readouts: Readouts{
			Coord:    CoordBlank,
			Progress: ProgressIdle,
			Score:    InitialScore,
		},
	}
}

var _ quiz.Display = (*Readouts)(nil)
