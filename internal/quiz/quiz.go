// Package quiz runs the plotting quiz: ten random integer targets, one
// answer each, a running score and a closing verdict.
package quiz

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/wesen/plotgrid/internal/plane"
)

// TotalQuestions is the length of one quiz.
const TotalQuestions = 10

// CoordPlaceholder replaces the live coordinate while a quiz hides it.
const CoordPlaceholder = "Coordinate: —"

// State is the quiz progress. The zero value is an inactive quiz.
type State struct {
	Active   bool
	Target   *plane.Point
	Score    int
	Question int
	Answered int
}

// Display is where the engine reports to the user.
type Display interface {
	SetMessage(string)
	AppendMessage(string)
	SetCoord(string)
	SetProgress(string)
	SetScore(string)
	ShowResult(phrase, finalScore string)
	HideResult()
}

// Engine draws targets and scores answers. It keeps no quiz state of its
// own; callers pass the State to operate on.
type Engine struct {
	rng   *rand.Rand
	bound plane.Range
	log   logrus.FieldLogger
}

// NewEngine returns an engine drawing targets within r from src.
func NewEngine(r plane.Range, src rand.Source, log logrus.FieldLogger) *Engine {
	return &Engine{
		rng:   rand.New(src),
		bound: r,
		log:   log.WithField("component", "quiz"),
	}
}

// Start resets st to question 1 with a zero score and asks the first
// question.
func (e *Engine) Start(st *State, d Display) {
	*st = State{Active: true, Question: 1}
	d.SetScore(scoreText(st.Score))
	d.SetMessage("Quiz started: plot the shown target by clicking and releasing on the grid.")
	d.SetCoord(CoordPlaceholder)
	e.log.Info("quiz started")
	e.SpawnTarget(st, d)
}

// SpawnTarget draws a new target, each axis independently uniform over the
// range. The new target may repeat the previous one.
func (e *Engine) SpawnTarget(st *State, d Display) {
	span := e.bound.Span() + 1
	t := plane.Pt(e.rng.IntN(span)+e.bound.Min, e.rng.IntN(span)+e.bound.Min)
	st.Target = &t
	d.SetProgress(fmt.Sprintf("Question %d/%d — Target: %s", st.Question, TotalQuestions, t))
	e.log.WithFields(logrus.Fields{"question": st.Question, "target": t.String()}).Debug("target spawned")
}

// Evaluate scores a plotted point against the current target and moves on
// to the next question, or finishes the quiz after the last one. It does
// nothing unless a quiz is active with a target outstanding.
func (e *Engine) Evaluate(st *State, d Display, p plane.Point) {
	if !st.Active || st.Target == nil {
		return
	}
	target := *st.Target
	correct := p == target
	if correct {
		st.Score++
		d.SetMessage(fmt.Sprintf("Correct! Plotted %s.", p))
	} else {
		d.SetMessage(fmt.Sprintf("Wrong. Target was %s. You plotted %s.", target, p))
	}
	d.SetScore(scoreText(st.Score))
	st.Target = nil
	st.Answered++
	e.log.WithFields(logrus.Fields{
		"question": st.Question,
		"target":   target.String(),
		"plotted":  p.String(),
		"correct":  correct,
		"score":    st.Score,
	}).Debug("answer evaluated")

	if st.Answered >= TotalQuestions {
		st.Active = false
		d.SetProgress(fmt.Sprintf("Quiz finished — final score: %d/%d", st.Score, TotalQuestions))
		d.AppendMessage(" Quiz complete.")
		e.log.WithField("score", st.Score).Info("quiz finished")
		Present(d, st.Score)
		return
	}
	st.Question = st.Answered + 1
	e.SpawnTarget(st, d)
}

// Restart hides the result and begins a fresh quiz. The answered count is
// reset along with the score so the new run gets all ten questions, and
// the coordinate readout goes back to the placeholder as on Start.
func (e *Engine) Restart(st *State, d Display) {
	d.HideResult()
	*st = State{Question: 1}
	d.SetScore(scoreText(st.Score))
	d.SetMessage("Quiz restarted.")
	d.SetCoord(CoordPlaceholder)
	e.log.Info("quiz restarted")
	e.SpawnTarget(st, d)
	st.Active = true
}

// Close hides the result without touching the quiz.
func (e *Engine) Close(d Display) {
	d.HideResult()
}

func scoreText(score int) string { return fmt.Sprintf("Score: %d", score) }
