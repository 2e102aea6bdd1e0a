package controller

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/wesen/plotgrid/internal/plane"
	"github.com/wesen/plotgrid/internal/quiz"
	"github.com/wesen/plotgrid/internal/render"
	"github.com/wesen/plotgrid/internal/session"
)

func newTestController(seed uint64) *Controller {
	log, _ := test.NewNullLogger()
	r := plane.DefaultRange()
	e := quiz.NewEngine(r, rand.NewPCG(seed, 0), log)
	return New(plane.NewMapper(r, 600), e, log)
}

// px returns the surface pixel of a logical point on the 600px test plane.
func px(c *Controller, p plane.Point) (float64, float64) {
	return c.Mapper().PointToSurface(p)
}

// plot performs a full press, move, release gesture at p.
func plot(c *Controller, st *session.State, p plane.Point) {
	c.PointerDown(st)
	sx, sy := px(c, p)
	c.PointerMove(st, sx, sy)
	c.PointerUp(st)
}

// ── Gesture ──

func TestPointerDownCaptures(t *testing.T) {
	c := newTestController(1)
	st := session.New()
	c.PointerDown(st)
	if !st.PointerDown || !st.Captured {
		t.Fatalf("after down: down=%v captured=%v", st.PointerDown, st.Captured)
	}
	c.PointerUp(st)
	if st.PointerDown || st.Captured {
		t.Fatalf("after up: down=%v captured=%v", st.PointerDown, st.Captured)
	}
}

func TestPointerMovePreview(t *testing.T) {
	c := newTestController(1)
	st := session.New()
	// 10px right and 10px below (4,3): still snaps to (4,3)
	sx, sy := px(c, plane.Pt(4, 3))
	c.PointerMove(st, sx+10, sy+10)

	want := render.Marker{Kind: render.MarkerPreview, At: plane.Pt(4, 3)}
	if st.Marker != want {
		t.Errorf("marker %+v, want %+v", st.Marker, want)
	}
	if st.Coord != "Coordinate: 4, 3" {
		t.Errorf("coord %q", st.Coord)
	}
	if st.LastPreview == nil || *st.LastPreview != plane.Pt(4, 3) {
		t.Errorf("last preview %v", st.LastPreview)
	}
}

func TestPointerUpWithoutPreviewIsNoop(t *testing.T) {
	c := newTestController(1)
	st := session.New()
	c.PointerDown(st)
	c.PointerUp(st)
	if st.Marker.Kind != render.MarkerNone || st.Message != "" {
		t.Errorf("plotted without preview: %+v %q", st.Marker, st.Message)
	}
}

func TestPlot(t *testing.T) {
	c := newTestController(1)
	st := session.New()
	plot(c, st, plane.Pt(-2, 7))

	want := render.Marker{Kind: render.MarkerPlotted, At: plane.Pt(-2, 7)}
	if st.Marker != want {
		t.Errorf("marker %+v, want %+v", st.Marker, want)
	}
	if st.Message != "Plotted (-2, 7)." {
		t.Errorf("message %q", st.Message)
	}
	if st.Coord != "Coordinate: -2, 7" {
		t.Errorf("coord %q", st.Coord)
	}
}

func TestPlotBoundaries(t *testing.T) {
	tests := []struct {
		p  plane.Point
		ok bool
	}{
		{plane.Pt(-10, -10), true},
		{plane.Pt(10, 10), true},
		{plane.Pt(-11, 0), false},
		{plane.Pt(0, 11), false},
	}
	for _, tc := range tests {
		c := newTestController(1)
		st := session.New()
		plot(c, st, tc.p)
		if tc.ok {
			if st.Marker.Kind != render.MarkerPlotted || st.Marker.At != tc.p {
				t.Errorf("%v: not plotted, marker %+v", tc.p, st.Marker)
			}
			continue
		}
		if st.Message != "Values must be between -10 and 10." {
			t.Errorf("%v: message %q", tc.p, st.Message)
		}
		if st.Marker.Kind == render.MarkerPlotted {
			t.Errorf("%v: out-of-range point plotted", tc.p)
		}
	}
}

func TestReleaseOutsideSurfaceWhileCaptured(t *testing.T) {
	c := newTestController(1)
	st := session.New()
	c.PointerDown(st)
	c.PointerMove(st, -45, 300) // 1.5 units left of the surface
	c.PointerUp(st)
	if !strings.HasPrefix(st.Message, "Values must be between") {
		t.Errorf("message %q", st.Message)
	}
}

func TestClear(t *testing.T) {
	c := newTestController(1)
	st := session.New()
	plot(c, st, plane.Pt(1, 1))
	c.Clear(st)
	if st.Marker.Kind != render.MarkerNone || st.Message != "" || st.Coord != session.CoordBlank {
		t.Errorf("after clear: %+v %q %q", st.Marker, st.Message, st.Coord)
	}
}

// ── Quiz ──

func TestQuizHidesPreview(t *testing.T) {
	c := newTestController(2)
	st := session.New()
	c.StartQuiz(st)
	sx, sy := px(c, plane.Pt(2, 2))
	c.PointerMove(st, sx, sy)
	if st.Marker.Kind != render.MarkerNone {
		t.Errorf("preview shown during quiz: %+v", st.Marker)
	}
	if st.Coord != quiz.CoordPlaceholder {
		t.Errorf("coord %q during quiz", st.Coord)
	}
	if st.LastPreview == nil || *st.LastPreview != plane.Pt(2, 2) {
		t.Errorf("last preview not tracked during quiz: %v", st.LastPreview)
	}
}

func TestQuizCorrectAnswer(t *testing.T) {
	c := newTestController(3)
	st := session.New()
	c.StartQuiz(st)
	if st.Quiz.Score != 0 || st.Quiz.Question != 1 || st.Quiz.Target == nil {
		t.Fatalf("quiz after start: %+v", st.Quiz)
	}
	plot(c, st, *st.Quiz.Target)
	if !strings.Contains(st.Message, "Correct!") {
		t.Errorf("message %q", st.Message)
	}
	if st.Quiz.Score != 1 || st.Quiz.Answered != 1 || st.Quiz.Question != 2 {
		t.Errorf("quiz %+v", st.Quiz)
	}
	if !strings.HasPrefix(st.Progress, "Question 2/10 — Target: ") {
		t.Errorf("progress %q", st.Progress)
	}
	// The answer stays on the plane
	if st.Marker.Kind != render.MarkerPlotted {
		t.Errorf("marker %+v", st.Marker)
	}
}

func TestQuizWrongAnswer(t *testing.T) {
	c := newTestController(4)
	st := session.New()
	c.StartQuiz(st)
	target := *st.Quiz.Target
	p := plane.Pt(-target.X, target.Y+1)
	if p.Y > plane.DefaultMax {
		p.Y = target.Y - 1
	}
	plot(c, st, p)
	if !strings.Contains(st.Message, "Target was "+target.String()) ||
		!strings.Contains(st.Message, "You plotted "+p.String()) {
		t.Errorf("message %q", st.Message)
	}
	if st.Quiz.Score != 0 || st.Quiz.Answered != 1 {
		t.Errorf("quiz %+v", st.Quiz)
	}
}

func TestQuizOutOfRangeNotAnswered(t *testing.T) {
	c := newTestController(5)
	st := session.New()
	c.StartQuiz(st)
	plot(c, st, plane.Pt(-11, 0))
	if st.Quiz.Answered != 0 {
		t.Errorf("out-of-range plot answered the question: %+v", st.Quiz)
	}
}

func TestQuizFullRunAndRestart(t *testing.T) {
	c := newTestController(6)
	st := session.New()
	c.StartQuiz(st)
	for range quiz.TotalQuestions {
		plot(c, st, *st.Quiz.Target)
	}
	if st.Quiz.Active {
		t.Fatal("quiz still active")
	}
	if !st.Result.Visible || st.Result.Phrase != "this guys a genius or sum" || st.Result.Final != "Final score: 10/10" {
		t.Fatalf("result %+v", st.Result)
	}

	// Input is blocked while the result is open
	before := st.Marker
	plot(c, st, plane.Pt(0, 0))
	if st.Marker != before {
		t.Errorf("plot went through the result dialog: %+v", st.Marker)
	}

	c.RestartQuiz(st)
	if st.Result.Visible || !st.Quiz.Active || st.Quiz.Score != 0 || st.Quiz.Question != 1 || st.Quiz.Target == nil {
		t.Errorf("after restart: %+v %+v", st.Result, st.Quiz)
	}
}

func TestCloseResult(t *testing.T) {
	c := newTestController(7)
	st := session.New()
	c.StartQuiz(st)
	for range quiz.TotalQuestions {
		plot(c, st, plane.Pt(-11, -11))
		plot(c, st, plane.Pt(10, 10))
	}
	if !st.Result.Visible {
		t.Fatal("result not shown")
	}
	c.CloseResult(st)
	if st.Result.Visible || st.Quiz.Active {
		t.Errorf("after close: %+v %+v", st.Result, st.Quiz)
	}
}
