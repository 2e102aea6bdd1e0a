package session

import (
	"testing"

	"github.com/wesen/plotgrid/internal/render"
)

func TestNew(t *testing.T) {
	st := New()
	if st.Coord != CoordBlank || st.Score != InitialScore || st.Progress != ProgressIdle {
		t.Errorf("readouts %+v", st.Readouts)
	}
	if st.Message != "" || st.Result.Visible {
		t.Errorf("unexpected message or dialog: %+v", st.Readouts)
	}
	if st.Quiz.Active || st.PointerDown || st.Captured || st.LastPreview != nil {
		t.Errorf("state not idle: %+v", st)
	}
	if st.Marker.Kind != render.MarkerNone {
		t.Errorf("marker %+v", st.Marker)
	}
}

func TestReadouts(t *testing.T) {
	var r Readouts
	r.SetMessage("Correct!")
	r.AppendMessage(" Quiz complete.")
	if r.Message != "Correct! Quiz complete." {
		t.Errorf("message %q", r.Message)
	}

	r.ShowResult("vro </3", "Final score: 0/10")
	if !r.Result.Visible || r.Result.Phrase != "vro </3" {
		t.Errorf("result %+v", r.Result)
	}
	r.HideResult()
	if r.Result.Visible {
		t.Error("still visible")
	}
	if r.Result.Final != "Final score: 0/10" {
		t.Errorf("hide dropped the text: %+v", r.Result)
	}
}
