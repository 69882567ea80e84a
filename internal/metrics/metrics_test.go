package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_ObserveRun(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.ObserveRun("carol", time.Millisecond, nil)
	r.ObserveRun("carol", time.Millisecond, nil)
	r.ObserveRun("temp", time.Millisecond, errors.New("enter a number"))

	if got := testutil.ToFloat64(r.runs.WithLabelValues("carol", OutcomeSuccess)); got != 2 {
		t.Errorf("carol success runs = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.runs.WithLabelValues("temp", OutcomeError)); got != 1 {
		t.Errorf("temp error runs = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(r.duration); got != 2 {
		t.Errorf("duration series = %d, want 2", got)
	}
}

func TestRecorder_AddLines(t *testing.T) {
	t.Parallel()
	r := NewRecorder()

	r.AddLines("carol", 102)
	r.AddLines("carol", 0)

	if got := testutil.ToFloat64(r.lines.WithLabelValues("carol")); got != 102 {
		t.Errorf("carol lines = %v, want 102", got)
	}
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	t.Parallel()
	a := NewRecorder()
	b := NewRecorder()

	a.ObserveRun("fib", time.Microsecond, nil)

	if got := testutil.ToFloat64(b.runs.WithLabelValues("fib", OutcomeSuccess)); got != 0 {
		t.Errorf("recorders should not share state, got %v", got)
	}
}

func TestRecorder_WriteTextfile(t *testing.T) {
	t.Parallel()
	r := NewRecorder()
	r.ObserveRun("plusone", time.Microsecond, nil)

	path := filepath.Join(t.TempDir(), "drills.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	for _, want := range []string{
		`drills_exercise_runs_total{exercise="plusone",outcome="success"} 1`,
		"drills_exercise_duration_seconds_bucket",
		"go_goroutines",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q", want)
		}
	}
}
