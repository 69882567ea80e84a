// Package metrics records exercise runs with Prometheus collectors and can
// export them in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder owns a private registry so that tests and multiple Application
// instances never collide on the global default registry.
type Recorder struct {
	registry *prometheus.Registry
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	lines    *prometheus.CounterVec
}

// NewRecorder creates a Recorder with the Go runtime collector registered
// alongside the exercise metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drills",
			Name:      "exercise_runs_total",
			Help:      "Number of exercise runs by exercise and outcome.",
		}, []string{"exercise", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "drills",
			Name:      "exercise_duration_seconds",
			Help:      "Wall-clock duration of exercise runs.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 10, 7),
		}, []string{"exercise"}),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "drills",
			Name:      "output_lines_total",
			Help:      "Lines of exercise output written.",
		}, []string{"exercise"}),
	}
	r.registry.MustRegister(
		r.runs,
		r.duration,
		r.lines,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveRun records one finished run.
func (r *Recorder) ObserveRun(exercise string, d time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	r.runs.WithLabelValues(exercise, outcome).Inc()
	r.duration.WithLabelValues(exercise).Observe(d.Seconds())
}

// AddLines counts lines of output produced by an exercise.
func (r *Recorder) AddLines(exercise string, n int) {
	if n > 0 {
		r.lines.WithLabelValues(exercise).Add(float64(n))
	}
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes every gathered metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
