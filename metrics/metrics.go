// Package metrics records solver outcomes on a private Prometheus registry
// and exports them in the node_exporter textfile format.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvtsp/tsp"
)

// Status label values.
const (
	StatusOK        = "ok"
	StatusError     = "error"
	StatusCancelled = "cancelled"
	StatusCached    = "cached"
)

// Recorder owns one registry and the solver collectors on it.
type Recorder struct {
	reg *prometheus.Registry

	solves       *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	distance     *prometheus.GaugeVec
	restarts     prometheus.Counter
	points       prometheus.Histogram
	cacheLookups *prometheus.CounterVec
}

// New registers the collectors under namespace on a fresh registry.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		reg: reg,
		solves: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "solves_total",
				Help:      "Total number of solve runs",
			},
			[]string{"mode", "strategy", "status"},
		),
		duration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Wall-clock duration of solve runs",
				Buckets:   []float64{.001, .01, .1, .5, 1, 5, 10, 30, 60, 300, 900},
			},
			[]string{"mode"},
		),
		distance: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tour_distance",
				Help:      "Length of the last returned tour",
			},
			[]string{"mode"},
		),
		restarts: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "restarts_total",
				Help:      "Local search restarts completed",
			},
		),
		points: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "points",
				Help:      "Number of points per solve",
				Buckets:   []float64{5, 10, 15, 20, 50, 100, 500, 1000, 5000},
			},
		),
		cacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Solution cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveSolve records one Solve call over n points.
func (r *Recorder) ObserveSolve(opts tsp.Options, n int, res tsp.Result, err error, elapsed time.Duration) {
	mode := opts.Mode.String()
	status := StatusOK
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = StatusCancelled
	case err != nil:
		status = StatusError
	}

	r.solves.WithLabelValues(mode, opts.Strategy.String(), status).Inc()
	r.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	r.points.Observe(float64(n))
	r.restarts.Add(float64(res.Restarts))
	if len(res.Tour.Route) > 0 {
		r.distance.WithLabelValues(mode).Set(res.Tour.Distance)
	}
}

// ObserveCached records a solve answered from the solution cache.
func (r *Recorder) ObserveCached(opts tsp.Options, n int, t tsp.Tour) {
	mode := opts.Mode.String()
	r.solves.WithLabelValues(mode, opts.Strategy.String(), StatusCached).Inc()
	r.points.Observe(float64(n))
	r.distance.WithLabelValues(mode).Set(t.Distance)
}

// ObserveCacheLookup records a hit or a miss.
func (r *Recorder) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// Gatherer exposes the registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
