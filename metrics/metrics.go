// Package metrics collects the counters of one reachability run. A run is a
// batch job, so metrics are written once to a node-exporter textfile
// instead of being scraped.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run holds the collectors of a run on a private registry.
type Run struct {
	registry *prometheus.Registry

	Marked      prometheus.Counter
	StartsDone  prometheus.Gauge
	StartsTotal prometheus.Gauge
	WalkSeconds prometheus.Histogram
}

// NewRun registers a fresh set of collectors.
func NewRun() *Run {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Run{
		registry: reg,
		Marked: f.NewCounter(prometheus.CounterOpts{
			Name: "rainbow_states_marked_total",
			Help: "Storable states marked reachable.",
		}),
		StartsDone: f.NewGauge(prometheus.GaugeOpts{
			Name: "rainbow_starting_states_done",
			Help: "Starting states whose walk has completed.",
		}),
		StartsTotal: f.NewGauge(prometheus.GaugeOpts{
			Name: "rainbow_starting_states_total",
			Help: "Starting states of the run.",
		}),
		WalkSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "rainbow_walk_seconds",
			Help:    "Duration of the walk from one starting state.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		}),
	}
}

// ObserveWalk records one finished walk.
func (r *Run) ObserveWalk(marked int, d time.Duration) {
	r.Marked.Add(float64(marked))
	r.StartsDone.Inc()
	r.WalkSeconds.Observe(d.Seconds())
}

// Registry exposes the registry, mainly for tests.
func (r *Run) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (r *Run) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
