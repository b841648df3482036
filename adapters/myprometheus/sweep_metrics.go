package myprometheus

import (
	"time"

	"mypresence/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

const DefaultNamespace = "mypresence"

type sweepMetrics struct {
	removed  prometheus.Counter
	duration prometheus.Histogram
	skipped  prometheus.Counter
	failed   prometheus.Counter
}

var _ interfaces.SweepMetrics = (*sweepMetrics)(nil)

// NewSweepMetrics creates the expiry sweeper collectors and registers them on reg.
// Uses prometheus.DefaultRegisterer if reg is nil and DefaultNamespace if namespace is empty.
// Panics if the collectors are already registered.
func NewSweepMetrics(reg prometheus.Registerer, namespace string) *sweepMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	m := &sweepMetrics{
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "expiry_sweep",
			Name:      "removed_entries_total",
			Help:      "Total entries removed by the expiry sweeper.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "expiry_sweep",
			Name:      "duration_seconds",
			Help:      "Duration of completed expiry sweeps in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms .. ~2s
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "expiry_sweep",
			Name:      "skipped_total",
			Help:      "Ticks skipped because the previous sweep was still running.",
		}),
		failed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "expiry_sweep",
			Name:      "failed_total",
			Help:      "Sweeps aborted because the entry listing failed.",
		}),
	}
	reg.MustRegister(m.removed, m.duration, m.skipped, m.failed)

	return m
}

func (m *sweepMetrics) SweepCompleted(removed int, duration time.Duration) {
	m.removed.Add(float64(removed))
	m.duration.Observe(duration.Seconds())
}

func (m *sweepMetrics) SweepFailed() {
	m.failed.Inc()
}

func (m *sweepMetrics) SweepSkipped() {
	m.skipped.Inc()
}
