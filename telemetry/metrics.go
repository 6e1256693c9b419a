package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the build pipeline's own instrumentation: how long a build
// took and how many samples landed per segment. It is plain
// prometheus.Histogram/CounterVec fields wrapped by a struct, not a custom
// prometheus.Collector — there is no ongoing scrape loop to drive one, so
// registering the metrics directly against a registerer at construction
// time is enough.
type Metrics struct {
	BuildDuration prometheus.Histogram
	SampleCount   *prometheus.CounterVec
}

// NewMetrics creates and registers the build pipeline's metrics against reg.
// Pass prometheus.DefaultRegisterer for a process-wide build, or a fresh
// prometheus.NewRegistry() in tests to avoid polluting the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lookahead_build_duration_seconds",
			Help:    "Wall-clock time spent building the routing-cost lookahead map.",
			Buckets: prometheus.DefBuckets,
		}),
		SampleCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lookahead_segment_samples_total",
			Help: "Number of Dijkstra-profiling samples recorded per wire-segment type.",
		}, []string{"segment"}),
	}

	reg.MustRegister(m.BuildDuration, m.SampleCount)

	return m
}

// ObserveSegment records count samples recorded for segment seg.
func (m *Metrics) ObserveSegment(seg string, count int) {
	m.SampleCount.WithLabelValues(seg).Add(float64(count))
}
