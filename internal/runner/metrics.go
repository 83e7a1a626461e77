package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Metrics holds the client-side benchmark metrics.
type Metrics struct {
	fetchCount    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
}

// NewMetrics registers the benchmark metrics against the given registry.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		fetchCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fetch_requests_total",
				Help: "Total number of fetch operations issued, by outcome.",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "fetch_duration_seconds",
				Help:    "Wall-clock duration of individual fetch operations.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}

	if err := reg.Register(m.fetchCount); err != nil {
		return nil, err
	}
	if err := reg.Register(m.fetchDuration); err != nil {
		return nil, err
	}

	return m, nil
}

// observe records one finished fetch. A nil receiver is a no-op so the runner
// works without metrics wired.
func (m *Metrics) observe(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.fetchCount.WithLabelValues(outcome).Inc()
	m.fetchDuration.Observe(d.Seconds())
}
