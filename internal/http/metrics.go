package http

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// newMetrics registers the transport collectors on registerer. Clients that
// share a registerer share the collectors already registered there.
func newMetrics(registerer prometheus.Registerer) *metrics {
	return &metrics{
		requests: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "allculture_client_requests_total",
			Help: "Total number of API requests by response status.",
		}, []string{"status"})),
		duration: register(registerer, prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "allculture_client_request_duration_seconds",
			Help:    "Time spent waiting for API responses.",
			Buckets: prometheus.DefBuckets,
		})),
	}
}

// register returns the collector already registered under the same
// descriptor, or collector itself when it was registered now. A collector
// the registerer rejects for any other reason stays unregistered.
func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	err := registerer.Register(collector)
	if err == nil {
		return collector
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		if existing, ok := alreadyRegistered.ExistingCollector.(T); ok {
			return existing
		}
	}

	return collector
}

// observe is a no-op on a nil receiver so callers need no metrics check.
func (m *metrics) observe(status string, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(status).Inc()
	m.duration.Observe(elapsed.Seconds())
}
