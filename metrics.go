package snapfetch

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Cache outcome label values.
const (
	outcomeCached      = "cached"      // served from the store
	outcomeRefresh     = "refresh"     // fetched and written back
	outcomePassthrough = "passthrough" // fetched without writing (cache disabled)
)

// metrics holds the client's Prometheus collectors. A nil *metrics is valid
// and records nothing, so call sites never branch on whether metrics were
// configured.
type metrics struct {
	outcomes *prometheus.CounterVec
	attempts prometheus.Counter
	failures prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "snapfetch_requests_total",
			Help: "Document retrievals by cache outcome.",
		}, []string{"outcome"}),
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snapfetch_remote_attempts_total",
			Help: "Remote fetch attempts, including retries.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "snapfetch_remote_failures_total",
			Help: "Failed remote fetch attempts.",
		}),
	}
	reg.MustRegister(m.outcomes, m.attempts, m.failures)
	return m
}

func (m *metrics) observeOutcome(outcome string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(outcome).Inc()
}

func (m *metrics) observeAttempt() {
	if m == nil {
		return
	}
	m.attempts.Inc()
}

func (m *metrics) observeFailure() {
	if m == nil {
		return
	}
	m.failures.Inc()
}

// MetricsHandler returns an http.Handler that serves Prometheus metrics.
func (c *Client) MetricsHandler() http.Handler {
	return promhttp.Handler()
}
