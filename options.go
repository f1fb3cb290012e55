package snapfetch

import (
	"log/slog"
	"time"

	"github.com/Keksclan/snapfetch/breaker"
	"github.com/Keksclan/snapfetch/policy"
	"github.com/Keksclan/snapfetch/ratelimit"
	"github.com/Keksclan/snapfetch/tracing"
	"github.com/prometheus/client_golang/prometheus"
)

// Option configures a Client.
type Option func(*config)

// WithLogger routes the client's debug logging through l.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMetrics registers the client's Prometheus collectors on reg and starts
// recording cache outcomes and remote fetch attempts.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *config) {
		c.metrics = newMetrics(reg)
	}
}

// WithTracing creates an OpenTelemetry span per GetDocument call using the
// given configuration.
func WithTracing(tc *tracing.Config) Option {
	return func(c *config) {
		c.tracing = tc
	}
}

// WithRateLimit paces remote fetches to rps requests per second with the
// given burst. Cache hits are never throttled.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		c.limiter = ratelimit.NewLimiter(rps, burst)
	}
}

// WithBreaker guards the remote fetch path with a circuit breaker. A
// rejected fetch surfaces as an Unavailable status error.
func WithBreaker(cfg breaker.Config) Option {
	return func(c *config) {
		c.brk = breaker.New(cfg)
	}
}

// WithPolicies supplies default per-path call options, applied whenever
// GetDocument is invoked without explicit options.
func WithPolicies(r *policy.Resolver) Option {
	return func(c *config) {
		c.policies = r
	}
}

// WithClock replaces the time source used for freshness checks and entry
// timestamps. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
