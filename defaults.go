package snapfetch

import "github.com/prometheus/client_golang/prometheus"

// DefaultOptions returns the recommended set of options for production use.
// Currently this registers metrics on the default Prometheus registerer;
// additional defaults may be added in future versions.
func DefaultOptions() []Option {
	return []Option{
		WithMetrics(prometheus.DefaultRegisterer),
	}
}
