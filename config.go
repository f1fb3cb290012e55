package snapfetch

import (
	"log/slog"
	"time"

	"github.com/Keksclan/snapfetch/breaker"
	"github.com/Keksclan/snapfetch/policy"
	"github.com/Keksclan/snapfetch/ratelimit"
	"github.com/Keksclan/snapfetch/tracing"
)

// config holds the internal configuration assembled via functional options.
type config struct {
	logger   *slog.Logger
	metrics  *metrics
	tracing  *tracing.Config
	limiter  *ratelimit.Limiter
	brk      *breaker.Breaker
	policies *policy.Resolver
	now      func() time.Time
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		now:    time.Now,
	}
}
