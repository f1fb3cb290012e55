// Package retry wraps a fallible operation — typically a remote document
// fetch — in a bounded retry loop with a fixed or backing-off delay and an
// optional allow-list filter on gRPC status codes.
package retry

import (
	"math"
	"math/rand"
	"time"
)

// delay returns the wait before the retry following attempt (0-indexed).
// With a BackoffFactor above 1 the base delay grows geometrically and is
// capped at cfg.MaxDelay; otherwise it stays fixed at cfg.Delay.
func delay(cfg Config, attempt int) time.Duration {
	d := float64(cfg.Delay)
	if cfg.BackoffFactor > 1 {
		d *= math.Pow(cfg.BackoffFactor, float64(attempt))
		if max := float64(cfg.MaxDelay); max > 0 && d > max {
			d = max
		}
	}
	if cfg.Jitter > 0 {
		// jitter adds up to ±Jitter fraction of the delay.
		d += d * cfg.Jitter * (rand.Float64()*2 - 1)
	}
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}
