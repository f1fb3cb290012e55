// Package ratelimit provides a token-bucket limiter backed by
// golang.org/x/time/rate, used to pace outgoing remote document fetches so
// a cache-miss storm cannot hammer the document store.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter wraps a token-bucket limiter that paces outgoing fetches.
type Limiter struct {
	lim *rate.Limiter
}

// NewLimiter creates a Limiter that permits rps fetches per second with the
// given burst size.
func NewLimiter(rps float64, burst int) *Limiter {
	return &Limiter{lim: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Allow reports whether a single fetch may proceed right now.
func (l *Limiter) Allow() bool {
	return l.lim.Allow()
}

// Wait blocks until a fetch may proceed or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.lim.Wait(ctx)
}
