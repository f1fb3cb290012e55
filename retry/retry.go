package retry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultMaxAttempts is the attempt budget used when Config.MaxAttempts is
// unset: the first attempt plus two retries.
const DefaultMaxAttempts = 3

// ErrNotRetryable marks a failure whose status code is absent from the
// configured allow-list. It is never retried, regardless of the remaining
// attempt budget. Use errors.Is to detect it; the underlying remote error is
// reachable through errors.Unwrap.
var ErrNotRetryable = errors.New("retry: error code not in the retry allow-list")

// notRetryableError wraps the underlying remote error behind the
// [ErrNotRetryable] sentinel.
type notRetryableError struct {
	code codes.Code
	err  error
}

func (e *notRetryableError) Error() string {
	return fmt.Sprintf("retry: code %s not in the retry allow-list: %v", e.code, e.err)
}

func (e *notRetryableError) Unwrap() error { return e.err }

func (e *notRetryableError) Is(target error) bool { return target == ErrNotRetryable }

// Config controls the retry behavior of [Do].
type Config struct {
	// Enabled turns retrying on. When false, fn is called exactly once and
	// its error propagates as-is.
	Enabled bool

	// MaxAttempts is the total attempt budget: the first attempt plus
	// MaxAttempts−1 retries. Zero or negative means [DefaultMaxAttempts].
	MaxAttempts int

	// Delay is the wait before each retry. It is never applied before the
	// first attempt.
	Delay time.Duration

	// BackoffFactor multiplies the delay after each failed attempt. Values
	// ≤ 1 keep the delay fixed.
	BackoffFactor float64

	// MaxDelay caps the computed delay when backoff is active. Zero means
	// no cap.
	MaxDelay time.Duration

	// Jitter adds randomness to the delay. A value of 0.2 means ±20 % of
	// the computed delay. Zero disables jitter.
	Jitter float64

	// RetryCodes is an optional allow-list of gRPC status codes. When nil,
	// every failure is retried until the budget runs out. When set, a
	// failure whose code is not listed (or that carries no status at all)
	// aborts immediately with [ErrNotRetryable].
	RetryCodes []codes.Code
}

// Do calls fn and, when cfg.Enabled is set, re-invokes it on failure up to
// the configured attempt budget, waiting cfg.Delay between attempts. Once the
// budget is exhausted the last underlying error is returned, not a wrapper.
//
// The attempt counter is local to a single Do call; concurrent calls never
// share retry state.
//
// The context is checked while waiting between attempts; a done context ends
// the retry loop with ctx.Err().
func Do[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if !cfg.Enabled {
		return fn(ctx)
	}

	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	for i := range attempts {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}

		// Budget exhausted — the underlying error propagates.
		if i == attempts-1 {
			return zero, err
		}

		if cfg.RetryCodes != nil {
			st, ok := status.FromError(err)
			if !ok || !slices.Contains(cfg.RetryCodes, st.Code()) {
				return zero, &notRetryableError{code: st.Code(), err: err}
			}
		}

		timer := time.NewTimer(delay(cfg, i))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	// Unreachable, but keeps the compiler happy.
	return zero, nil
}
