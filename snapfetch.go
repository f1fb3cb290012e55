// Package snapfetch retrieves single documents from a remote document store,
// layering two orthogonal policies over the raw fetch: a cache with one-time
// and persisted ("locked") TTLs held in an external key-value store, and a
// bounded retry policy with an optional error-code allow-list.
package snapfetch

import (
	"context"
	"errors"
	"fmt"

	"github.com/Keksclan/snapfetch/breaker"
	"github.com/Keksclan/snapfetch/contextx"
	"github.com/Keksclan/snapfetch/doccache"
	"github.com/Keksclan/snapfetch/remote"
	"github.com/Keksclan/snapfetch/retry"
	"github.com/Keksclan/snapfetch/store"
	"github.com/Keksclan/snapfetch/tracing"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CallOptions carries the per-call cache and retry configuration. The zero
// value fetches straight from the remote store without touching the cache
// (beyond honoring a previously locked TTL) and without retrying.
type CallOptions struct {
	Cache doccache.Options
	Retry retry.Config
}

// Client is the document-retrieval entry point. It composes a remote
// [remote.Fetcher] with a persistent [store.Store] and is configured through
// functional [Option] values passed to [New].
//
// Concurrent calls for the same path are not coordinated against each other:
// two simultaneous refreshes may race on the store and the last write wins.
type Client struct {
	fetcher remote.Fetcher
	store   store.Store
	cfg     config
}

// New creates a Client that fetches documents through fetcher and keeps
// cache entries in st.
//
// Example:
//
//	c := snapfetch.New(fetcher, st,
//		snapfetch.WithRateLimit(100, 20),
//		snapfetch.WithBreaker(breaker.Config{FailureThreshold: 5, OpenTimeout: 30 * time.Second, HalfOpenMaxSuccess: 2}),
//	)
func New(fetcher remote.Fetcher, st store.Store, opts ...Option) *Client {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Client{fetcher: fetcher, store: st, cfg: cfg}
}

// GetDocument returns the payload of the document at path, served from the
// cache or fetched fresh according to opts. The boolean reports whether the
// document exists; a missing remote document yields (nil, false, nil).
//
// A nil opts falls back to the defaults resolved by the configured policy
// groups (see [WithPolicies]), or to the zero [CallOptions].
//
// Store access errors, remote fetch errors, and [retry.ErrNotRetryable]
// propagate unmodified.
func (c *Client) GetDocument(ctx context.Context, path string, opts *CallOptions) ([]byte, bool, error) {
	ctx, reqID := contextx.EnsureRequestID(ctx)
	ctx, span := tracing.StartGet(ctx, c.cfg.tracing, path, reqID)
	defer span.End()

	co := c.callOptions(path, opts)
	log := c.cfg.logger.With("path", path, "request_id", reqID)

	entry, err := c.loadEntry(ctx, path)
	if err != nil {
		tracing.RecordResult(span, err)
		return nil, false, err
	}

	dec := doccache.Decide(c.cfg.now(), entry, co.Cache)
	if dec.UseCached {
		c.cfg.metrics.observeOutcome(outcomeCached)
		tracing.RecordOutcome(span, outcomeCached)
		tracing.RecordResult(span, nil)
		log.Debug("serving cached document", "age", entry.Age(c.cfg.now()))
		return entry.Doc, entry.Exists, nil
	}

	if dec.DeleteFirst {
		if err := c.store.Delete(ctx, path); err != nil {
			tracing.RecordResult(span, err)
			return nil, false, err
		}
	}

	snap, err := c.fetch(ctx, path, co.Retry)
	if err != nil {
		tracing.RecordResult(span, err)
		log.Debug("remote fetch failed", "error", err)
		return nil, false, err
	}

	outcome := outcomePassthrough
	if dec.Persist {
		outcome = outcomeRefresh
		e := &doccache.Entry{
			Doc:       snap.Data(),
			Exists:    snap.Exists(),
			FetchedAt: c.cfg.now(),
			LockTTL:   dec.LockTTL,
			Locked:    dec.Lock,
		}
		b, err := doccache.EncodeEntry(e)
		if err != nil {
			tracing.RecordResult(span, err)
			return nil, false, fmt.Errorf("snapfetch: encode entry for %q: %w", path, err)
		}
		if err := c.store.Set(ctx, path, b); err != nil {
			tracing.RecordResult(span, err)
			return nil, false, err
		}
	}

	c.cfg.metrics.observeOutcome(outcome)
	tracing.RecordOutcome(span, outcome)
	tracing.RecordResult(span, nil)
	log.Debug("fetched document", "exists", snap.Exists(), "persisted", dec.Persist)
	return snap.Data(), snap.Exists(), nil
}

// ClearCache drops every cache entry held by the underlying store.
func (c *Client) ClearCache(ctx context.Context) error {
	return c.store.Clear(ctx)
}

// loadEntry reads and decodes the cache entry for path, returning nil when
// the path has never been cached.
func (c *Client) loadEntry(ctx context.Context, path string) (*doccache.Entry, error) {
	b, ok, err := c.store.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return doccache.DecodeEntry(b)
}

// fetch runs the remote fetch under the retry policy, pacing each attempt
// through the rate limiter and the circuit breaker when configured. Every
// attempt is gated individually, so a breaker that opens mid-retry stops the
// remaining attempts from reaching the remote store.
func (c *Client) fetch(ctx context.Context, path string, rc retry.Config) (remote.Snapshot, error) {
	return retry.Do(ctx, rc, func(ctx context.Context) (remote.Snapshot, error) {
		if c.cfg.limiter != nil {
			if err := c.cfg.limiter.Wait(ctx); err != nil {
				return remote.Snapshot{}, err
			}
		}
		c.cfg.metrics.observeAttempt()

		var snap remote.Snapshot
		do := func() error {
			var err error
			snap, err = c.fetcher.FetchByPath(ctx, path)
			return err
		}

		var err error
		if c.cfg.brk != nil {
			err = c.cfg.brk.Do(do)
			if errors.Is(err, breaker.ErrOpen) {
				// Surface the rejection with a status code so the retry
				// allow-list treats it like any other unavailable remote.
				err = status.Error(codes.Unavailable, err.Error())
			}
		} else {
			err = do()
		}
		if err != nil {
			c.cfg.metrics.observeFailure()
			return remote.Snapshot{}, err
		}
		return snap, nil
	})
}

// callOptions resolves the options in effect for one call: explicit options
// win, then policy-group defaults, then the zero value.
func (c *Client) callOptions(path string, opts *CallOptions) CallOptions {
	if opts != nil {
		return *opts
	}
	if c.cfg.policies != nil {
		if _, d, ok := c.cfg.policies.Resolve(path); ok && d != nil {
			var co CallOptions
			if d.Cache != nil {
				co.Cache = *d.Cache
			}
			if d.Retry != nil {
				co.Retry = *d.Retry
			}
			return co
		}
	}
	return CallOptions{}
}
