// Package contextx carries per-call metadata through a context. Each
// document retrieval is tagged with a request ID that shows up in log fields
// and span attributes, so one call can be followed across cache, retry, and
// remote-fetch boundaries.
package contextx

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// contextKey is an unexported type used as context key to avoid collisions
// with keys defined in other packages.
type contextKey int

const requestIDKey contextKey = iota

// WithRequestID returns a derived context that carries the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID stored in ctx.
// It returns an empty string when no request ID is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// EnsureRequestID returns ctx carrying a request ID, generating a fresh one
// when none is present, together with the ID in effect.
func EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id := RequestIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := newRequestID()
	return WithRequestID(ctx, id), id
}

// newRequestID produces a short random hex ID.
func newRequestID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
