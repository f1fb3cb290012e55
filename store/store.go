// Package store defines the persistent key-value contract the document
// cache is written to, along with in-process, Redis, and SQLite backends.
//
// A store is a dumb storage primitive: it holds opaque entry bytes keyed by
// logical document path and applies no expiry or policy of its own —
// freshness is computed on read by the decision engine.
package store

import "context"

// DefaultNamespace is the key prefix under which document cache entries are
// stored, keeping them apart from unrelated users of the same backend.
const DefaultNamespace = "snapfetch:"

// Store is the persistence contract. Implementations must be safe for
// concurrent use. Errors are surfaced to the caller unmodified; this layer
// never retries or swallows them.
type Store interface {
	// Get retrieves the value stored under key. The boolean reports whether
	// the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores val under key, replacing any previous value.
	Set(ctx context.Context, key string, val []byte) error

	// Delete removes the value stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry belonging to this store's namespace.
	Clear(ctx context.Context) error
}
