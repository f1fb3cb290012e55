package doccache

import (
	"math"
	"time"
)

// Forever is a TTL that never goes stale.
const Forever = time.Duration(math.MaxInt64)

// Options controls the cache behavior of a single call. The zero value
// disables cache management entirely (a pre-existing locked TTL is still
// honored on read, see [Decide]).
type Options struct {
	// Enabled turns on cache-aware behavior for this call. When false the
	// engine never writes to the store, but it still serves a cached payload
	// whose persisted locked TTL has not elapsed.
	Enabled bool

	// TTL is the one-time freshness window for this call. The zero value
	// means immediately stale; use [Forever] for a payload that never
	// expires.
	TTL time.Duration

	// Lock persists TTL alongside the next written entry so that it stays in
	// effect for future calls until replaced.
	Lock bool

	// BypassLock ignores an existing locked TTL for this call's freshness
	// check. It does not clear or replace the lock.
	BypassLock bool

	// ForceRefresh discards any existing entry and refetches, regardless of
	// freshness.
	ForceRefresh bool
}
