package doccache

import "time"

// Decision is the tagged outcome of a cache lookup. Exactly one of the two
// branches applies: serve the stored entry as-is (UseCached), or fetch fresh
// and apply the write-back flags.
type Decision struct {
	// UseCached reports that the stored entry is fresh enough to serve.
	// The remaining fields are meaningless when it is set.
	UseCached bool

	// DeleteFirst requires the existing entry to be removed before the
	// fetch happens.
	DeleteFirst bool

	// Persist requires the fetch result to be written back to the store.
	Persist bool

	// Lock, when Persist is set, stores LockTTL with the new entry as the
	// path's locked TTL. When Lock is false any previously locked TTL is
	// dropped by the write.
	Lock bool

	// LockTTL is the TTL persisted when Lock is set.
	LockTTL time.Duration
}

// useCached is the serve-from-cache outcome.
var useCached = Decision{UseCached: true}

// Decide evaluates the freshness of entry (nil when the path has never been
// cached) against the per-call opts at time now.
//
// Two behaviors here are deliberate and easy to misread:
//
//   - A call that sets both an existing lock and opts.Lock compares freshness
//     against the NEW TTL, but the store is left untouched: the override only
//     takes effect once a refetch actually writes a new entry.
//   - BypassLock exempts this call from the lock without relocking; only
//     opts.Lock re-locks, and only on a write.
func Decide(now time.Time, entry *Entry, opts Options) Decision {
	if !opts.Enabled {
		// Disabled means "do not manage the cache", not "ignore it": a
		// persisted lock is still honored on read, but nothing is ever
		// written or deleted.
		if entry != nil && entry.Locked && entry.Age(now) < entry.LockTTL {
			return useCached
		}
		return Decision{}
	}

	refetch := Decision{
		DeleteFirst: entry != nil,
		Persist:     true,
		Lock:        opts.Lock,
	}
	if opts.Lock {
		refetch.LockTTL = opts.TTL
	}

	if entry == nil || opts.ForceRefresh {
		return refetch
	}

	age := entry.Age(now)
	switch {
	case entry.Locked && !opts.BypassLock:
		ttl := entry.LockTTL
		if opts.Lock {
			// Override in flight: the new TTL governs this check even
			// though it is not persisted yet.
			ttl = opts.TTL
		}
		if age < ttl {
			return useCached
		}
	default:
		if age < opts.TTL {
			return useCached
		}
	}
	return refetch
}
