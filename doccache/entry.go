// Package doccache implements the cache model and decision engine for
// document retrieval: given the stored entry for a path (if any) and the
// per-call cache options, it decides whether the cached payload can be
// served or a fresh fetch is required, and how the result must be written
// back.
package doccache

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entry is the cached state for a single logical document path. The payload
// is opaque to the engine: it is stored and returned, never inspected.
type Entry struct {
	// Doc is the last successfully fetched payload. Empty when the remote
	// document does not exist (see Exists).
	Doc []byte

	// Exists reports whether the remote document existed at fetch time.
	// A missing document is itself a cacheable fact.
	Exists bool

	// FetchedAt is the retrieval time of Doc. It is written together with
	// Doc whenever a fetch result is persisted.
	FetchedAt time.Time

	// LockTTL is a persisted time-to-live that stays in effect across calls
	// until explicitly replaced. Only meaningful when Locked is true.
	LockTTL time.Duration

	// Locked reports whether LockTTL is present.
	Locked bool
}

// Age returns how long ago the entry was fetched relative to now.
func (e *Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.FetchedAt)
}

// entryWire is the JSON form stored in the key-value store. Times are
// encoded as milliseconds since the Unix epoch.
type entryWire struct {
	Doc         []byte `json:"doc,omitempty"`
	Exists      bool   `json:"exists"`
	FetchedAtMS int64  `json:"fetched_at_ms"`
	LockTTLMS   *int64 `json:"lock_ttl_ms,omitempty"`
}

// EncodeEntry serializes an entry for storage.
func EncodeEntry(e *Entry) ([]byte, error) {
	w := entryWire{
		Doc:         e.Doc,
		Exists:      e.Exists,
		FetchedAtMS: e.FetchedAt.UnixMilli(),
	}
	if e.Locked {
		ms := e.LockTTL.Milliseconds()
		w.LockTTLMS = &ms
	}
	return json.Marshal(w)
}

// DecodeEntry deserializes an entry previously produced by [EncodeEntry].
func DecodeEntry(b []byte) (*Entry, error) {
	var w entryWire
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("doccache: decode entry: %w", err)
	}
	e := &Entry{
		Doc:       w.Doc,
		Exists:    w.Exists,
		FetchedAt: time.UnixMilli(w.FetchedAtMS),
	}
	if w.LockTTLMS != nil {
		e.LockTTL = time.Duration(*w.LockTTLMS) * time.Millisecond
		e.Locked = true
	}
	return e, nil
}
