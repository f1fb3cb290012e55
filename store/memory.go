package store

import (
	"bytes"
	"context"

	"github.com/dgraph-io/ristretto/v2"
)

// Memory is an in-process store backed by ristretto. Entries survive only
// for the lifetime of the process; it is the right backend for tests and for
// callers that treat the cache as purely advisory.
type Memory struct {
	rc *ristretto.Cache[string, []byte]
}

// NewMemory creates a Memory store. maxEntries bounds how many entries the
// backing cache can hold (each entry has a cost of 1).
func NewMemory(maxEntries int64) (*Memory, error) {
	rc, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Memory{rc: rc}, nil
}

// Get retrieves the value stored under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.rc.Get(key)
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

// Set stores val under key. The write is waited on so that a subsequent Get
// observes it, matching the durability the contract promises.
func (m *Memory) Set(_ context.Context, key string, val []byte) error {
	m.rc.Set(key, bytes.Clone(val), 1)
	m.rc.Wait()
	return nil
}

// Delete removes the value stored under key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.rc.Del(key)
	m.rc.Wait()
	return nil
}

// Clear removes every entry.
func (m *Memory) Clear(_ context.Context) error {
	m.rc.Clear()
	m.rc.Wait()
	return nil
}

// Close releases the backing cache's resources.
func (m *Memory) Close() {
	m.rc.Close()
}
