package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // pure-Go sqlite driver
)

// SQLite is a file-backed store, the local-disk counterpart to [Redis] for
// single-process deployments that want cache entries to survive restarts
// without running a server.
type SQLite struct {
	db *sql.DB
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapfetch_cache (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
);`

// NewSQLite opens (creating if needed) the database at path and prepares the
// cache table. Use ":memory:" for an ephemeral store.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite %q: %w", path, err)
	}
	// The driver opens lazily; fail now rather than on the first Get.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: ping sqlite %q: %w", path, err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Get retrieves the value stored under key.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var val []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM snapfetch_cache WHERE key = ?`, key).Scan(&val)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: sqlite get %q: %w", key, err)
	}
	return val, true, nil
}

// Set stores val under key, replacing any previous value.
func (s *SQLite) Set(ctx context.Context, key string, val []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapfetch_cache (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, val)
	if err != nil {
		return fmt.Errorf("store: sqlite set %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM snapfetch_cache WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("store: sqlite delete %q: %w", key, err)
	}
	return nil
}

// Clear removes every entry.
func (s *SQLite) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM snapfetch_cache`); err != nil {
		return fmt.Errorf("store: sqlite clear: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
