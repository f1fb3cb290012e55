package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a Redis-backed store. Keys are namespaced under a fixed prefix so
// the document cache never collides with other users of the same database.
//
// Unlike an advisory read-through cache, this store does not fail soft: the
// caller owns the entry lifecycle, so connection and command errors are
// surfaced as-is.
type Redis struct {
	rdb    *redis.Client
	prefix string
}

// NewRedis creates a Redis-backed store using [DefaultNamespace] as the key
// prefix.
func NewRedis(addr, password string, db int) *Redis {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &Redis{rdb: rdb, prefix: DefaultNamespace}
}

// NewRedisWithNamespace is like [NewRedis] but stores entries under the
// given key prefix.
func NewRedisWithNamespace(addr, password string, db int, namespace string) *Redis {
	r := NewRedis(addr, password, db)
	r.prefix = namespace
	return r
}

// Get retrieves the value stored under key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: redis get %q: %w", key, err)
	}
	return val, true, nil
}

// Set stores val under key with no expiration; staleness is decided on read.
func (r *Redis) Set(ctx context.Context, key string, val []byte) error {
	if err := r.rdb.Set(ctx, r.prefix+key, val, 0).Err(); err != nil {
		return fmt.Errorf("store: redis set %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("store: redis del %q: %w", key, err)
	}
	return nil
}

// Clear removes every entry under this store's namespace, leaving the rest
// of the database untouched.
func (r *Redis) Clear(ctx context.Context) error {
	iter := r.rdb.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("store: redis clear: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("store: redis clear: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// Close closes the underlying Redis client.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
