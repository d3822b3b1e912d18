// Package cache provides the read-through cache used for client-facing
// reference data (remote config and the voice list).
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Reader is the read side of a Store.
type Reader interface {
	// Get returns the cached value and whether it was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
}

// Writer is the write side of a Store.
type Writer interface {
	// Set stores value. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Store is a byte-oriented TTL cache. Implementations must be safe for
// concurrent use.
type Store interface {
	Reader
	Writer
	// Delete removes keys; missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}

// GetJSON decodes a cached JSON value into T.
func GetJSON[T any](ctx context.Context, s Reader, key string) (T, bool, error) {
	var zero T
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return v, true, nil
}

// SetJSON encodes v as JSON and stores it.
func SetJSON[T any](ctx context.Context, s Writer, key string, v T, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	return s.Set(ctx, key, raw, ttl)
}

// Noop always misses and ignores writes.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (Noop) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error                  { return nil }
func (Noop) Ping(context.Context) error                               { return nil }
