package cache

import (
	"context"
	"sync"
	"time"
)

// KV is the subset of Store a Slot needs.
type KV interface {
	Reader
	Writer
	Delete(ctx context.Context, keys ...string) error
}

// Slot is one cached JSON value kept coherent with its source of truth.
//
// Readers take a Generation before loading from the source and pass it to
// Fill. Writers call Invalidate after committing and Fill the new value with
// the generation it returns. A Fill whose generation is older than the last
// Invalidate is dropped, so a slow read-through cannot overwrite a newer
// value written by this process. Writes from other processes sharing the
// backend are bounded by the TTL.
type Slot[T any] struct {
	store KV
	key   string
	ttl   time.Duration

	mu  sync.Mutex
	gen uint64
}

// NewSlot binds key in store. ttl <= 0 means no expiry.
func NewSlot[T any](store KV, key string, ttl time.Duration) *Slot[T] {
	return &Slot[T]{store: store, key: key, ttl: ttl}
}

// Generation returns the token a reader passes to Fill.
func (s *Slot[T]) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Get returns the cached value.
func (s *Slot[T]) Get(ctx context.Context) (T, bool, error) {
	return GetJSON[T](ctx, s.store, s.key)
}

// Fill stores v unless the slot was invalidated after gen was taken.
// It reports whether v was written.
func (s *Slot[T]) Fill(ctx context.Context, gen uint64, v T) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return false, nil
	}
	if err := SetJSON(ctx, s.store, s.key, v, s.ttl); err != nil {
		return false, err
	}
	return true, nil
}

// Invalidate drops the cached value and starts a new generation, which it
// returns. The generation advances even when the delete fails.
func (s *Slot[T]) Invalidate(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen, s.store.Delete(ctx, s.key)
}
