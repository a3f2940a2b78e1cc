package preferences

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// CachedStore serves reads from an expiring LRU in front of a slower store.
// Writes go to the backing store first and only then refresh the cache.
type CachedStore struct {
	backend Store
	lru     *expirable.LRU[string, string]
}

// NewCachedStore wraps backend with a cache of size entries that expire after ttl
func NewCachedStore(backend Store, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultMemoryCapacity
	}
	return &CachedStore{
		backend: backend,
		lru:     expirable.NewLRU[string, string](size, nil, ttl),
	}
}

func (s *CachedStore) Get(ctx context.Context, key string) (string, bool, error) {
	if v, ok := s.lru.Get(key); ok {
		return v, true, nil
	}
	v, ok, err := s.backend.Get(ctx, key)
	if err != nil || !ok {
		return "", false, err
	}
	s.lru.Add(key, v)
	return v, true, nil
}

func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.backend.Set(ctx, key, value); err != nil {
		s.lru.Remove(key)
		return err
	}
	s.lru.Add(key, value)
	return nil
}

func (s *CachedStore) Ping(ctx context.Context) error {
	return s.backend.Ping(ctx)
}

// Invalidate drops every cached entry
func (s *CachedStore) Invalidate() {
	s.lru.Purge()
}
