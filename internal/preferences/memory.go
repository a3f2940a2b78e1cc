package preferences

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoryCapacity is large enough to hold every preference key several times over
const DefaultMemoryCapacity = 128

// MemoryStore keeps preferences in a bounded in-process LRU. Nothing survives a restart.
type MemoryStore struct {
	lru *lru.Cache[string, string]
}

// NewMemoryStore creates a memory store holding at most size keys
func NewMemoryStore(size int) (*MemoryStore, error) {
	if size <= 0 {
		size = DefaultMemoryCapacity
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{lru: c}, nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.lru.Get(key)
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.lru.Add(key, value)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored keys
func (s *MemoryStore) Len() int {
	return s.lru.Len()
}
