package cache

import (
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

const defaultSize = 1024

// lruStore keeps one value per guest; the least recently used guest is
// evicted once size is exceeded.
type lruStore[T any] struct {
	cache *lru.Cache
}

func newLRUStore[T any](size int) (*lruStore[T], error) {
	if size <= 0 {
		size = defaultSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &lruStore[T]{cache: c}, nil
}

func (s *lruStore[T]) get(guest uuid.UUID) (T, bool) {
	var zero T
	v, ok := s.cache.Get(guest)
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func (s *lruStore[T]) put(guest uuid.UUID, v T) {
	s.cache.Add(guest, v)
}

func (s *lruStore[T]) invalidate(guest uuid.UUID) {
	s.cache.Remove(guest)
}

func (s *lruStore[T]) len() int {
	return s.cache.Len()
}
