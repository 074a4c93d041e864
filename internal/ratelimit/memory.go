package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultCacheSize = 100_000
	DefaultCacheTTL  = time.Hour
)

// MemoryStore keeps buckets in a size-capped LRU whose entries expire after
// ttl without access.
type MemoryStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *bucket]
	now   func() time.Time
}

func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &MemoryStore{
		cache: expirable.NewLRU[string, *bucket](size, nil, ttl),
		now:   time.Now,
	}
}

func (s *MemoryStore) Take(_ context.Context, key string, capacity int, window time.Duration) (Decision, error) {
	now := s.now()

	s.mu.Lock()
	b, ok := s.cache.Get(key)
	if !ok {
		b = newBucket(capacity, now)
	}
	// re-adding renews the entry's expiry
	s.cache.Add(key, b)
	s.mu.Unlock()

	return b.take(now, capacity, window), nil
}

func (s *MemoryStore) Len() int {
	return s.cache.Len()
}
