package ratelimit

import (
	"sync"
	"time"
)

type bucket struct {
	mu         sync.Mutex
	capacity   int
	tokens     int
	lastRefill time.Time
}

func newBucket(capacity int, now time.Time) *bucket {
	return &bucket{
		capacity:   capacity,
		tokens:     capacity,
		lastRefill: now,
	}
}

// take refills by whole intervals, then tries to consume one token.
func (b *bucket) take(now time.Time, capacity int, window time.Duration) Decision {
	b.mu.Lock()
	defer b.mu.Unlock()

	if capacity != b.capacity {
		b.capacity = capacity
		b.tokens = min(b.tokens, capacity)
	}

	if window > 0 {
		if elapsed := now.Sub(b.lastRefill); elapsed >= window {
			intervals := elapsed / window
			b.tokens = b.capacity
			b.lastRefill = b.lastRefill.Add(intervals * window)
		}
	}

	if b.tokens > 0 {
		b.tokens--
		return Decision{Allowed: true, Limit: b.capacity, Remaining: b.tokens}
	}

	retry := window - now.Sub(b.lastRefill)
	if retry < 0 {
		retry = 0
	}
	return Decision{Allowed: false, Limit: b.capacity, Remaining: 0, RetryAfter: retry}
}
