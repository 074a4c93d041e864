// Package ratelimit implements per-key token buckets with interval refill:
// the whole capacity is restored once per window instead of dripping back.
package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// Tier is a rate-limit class.
type Tier string

const (
	TierUnauthenticated Tier = "unauthenticated"
	TierAuthenticated   Tier = "authenticated"
	TierAdmin           Tier = "admin"
)

type Limits struct {
	Unauthenticated int
	Authenticated   int
	Admin           int
	Window          time.Duration
}

// DefaultLimits are 30/60/100 requests per minute.
func DefaultLimits() Limits {
	return Limits{
		Unauthenticated: 30,
		Authenticated:   60,
		Admin:           100,
		Window:          time.Minute,
	}
}

func (l Limits) Capacity(tier Tier) int {
	switch tier {
	case TierAdmin:
		return l.Admin
	case TierAuthenticated:
		return l.Authenticated
	default:
		return l.Unauthenticated
	}
}

// Decision is the bucket state observed by one consume attempt.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RetryAfterSeconds rounds up to whole seconds and never returns less than one.
func (d Decision) RetryAfterSeconds() int {
	secs := int((d.RetryAfter + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// Store consumes one token from the bucket stored under key. Implementations
// must make the read-modify-write atomic per key.
type Store interface {
	Take(ctx context.Context, key string, capacity int, window time.Duration) (Decision, error)
}

type Limiter struct {
	store  Store
	limits Limits
}

func NewLimiter(store Store, limits Limits) *Limiter {
	return &Limiter{store: store, limits: limits}
}

func (l *Limiter) Limits() Limits {
	return l.limits
}

func (l *Limiter) Allow(ctx context.Context, key string, tier Tier) (Decision, error) {
	capacity := l.limits.Capacity(tier)
	decision, err := l.store.Take(ctx, key, capacity, l.limits.Window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit store: %w", err)
	}
	return decision, nil
}

// UserKey and IPKey build the two bucket key shapes.
func UserKey(email string) string {
	return "user:" + email
}

func IPKey(remoteAddr string) string {
	return "ip:" + remoteAddr
}
