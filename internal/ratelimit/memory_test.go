package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	store *MemoryStore
	now   time.Time
	ctx   context.Context
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.store = NewMemoryStore(10, time.Hour)
	s.store.now = func() time.Time { return s.now }
	s.ctx = context.Background()
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) TestTake_AdmitsCapacityPerWindow() {
	// Act
	var allowed int
	for i := 0; i < 5; i++ {
		d, err := s.store.Take(s.ctx, "ip:1.2.3.4", 3, time.Minute)
		s.Require().NoError(err)
		if d.Allowed {
			allowed++
		}
	}

	// Assert
	s.Equal(3, allowed)
}

func (s *MemoryStoreTestSuite) TestTake_ReportsRemainingAndLimit() {
	d, err := s.store.Take(s.ctx, "user:a@x.io", 60, time.Minute)

	s.NoError(err)
	s.True(d.Allowed)
	s.Equal(60, d.Limit)
	s.Equal(59, d.Remaining)
}

func (s *MemoryStoreTestSuite) TestTake_RetryAfterUntilNextInterval() {
	// Arrange
	_, _ = s.store.Take(s.ctx, "k", 1, time.Minute)
	s.now = s.now.Add(20 * time.Second)

	// Act
	d, err := s.store.Take(s.ctx, "k", 1, time.Minute)

	// Assert
	s.NoError(err)
	s.False(d.Allowed)
	s.Equal(40*time.Second, d.RetryAfter)
	s.Equal(40, d.RetryAfterSeconds())
}

func (s *MemoryStoreTestSuite) TestTake_IntervalRefillRestoresFullCapacity() {
	// Arrange
	for i := 0; i < 3; i++ {
		_, _ = s.store.Take(s.ctx, "k", 3, time.Minute)
	}
	s.now = s.now.Add(59 * time.Second)
	d, _ := s.store.Take(s.ctx, "k", 3, time.Minute)
	s.Require().False(d.Allowed)

	// Act
	s.now = s.now.Add(time.Second)
	d, err := s.store.Take(s.ctx, "k", 3, time.Minute)

	// Assert
	s.NoError(err)
	s.True(d.Allowed)
	s.Equal(2, d.Remaining)
}

func (s *MemoryStoreTestSuite) TestTake_WindowBoundaryIsAnchored() {
	// Arrange: first consume at t0, next window opens at t0+60s even after idle periods
	_, _ = s.store.Take(s.ctx, "k", 1, time.Minute)
	s.now = s.now.Add(150 * time.Second)
	d, _ := s.store.Take(s.ctx, "k", 1, time.Minute)
	s.Require().True(d.Allowed)

	// Act
	d, err := s.store.Take(s.ctx, "k", 1, time.Minute)

	// Assert: window started at t0+120s, so 30s remain
	s.NoError(err)
	s.False(d.Allowed)
	s.Equal(30*time.Second, d.RetryAfter)
}

func (s *MemoryStoreTestSuite) TestTake_KeysAreIndependent() {
	_, _ = s.store.Take(s.ctx, "ip:a", 1, time.Minute)

	d, err := s.store.Take(s.ctx, "ip:b", 1, time.Minute)

	s.NoError(err)
	s.True(d.Allowed)
}

func (s *MemoryStoreTestSuite) TestTake_SizeCapEvictsLeastRecentlyUsed() {
	for i := 0; i < 15; i++ {
		_, _ = s.store.Take(s.ctx, string(rune('a'+i)), 1, time.Minute)
	}

	s.Equal(10, s.store.Len())
}

func (s *MemoryStoreTestSuite) TestTake_ConcurrentConsumersNeverExceedCapacity() {
	// Arrange
	var admitted atomic.Int32
	var wg sync.WaitGroup

	// Act
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := s.store.Take(s.ctx, "user:hot@x.io", 50, time.Minute)
			if err == nil && d.Allowed {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	// Assert
	s.Equal(int32(50), admitted.Load())
}

func TestLimiter_UsesTierCapacity(t *testing.T) {
	store := NewMemoryStore(100, time.Hour)
	limiter := NewLimiter(store, DefaultLimits())

	unauth, err := limiter.Allow(context.Background(), IPKey("10.0.0.1"), TierUnauthenticated)
	if err != nil || unauth.Limit != 30 {
		t.Fatalf("unauthenticated limit = %d, err = %v", unauth.Limit, err)
	}
	auth, _ := limiter.Allow(context.Background(), UserKey("a@x.io"), TierAuthenticated)
	admin, _ := limiter.Allow(context.Background(), UserKey("root@x.io"), TierAdmin)
	if auth.Limit != 60 || admin.Limit != 100 {
		t.Fatalf("limits = %d/%d, want 60/100", auth.Limit, admin.Limit)
	}
}

func TestDecision_RetryAfterSecondsRoundsUp(t *testing.T) {
	cases := map[time.Duration]int{
		0:                      1,
		time.Millisecond:       1,
		time.Second:            1,
		1500 * time.Millisecond: 2,
	}
	for in, want := range cases {
		if got := (Decision{RetryAfter: in}).RetryAfterSeconds(); got != want {
			t.Errorf("RetryAfterSeconds(%s) = %d, want %d", in, got, want)
		}
	}
}
