package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript is the interval bucket evaluated atomically inside Redis.
var takeScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local interval_ms = tonumber(ARGV[3])
	local ttl_seconds = tonumber(ARGV[4])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end
	tokens = math.min(tokens, capacity)

	if interval_ms > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = capacity
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
	end

	redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

// RedisStore shares buckets between replicas.
type RedisStore struct {
	client redis.Scripter
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStore(client redis.Scripter, prefix string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *RedisStore) Take(ctx context.Context, key string, capacity int, window time.Duration) (Decision, error) {
	args := []interface{}{
		s.now().UnixMilli(),
		capacity,
		window.Milliseconds(),
		int64(s.ttl / time.Second),
	}

	vals, err := takeScript.Run(ctx, s.client, []string{s.prefix + key}, args...).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to run rate limit script: %w", err)
	}

	arr, ok := vals.([]interface{})
	if !ok || len(arr) != 3 {
		return Decision{}, fmt.Errorf("unexpected rate limit script result: %#v", vals)
	}

	return Decision{
		Allowed:    asInt64(arr[0]) == 1,
		Limit:      capacity,
		Remaining:  int(asInt64(arr[1])),
		RetryAfter: time.Duration(asInt64(arr[2])) * time.Millisecond,
	}, nil
}

func asInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}
	return 0
}
