// Package redis provides the Redis-backed rate limiter used to throttle
// mutating marketplace operations. State lives in Redis so limits hold
// across process restarts and multiple instances.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrSlidingWindowLimiterIsNotConstructed = errors.New(
	"SlidingWindowLimiter must be created via NewSlidingWindowLimiter constructor",
)

// allowScript evicts expired attempts, checks the window and records the
// new attempt in one server-side step, so two concurrent callers cannot
// both pass the count check on the same key.
//
// KEYS[1] window key; ARGV[1] window start (ns), ARGV[2] limit,
// ARGV[3] now (ns), ARGV[4] window (ms), ARGV[5] attempt member.
var allowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], 0, ARGV[1])
if redis.call('ZCARD', KEYS[1]) >= tonumber(ARGV[2]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[3], ARGV[5])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
return 1
`)

// SlidingWindowLimiter implements a per-key sliding window rate limit on
// top of Redis sorted sets. Each attempt is stored as a member scored by
// its timestamp; members older than the window are evicted on every call
// and the whole key expires after one idle window.
type SlidingWindowLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewSlidingWindowLimiter creates a limiter allowing at most limit calls
// per key within the given window.
func NewSlidingWindowLimiter(client *redis.Client, limit int, window time.Duration) (*SlidingWindowLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: client is nil", ErrSlidingWindowLimiterIsNotConstructed)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit %d must be positive", ErrSlidingWindowLimiterIsNotConstructed, limit)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window %s must be positive", ErrSlidingWindowLimiterIsNotConstructed, window)
	}

	return &SlidingWindowLimiter{
		client: client,
		limit:  limit,
		window: window,
	}, nil
}

// Allow reports whether the caller identified by key may proceed. A denied
// attempt is not recorded, so a throttled client does not push its own
// window further into the future.
func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-l.window)

	admitted, err := allowScript.Run(ctx, l.client,
		[]string{"ratelimit:" + key},
		windowStart.UnixNano(),
		l.limit,
		now.UnixNano(),
		l.window.Milliseconds(),
		uuid.NewString(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("evaluating rate limit for %q: %w", key, err)
	}

	return admitted == 1, nil
}
