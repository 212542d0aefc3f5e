package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Limiter implements fixed-window request counting backed by Redis. Windows
// are discrete: the key carries the window index, a counter is incremented
// per hit and expires with the window.
type Limiter struct {
	client *goredis.Client
	prefix string
}

// NewLimiter creates a Redis-backed request limiter.
func NewLimiter(client *goredis.Client) *Limiter {
	return &Limiter{
		client: client,
		prefix: "ledger:rl:",
	}
}

// Decision is the outcome of one counted hit.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp of the next window start
}

// Hit counts one request against the key's current window and reports
// whether it stays within limit.
func (l *Limiter) Hit(ctx context.Context, key string, limit int64, window time.Duration) (*Decision, error) {
	windowID := time.Now().Unix() / int64(window.Seconds())
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, key, windowID)

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return nil, fmt.Errorf("rate limit incr: %w", err)
	}
	if count == 1 {
		// First hit in a fresh window; expire the counter with it.
		l.client.Expire(ctx, redisKey, window+time.Second)
	}

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}

	return &Decision{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   (windowID + 1) * int64(window.Seconds()),
	}, nil
}
