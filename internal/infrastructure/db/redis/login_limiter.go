package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles credential-guessing with a fixed-window counter in
// Redis. Key format: login_attempts:<key>, where key is the caller identity
// chosen by the middleware (client IP).
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing limit attempts per window.
func NewLoginLimiter(client *redis.Client, limit int64, window time.Duration) *LoginLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, limit: limit, window: window}
}

// Allow records one attempt and reports whether the caller is still within
// the window budget. The TTL is set together with the first increment so a
// crashed request cannot leave an immortal counter behind.
func (l *LoginLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("login_attempts:%s", key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("login limiter: %w", err)
	}

	return incr.Val() <= l.limit, nil
}
