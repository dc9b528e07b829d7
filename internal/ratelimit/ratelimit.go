// Package ratelimit is the admission-control collaborator: a yes/no check
// consulted before OTP issuance and generic API calls.
package ratelimit

//go:generate mockgen -destination=../mocks/mock_limiter.go -package=mocks github.com/Laxit85/Regrip-Assignment/internal/ratelimit Limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter counts hits in a fixed window per key. INCR creates the key
// at 1; EXPIRE NX attaches the window on that first hit and is a no-op
// afterwards, so the window stays anchored at the first request.
type RedisLimiter struct {
	rdb    *redis.Client
	prefix string
	max    int64
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, prefix string, max int, windowSeconds int) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		prefix: prefix,
		max:    int64(max),
		window: time.Duration(windowSeconds) * time.Second,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.prefix + key

	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}
	// NX also repairs a counter whose expiry was lost to a crash between
	// INCR and EXPIRE; without it such a key would deny its IP forever.
	if err := l.rdb.ExpireNX(ctx, k, l.window).Err(); err != nil {
		return false, fmt.Errorf("rate limit expiry failed: %w", err)
	}

	return count <= l.max, nil
}
