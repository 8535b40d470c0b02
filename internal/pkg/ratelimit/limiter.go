package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/safinity/safinity/internal/pkg/constants"
	"github.com/safinity/safinity/internal/pkg/database"
)

// LoginLimiter caps failed login attempts per identifier inside a rolling
// window. Counters live in Redis with a TTL, so stale identifiers evict
// themselves instead of accumulating.
type LoginLimiter struct {
	redisClient *database.RedisClient
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a login attempt limiter
func NewLoginLimiter(redisClient *database.RedisClient, maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		redisClient: redisClient,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow reports whether the identifier may attempt a login
func (l *LoginLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	key := fmt.Sprintf(constants.KeyLoginAttempts, identifier)

	count, err := l.redisClient.Client.Get(ctx, key).Int()
	if err != nil && !errors.Is(err, redis.Nil) {
		return false, fmt.Errorf("failed to read login attempts: %w", err)
	}

	return count < l.maxAttempts, nil
}

// RecordFailure increments the failed attempt counter, starting the
// eviction window on the first failure
func (l *LoginLimiter) RecordFailure(ctx context.Context, identifier string) error {
	key := fmt.Sprintf(constants.KeyLoginAttempts, identifier)

	count, err := l.redisClient.Client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	if count == 1 {
		if err := l.redisClient.Client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("failed to set attempt window: %w", err)
		}
	}
	return nil
}

// Reset clears the counter after a successful login
func (l *LoginLimiter) Reset(ctx context.Context, identifier string) error {
	key := fmt.Sprintf(constants.KeyLoginAttempts, identifier)
	return l.redisClient.Delete(ctx, key)
}
