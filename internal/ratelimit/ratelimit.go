// Package ratelimit caps how often a client may trigger model calls.
// Generation and refinement are the only expensive operations in the
// service, so the limiter sits in front of exactly those endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	rdb *redis.Client
	ctx = context.Background()
)

// Config defines the fixed-window limits.
type Config struct {
	MaxGenerations   int           // per window, per client
	GenerationWindow time.Duration // window length
}

// DefaultConfig returns the default limits.
func DefaultConfig() Config {
	return Config{
		MaxGenerations:   5,
		GenerationWindow: time.Minute,
	}
}

// InitRedis initializes the Redis client backing the limiter. The limiter
// stays disabled when addr is empty.
func InitRedis(addr, password string, db int) error {
	if addr == "" {
		return nil
	}

	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Test connection
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return nil
}

// AllowGeneration checks and records one model call for the given client.
// Without a Redis backend every call is allowed.
func AllowGeneration(clientID string, config Config) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate:generate:%s", clientID)

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	// Set expiration if first time
	if count == 1 {
		rdb.Expire(ctx, key, config.GenerationWindow)
	}

	return count <= int64(config.MaxGenerations), nil
}
