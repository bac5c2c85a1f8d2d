package configs

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance backing the rate limiter.
// Returns nil when no REDIS_URL is configured; callers fall back to the
// in-memory limiter store.
func NewRedisClient(cfg Config) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	return redis.NewClient(opts), nil
}
