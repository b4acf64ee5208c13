package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devassignment/member-service/internal/pkg/config"
)

// pingTimeout bounds the startup connectivity check. Redis is optional at
// runtime, so the caller treats a failure here as "run without a cache"
// rather than a fatal error.
const pingTimeout = 5 * time.Second

// Connect builds a client for the configured Redis instance and verifies it
// responds before handing it out.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
