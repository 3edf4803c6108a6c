// Package redis holds the Redis connection used by the event bus.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/config"
	goredis "github.com/redis/go-redis/v9"
)

// NewClient parses cfg.URL, connects and pings Redis.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
