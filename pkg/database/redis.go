package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a client for a redis:// or rediss:// URL. With ping
// set, the server is contacted before the client is returned.
func NewRedisClient(ctx context.Context, redisURL string, ping bool) (*redis.Client, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL cannot be empty")
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if ping {
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to ping redis: %w", err)
		}
	}

	slog.Info("Redis client ready", slog.String("addr", opts.Addr), slog.Int("db", opts.DB), slog.Bool("pinged", ping))
	return client, nil
}
