package cache

import (
	"context"
	"fmt"
	"time"

	"vidtube/infrastructure/logger"

	"github.com/redis/go-redis/v9"
)

// NewCache connects to redis at addr and pings it.
func NewCache(ctx context.Context, addr, username, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}

	logger.GetLogger().WithField("addr", addr).Info("Redis client initialized successfully.")
	return client, nil
}
