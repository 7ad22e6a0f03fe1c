package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tenx-mn/catering-service/internal/config"
)

// Cache wraps the go-redis client used for login throttling.
type Cache struct {
	client *redis.Client
}

// OpenCache builds a Redis client. An unreachable server is logged, not
// fatal: callers that depend on Redis fail open.
func OpenCache(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("unable to reach redis; login throttling disabled until it recovers",
			zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr))
	}
	return &Cache{client: client}
}

// Client returns the underlying client.
func (r *Cache) Client() *redis.Client {
	if r == nil {
		return nil
	}
	return r.client
}

// Ping verifies Redis connectivity.
func (r *Cache) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}

// Close closes the client.
func (r *Cache) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}
