package cache

import (
	"context"
	"fmt"

	"page-assist/internal/adapter"
	"page-assist/internal/config"
	"page-assist/internal/domain"
	"page-assist/internal/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient creates a client and pings the server once.
func NewRedisClient(ctx context.Context, redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, fmt.Errorf("redis address is empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Address,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}
	return client, nil
}

// Open returns the bookmark store: Redis when an address is configured,
// otherwise the in-memory store. The returned close func is never nil.
func Open(ctx context.Context, redisCfg config.RedisConfig) (domain.Cache, func() error, error) {
	if redisCfg.Address == "" {
		logger.Get().Warn("Redis address not configured; bookmarks are kept in memory")
		return adapter.NewMemoryStore(), func() error { return nil }, nil
	}

	client, err := NewRedisClient(ctx, redisCfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Get().Info("Connected to Redis", zap.String("address", redisCfg.Address), zap.Int("db", redisCfg.DB))
	return adapter.NewRedisStore(client), client.Close, nil
}
