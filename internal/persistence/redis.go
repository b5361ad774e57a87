package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/estate-crm/internal/config"
)

// RedisSnapshotter stores collection snapshots as plain Redis string
// values, one key per collection.
type RedisSnapshotter struct {
	client *redis.Client
}

// NewRedisSnapshotter connects to Redis using the provided configuration.
// Connectivity problems are logged, not fatal; the first Put surfaces them.
func NewRedisSnapshotter(cfg config.RedisConfig, logger *zap.Logger) *RedisSnapshotter {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisSnapshotter{client: client}
}

func (r *RedisSnapshotter) Put(ctx context.Context, key string, value []byte) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisSnapshotter) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if r == nil || r.client == nil {
		return nil, false, errors.New("redis client not configured")
	}
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Close closes the client.
func (r *RedisSnapshotter) Close() {
	if r != nil && r.client != nil {
		_ = r.client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *RedisSnapshotter) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Ping(ctx).Err()
}
