// Package redis provides the Redis-backed durable KV adapter.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/odalys-dev/pennybook/internal/shared/apperrors"
	"github.com/odalys-dev/pennybook/pkg/logger"
)

// KV is a Redis implementation of the storage port. Values are stored without
// a TTL: the ledger snapshot and preferences persist until overwritten.
type KV struct {
	client *redis.Client
	logger *logger.Logger
}

// NewKV creates a Redis-backed KV store.
func NewKV(client *redis.Client, log *logger.Logger) *KV {
	return &KV{
		client: client,
		logger: log.WithComponent("redis_kv"),
	}
}

// Get retrieves a value by key.
func (s *KV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		s.logger.Debug("key absent", "key", key)
		return "", false, nil
	}
	if err != nil {
		s.logger.Error("redis get failed", "key", key, "error", err)
		return "", false, apperrors.StorageUnavailable(fmt.Sprintf("get %s", key), err)
	}
	return val, true, nil
}

// Set stores a value under a key.
func (s *KV) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Error("redis set failed", "key", key, "error", err)
		return apperrors.StorageUnavailable(fmt.Sprintf("set %s", key), err)
	}
	return nil
}
