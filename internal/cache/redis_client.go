package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const scanBatch = 100

// ErrMiss is returned by Get when the key holds no value.
var ErrMiss = errors.New("cache miss")

// RedisClient stores JSON-encoded values of type T under a key prefix.
type RedisClient[T any] struct {
	client     *redis.Client
	logger     *zap.Logger
	prefix     string
	expiration time.Duration
}

func NewRedisClient[T any](
	client *redis.Client,
	logger *zap.Logger,
	prefix string,
	expiration time.Duration,
) *RedisClient[T] {
	return &RedisClient[T]{
		client:     client,
		logger:     logger.With(zap.String("component", "redis_cache"), zap.String("prefix", prefix)),
		prefix:     prefix,
		expiration: expiration,
	}
}

func (c *RedisClient[T]) key(k string) string {
	return c.prefix + k
}

func (c *RedisClient[T]) Set(ctx context.Context, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.logger.Debug("cache set", zap.String("key", key), zap.Int("bytes", len(data)))
	return c.client.Set(ctx, c.key(key), data, c.expiration).Err()
}

//nolint:ireturn
func (c *RedisClient[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T

	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, ErrMiss
	}
	if err != nil {
		return zero, err
	}

	result := new(T)
	if err := json.Unmarshal(data, result); err != nil {
		return zero, err
	}
	return *result, nil
}

// DeletePrefix removes every key starting with keyPrefix and reports how many were deleted.
func (c *RedisClient[T]) DeletePrefix(ctx context.Context, keyPrefix string) (int64, error) {
	var (
		cursor  uint64
		deleted int64
	)
	pattern := c.key(keyPrefix) + "*"

	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, err
			}
			deleted += n
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	c.logger.Debug("cache prefix deleted", zap.String("pattern", pattern), zap.Int64("deleted", deleted))
	return deleted, nil
}
