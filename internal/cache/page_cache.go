package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	pagePrefix    = "page:"
	versionPrefix = "page:ver:"
)

// ErrStale is returned by SetIfVersion when the route was revalidated after its version was read.
var ErrStale = errors.New("page revalidated since read")

type versionReader interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
}

// PageCache keeps rendered read results per route until the route is revalidated.
type PageCache[T any] struct {
	client *redis.Client
	store  *RedisClient[T]
}

func NewPageCache[T any](client *redis.Client, logger *zap.Logger, ttl time.Duration) *PageCache[T] {
	return &PageCache[T]{
		client: client,
		store:  NewRedisClient[T](client, logger, pagePrefix, ttl),
	}
}

//nolint:ireturn
func (p *PageCache[T]) Get(ctx context.Context, route string) (T, error) {
	return p.store.Get(ctx, route)
}

func (p *PageCache[T]) Set(ctx context.Context, route string, value T) error {
	return p.store.Set(ctx, route, value)
}

// Version reports the revalidation generation of route. It grows every time
// route or one of its parent routes is revalidated.
func (p *PageCache[T]) Version(ctx context.Context, route string) (int64, error) {
	return sumVersions(ctx, p.client, versionKeys(route))
}

// SetIfVersion stores value only while route is still at version.
func (p *PageCache[T]) SetIfVersion(ctx context.Context, route string, value T, version int64) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	keys := versionKeys(route)
	err = p.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := sumVersions(ctx, tx, keys)
		if err != nil {
			return err
		}
		if current != version {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, p.store.key(route), data, p.store.expiration)
			return nil
		})
		return err
	}, keys...)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}
	return err
}

// Revalidate drops the cached entries for route and every route nested under it.
// The version bump comes first so a read that loaded before it cannot write back.
func (p *PageCache[T]) Revalidate(ctx context.Context, route string) error {
	if err := p.client.Incr(ctx, versionPrefix+route).Err(); err != nil {
		return err
	}
	_, err := p.store.DeletePrefix(ctx, route)
	return err
}

// versionKeys lists the version key of route followed by those of its parents.
func versionKeys(route string) []string {
	keys := []string{versionPrefix + route}
	for i := len(route) - 1; i > 0; i-- {
		if route[i] == '/' {
			keys = append(keys, versionPrefix+route[:i])
		}
	}
	return keys
}

func sumVersions(ctx context.Context, r versionReader, keys []string) (int64, error) {
	values, err := r.MGet(ctx, keys...).Result()
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		sum += n
	}
	return sum, nil
}
