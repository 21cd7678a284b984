package cache

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type Store[T any] interface {
	Get(ctx context.Context, route string) (T, error)
	Version(ctx context.Context, route string) (int64, error)
	SetIfVersion(ctx context.Context, route string, value T, version int64) error
}

// ReadThrough serves route from store and falls back to load on a miss.
// The loaded value is written back only if route was not revalidated while it loaded.
// Cache failures are logged and never fail the read.
//
//nolint:ireturn
func ReadThrough[T any](
	ctx context.Context,
	store Store[T],
	route string,
	logger *zap.Logger,
	load func(ctx context.Context) (T, error),
) (T, error) {
	if store == nil {
		return load(ctx)
	}

	cached, err := store.Get(ctx, route)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrMiss) {
		logger.Warn("page cache read failed", zap.String("route", route), zap.Error(err))
	}

	version, err := store.Version(ctx, route)
	if err != nil {
		logger.Warn("page version read failed", zap.String("route", route), zap.Error(err))
		return load(ctx)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	err = store.SetIfVersion(ctx, route, value, version)
	switch {
	case errors.Is(err, ErrStale):
		logger.Debug("page revalidated during read, not cached", zap.String("route", route))
	case err != nil:
		logger.Warn("page cache write failed", zap.String("route", route), zap.Error(err))
	}
	return value, nil
}
