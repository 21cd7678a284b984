package cache

import (
	"context"
	"errors"
)

type pageCache[T any] interface {
	Get(ctx context.Context, route string) (T, error)
	Set(ctx context.Context, route string, value T) error
	Version(ctx context.Context, route string) (int64, error)
	SetIfVersion(ctx context.Context, route string, value T, version int64) error
	Revalidate(ctx context.Context, route string) error
}

type metricsCollector interface {
	RecordCache(operation, result string)
}

type MetricsDecorator[T any] struct {
	next      pageCache[T]
	collector metricsCollector
}

func NewMetricsDecorator[T any](next pageCache[T], collector metricsCollector) *MetricsDecorator[T] {
	return &MetricsDecorator[T]{next: next, collector: collector}
}

//nolint:ireturn
func (m *MetricsDecorator[T]) Get(ctx context.Context, route string) (T, error) {
	data, err := m.next.Get(ctx, route)
	switch {
	case err == nil:
		m.collector.RecordCache("get", "hit")
	case errors.Is(err, ErrMiss):
		m.collector.RecordCache("get", "miss")
	default:
		m.collector.RecordCache("get", "error")
	}
	return data, err
}

func (m *MetricsDecorator[T]) Set(ctx context.Context, route string, value T) error {
	err := m.next.Set(ctx, route, value)
	m.collector.RecordCache("set", result(err))
	return err
}

func (m *MetricsDecorator[T]) Version(ctx context.Context, route string) (int64, error) {
	return m.next.Version(ctx, route)
}

func (m *MetricsDecorator[T]) SetIfVersion(ctx context.Context, route string, value T, version int64) error {
	err := m.next.SetIfVersion(ctx, route, value, version)
	if errors.Is(err, ErrStale) {
		m.collector.RecordCache("set", "stale")
		return err
	}
	m.collector.RecordCache("set", result(err))
	return err
}

func (m *MetricsDecorator[T]) Revalidate(ctx context.Context, route string) error {
	err := m.next.Revalidate(ctx, route)
	m.collector.RecordCache("revalidate", result(err))
	return err
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
