package cache

import (
	"context"
	"fmt"
	"time"
)

// Store is the cache surface used by the read and write paths.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any, ttl time.Duration)
	GetOrSet(ctx context.Context, key string, ttl time.Duration, fetch func(context.Context) (any, error)) (any, error)
	Invalidate(keyOrPrefix string) int
	InvalidateExact(key string) bool
	InvalidatePrefix(prefix string) int
	Clear()
	Stats() Stats
}

var _ Store = (*Cache)(nil)

// GetOrSetAs is GetOrSet for callers that want a concrete type back.
func GetOrSetAs[T any](ctx context.Context, s Store, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	var zero T

	v, err := s.GetOrSet(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("cache: value for %q has type %T, want %T", key, v, zero)
	}
	return typed, nil
}
