package repository

import (
	"context"
	"time"
)

// CacheRepository - byte-level cache access.
type CacheRepository interface {
	// Get returns nil with no error on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)
}
