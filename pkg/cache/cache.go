// Package cache stores rendered artifacts between runs.
//
// Keys are content hashes: the same tree rendered with the same settings maps
// to the same key, so a repeated render can skip drawing and encoding.
// [FileCache] backs the CLI; [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the stored value and whether it was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}
