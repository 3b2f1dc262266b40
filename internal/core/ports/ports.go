package ports

import (
	"context"
	"time"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
)

// AssetSource produces documents for the library
type AssetSource interface {
	// Name identifies the source; it takes part in the cache key
	Name() string

	// Documents returns the source's documents in load order. Later
	// documents win when identifiers collide.
	Documents(ctx context.Context) ([]*domain.Document, error)
}

// CacheStore defines the port for the external key-value store that holds
// library snapshots
type CacheStore interface {
	// Get returns the value for key; ok is false on a miss or an expired entry
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores value under key for ttl
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key; deleting a missing key is not an error
	Delete(ctx context.Context, key string) error
}
