package contentcache

import (
	"context"
	"time"
)

// Lease is a held right to regenerate one key.
type Lease struct {
	Key       Key
	Token     string
	ExpiresAt time.Time
}

// LeaseManager grants at most one live lease per key. The store does not
// consult it; only regeneration paths do.
type LeaseManager interface {
	// Acquire returns acquired=false without error when another holder
	// owns the key.
	Acquire(ctx context.Context, key Key, ttl time.Duration) (lease Lease, acquired bool, err error)
	// Release frees the lease only if it is still held with the same token.
	Release(ctx context.Context, lease Lease) (bool, error)
}
