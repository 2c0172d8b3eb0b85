package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/shared/biztime"
)

const (
	// leaseKeyPrefix is the prefix for all regeneration lease keys
	// Format: content_regen:{type}/{subject}/{locale}
	leaseKeyPrefix = "content_regen:"
	// DefaultLeaseTTL bounds how long a crashed generator can block a key.
	DefaultLeaseTTL = 2 * time.Minute
)

var (
	_ contentcache.LeaseManager = (*RedisRegenerationLease)(nil)
	_ contentcache.LeaseManager = (*MemoryRegenerationLease)(nil)
)

// releaseLeaseScript deletes the lease key only if it still holds the
// caller's token.
// KEYS[1] = lease key, ARGV[1] = token
// Returns 1 if released, 0 if the lease expired or belongs to someone else
var releaseLeaseScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

// RedisRegenerationLease shares leases across instances.
type RedisRegenerationLease struct {
	client *redis.Client
	now    biztime.Clock
}

func NewRedisRegenerationLease(client *redis.Client) *RedisRegenerationLease {
	return &RedisRegenerationLease{client: client, now: biztime.NowUTC}
}

func leaseKey(key contentcache.Key) string {
	return leaseKeyPrefix + key.String()
}

func (l *RedisRegenerationLease) Acquire(ctx context.Context, key contentcache.Key, ttl time.Duration) (contentcache.Lease, bool, error) {
	if ttl <= 0 {
		ttl = DefaultLeaseTTL
	}
	token := uuid.NewString()

	// SetNX is atomic: only sets if key doesn't exist
	acquired, err := l.client.SetNX(ctx, leaseKey(key), token, ttl).Result()
	if err != nil {
		return contentcache.Lease{}, false, fmt.Errorf("failed to acquire regeneration lease: %w", err)
	}
	if !acquired {
		return contentcache.Lease{}, false, nil
	}

	return contentcache.Lease{Key: key, Token: token, ExpiresAt: l.now().Add(ttl)}, true, nil
}

func (l *RedisRegenerationLease) Release(ctx context.Context, lease contentcache.Lease) (bool, error) {
	n, err := releaseLeaseScript.Run(ctx, l.client, []string{leaseKey(lease.Key)}, lease.Token).Int()
	if err != nil {
		return false, fmt.Errorf("failed to release regeneration lease: %w", err)
	}
	return n == 1, nil
}

// MemoryRegenerationLease is the single-instance variant used when Redis
// is disabled.
type MemoryRegenerationLease struct {
	mu     sync.Mutex
	leases map[contentcache.Key]contentcache.Lease
	now    biztime.Clock
}

func NewMemoryRegenerationLease(now biztime.Clock) *MemoryRegenerationLease {
	if now == nil {
		now = biztime.NowUTC
	}
	return &MemoryRegenerationLease{
		leases: make(map[contentcache.Key]contentcache.Lease),
		now:    now,
	}
}

func (l *MemoryRegenerationLease) Acquire(_ context.Context, key contentcache.Key, ttl time.Duration) (contentcache.Lease, bool, error) {
	if ttl <= 0 {
		ttl = DefaultLeaseTTL
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if held, ok := l.leases[key]; ok && now.Before(held.ExpiresAt) {
		return contentcache.Lease{}, false, nil
	}

	lease := contentcache.Lease{Key: key, Token: uuid.NewString(), ExpiresAt: now.Add(ttl)}
	l.leases[key] = lease
	return lease, true, nil
}

func (l *MemoryRegenerationLease) Release(_ context.Context, lease contentcache.Lease) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	held, ok := l.leases[lease.Key]
	if !ok || held.Token != lease.Token {
		return false, nil
	}
	delete(l.leases, lease.Key)
	return l.now().Before(held.ExpiresAt), nil
}
