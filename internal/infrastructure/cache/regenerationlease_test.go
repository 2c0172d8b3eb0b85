package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return client, mr
}

func testKey(t *testing.T, subject string) contentcache.Key {
	t.Helper()
	key, err := contentcache.NewKey("article", subject, "en-US")
	require.NoError(t, err)
	return key
}

func TestRedisRegenerationLease_SingleHolder(t *testing.T) {
	client, mr := setupTestRedis(t)
	lease := NewRedisRegenerationLease(client)
	ctx := context.Background()
	key := testKey(t, "dog-walking-tips")

	first, ok, err := lease.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, first.Token)
	assert.True(t, mr.Exists("content_regen:article/dog-walking-tips/en-US"))

	_, ok, err = lease.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while the lease is held")

	other, ok, err := lease.Acquire(ctx, testKey(t, "cat-grooming"), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEqual(t, first.Token, other.Token)
}

func TestRedisRegenerationLease_ReleaseRequiresToken(t *testing.T) {
	client, _ := setupTestRedis(t)
	lease := NewRedisRegenerationLease(client)
	ctx := context.Background()
	key := testKey(t, "puppy-training")

	held, ok, err := lease.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	released, err := lease.Release(ctx, contentcache.Lease{Key: key, Token: "someone-else"})
	require.NoError(t, err)
	assert.False(t, released)

	released, err = lease.Release(ctx, held)
	require.NoError(t, err)
	assert.True(t, released)

	_, ok, err = lease.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisRegenerationLease_Expiry(t *testing.T) {
	client, mr := setupTestRedis(t)
	lease := NewRedisRegenerationLease(client)
	ctx := context.Background()
	key := testKey(t, "vet-checklist")

	held, ok, err := lease.Acquire(ctx, key, 30*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(31 * time.Second)

	_, ok, err = lease.Acquire(ctx, key, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired lease must not block a new holder")

	released, err := lease.Release(ctx, held)
	require.NoError(t, err)
	assert.False(t, released, "stale token must not release the new holder's lease")
}

func TestRedisRegenerationLease_ConnectionError(t *testing.T) {
	client, mr := setupTestRedis(t)
	mr.Close()

	_, _, err := NewRedisRegenerationLease(client).Acquire(context.Background(), testKey(t, "x"), time.Minute)
	assert.Error(t, err)
}

func TestMemoryRegenerationLease(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	lease := NewMemoryRegenerationLease(func() time.Time { return now })
	ctx := context.Background()
	key := testKey(t, "senior-dog-diet")

	held, ok, err := lease.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = lease.Acquire(ctx, key, time.Minute)
	assert.False(t, ok)

	released, _ := lease.Release(ctx, contentcache.Lease{Key: key, Token: "bogus"})
	assert.False(t, released)

	now = now.Add(2 * time.Minute)
	next, ok, _ := lease.Acquire(ctx, key, time.Minute)
	assert.True(t, ok)

	released, _ = lease.Release(ctx, held)
	assert.False(t, released)

	released, _ = lease.Release(ctx, next)
	assert.True(t, released)
}
