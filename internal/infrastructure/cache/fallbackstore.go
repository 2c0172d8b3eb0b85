package cache

import (
	"time"

	"github.com/viccon/sturdyc"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
)

const (
	DefaultFallbackCapacity = 10000
	DefaultFallbackTTL      = 24 * time.Hour

	fallbackShards             = 16
	fallbackEvictionPercentage = 10
)

// LastKnownStore keeps the most recently read or written entry per key in
// process memory. It is only consulted when the database is unavailable.
type LastKnownStore struct {
	client *sturdyc.Client[*contentcache.Entry]
}

func NewLastKnownStore(capacity int, ttl time.Duration) *LastKnownStore {
	if capacity <= 0 {
		capacity = DefaultFallbackCapacity
	}
	if ttl <= 0 {
		ttl = DefaultFallbackTTL
	}
	return &LastKnownStore{
		client: sturdyc.New[*contentcache.Entry](capacity, fallbackShards, ttl, fallbackEvictionPercentage),
	}
}

func (s *LastKnownStore) Remember(entry *contentcache.Entry) {
	if entry == nil {
		return
	}
	s.client.Set(entry.Key().String(), entry)
}

func (s *LastKnownStore) Recall(key contentcache.Key) (*contentcache.Entry, bool) {
	return s.client.Get(key.String())
}

func (s *LastKnownStore) Forget(key contentcache.Key) {
	s.client.Delete(key.String())
}

func (s *LastKnownStore) Size() int {
	return s.client.Size()
}
