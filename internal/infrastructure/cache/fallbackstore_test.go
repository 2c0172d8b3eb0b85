package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
)

func TestLastKnownStore(t *testing.T) {
	store := NewLastKnownStore(100, time.Hour)
	key := testKey(t, "leash-guide")

	_, ok := store.Recall(key)
	assert.False(t, ok)

	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	entry, err := contentcache.ReconstructEntry(1, key, []byte(`{"title":"Leash"}`), "article/v1", "gen-1", at, at)
	require.NoError(t, err)

	store.Remember(entry)
	store.Remember(nil)

	got, ok := store.Recall(key)
	require.True(t, ok)
	assert.Equal(t, "gen-1", got.GeneratorVersion())
	assert.Equal(t, 1, store.Size())

	store.Forget(key)
	_, ok = store.Recall(key)
	assert.False(t, ok)
}
