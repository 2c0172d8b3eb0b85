package contentcache

import (
	"context"
	"sync"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
)

// memoryRepository is an in-process Repository. The *Func fields override
// the map behaviour when set.
type memoryRepository struct {
	mu      sync.Mutex
	rows    map[contentcache.Key]*contentcache.Entry
	nextID  uint
	upserts int

	FindByKeyFunc   func(ctx context.Context, key contentcache.Key) (*contentcache.Entry, error)
	UpsertFunc      func(ctx context.Context, entry *contentcache.Entry) (bool, error)
	DeleteByKeyFunc func(ctx context.Context, key contentcache.Key) (bool, error)
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{rows: make(map[contentcache.Key]*contentcache.Entry)}
}

func (m *memoryRepository) FindByKey(ctx context.Context, key contentcache.Key) (*contentcache.Entry, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rows[key], nil
}

func (m *memoryRepository) Upsert(ctx context.Context, entry *contentcache.Entry) (bool, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upserts++
	if existing, ok := m.rows[entry.Key()]; ok {
		entry.SetID(existing.ID())
		m.rows[entry.Key()] = entry
		return false, nil
	}
	m.nextID++
	entry.SetID(m.nextID)
	m.rows[entry.Key()] = entry
	return true, nil
}

func (m *memoryRepository) DeleteByKey(ctx context.Context, key contentcache.Key) (bool, error) {
	if m.DeleteByKeyFunc != nil {
		return m.DeleteByKeyFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.rows[key]
	delete(m.rows, key)
	return ok, nil
}

func (m *memoryRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

type stubRenderer struct {
	html string
	err  error
}

func (r stubRenderer) RenderArticle(payload []byte) (string, error) {
	return r.html, r.err
}
