package contentcache

import "context"

type Repository interface {
	// FindByKey returns nil, nil when no entry exists.
	FindByKey(ctx context.Context, key Key) (*Entry, error)
	// Upsert inserts or overwrites the entry for its key and reports
	// whether a new row was created.
	Upsert(ctx context.Context, entry *Entry) (created bool, err error)
	// DeleteByKey hard-deletes the entry and reports whether a row existed.
	DeleteByKey(ctx context.Context, key Key) (bool, error)
}
