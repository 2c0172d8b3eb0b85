package business

import (
	"context"

	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/query"
)

type Repository interface {
	Create(ctx context.Context, b *Business) error
	// GetByID returns nil, nil when the business does not exist.
	GetByID(ctx context.Context, id uint) (*Business, error)
	// List returns one page ordered by ID plus the unpaginated match count.
	List(ctx context.Context, filter ListFilter, window query.Window) ([]*Business, int64, error)
	// UpdateStatus changes a single row and returns the updated business,
	// or nil, nil when the ID is unknown.
	UpdateStatus(ctx context.Context, id uint, status vo.Status) (*Business, error)
}
