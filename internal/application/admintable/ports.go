package admintable

import (
	"context"

	"github.com/pawpath/pawpath/internal/application/business/dto"
)

// Fetcher loads one page of the table.
type Fetcher interface {
	ListBusinesses(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error)
}

// StatusMutator changes a business status and returns the stored row.
type StatusMutator interface {
	UpdateBusinessStatus(ctx context.Context, id uint, status string) (*dto.BusinessSummary, error)
}
