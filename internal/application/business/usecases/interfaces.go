package usecases

import (
	"context"

	"github.com/pawpath/pawpath/internal/application/business/dto"
)

type ListBusinessesExecutor interface {
	Execute(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error)
}

type GetBusinessExecutor interface {
	Execute(ctx context.Context, id uint) (*dto.BusinessSummary, error)
}

type UpdateBusinessStatusExecutor interface {
	Execute(ctx context.Context, req dto.UpdateBusinessStatusRequest) (*dto.BusinessSummary, error)
}
