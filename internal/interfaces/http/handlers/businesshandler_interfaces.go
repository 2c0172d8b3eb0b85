package handlers

import (
	"context"

	"github.com/pawpath/pawpath/internal/application/business/dto"
)

type businessService interface {
	ListBusinesses(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error)
	GetBusiness(ctx context.Context, id uint) (*dto.BusinessSummary, error)
	UpdateBusinessStatus(ctx context.Context, id uint, status string) (*dto.BusinessSummary, error)
}
