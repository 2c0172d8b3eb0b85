package business

import (
	"context"

	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/application/business/usecases"
	"github.com/pawpath/pawpath/internal/domain/business"
	"github.com/pawpath/pawpath/internal/infrastructure/metrics"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

// Service aggregates the admin business use cases.
type Service struct {
	listUC         usecases.ListBusinessesExecutor
	getUC          usecases.GetBusinessExecutor
	updateStatusUC usecases.UpdateBusinessStatusExecutor
}

func NewService(repo business.Repository, m *metrics.Metrics, logger logger.Interface) *Service {
	return &Service{
		listUC:         usecases.NewListBusinessesUseCase(repo, m, logger),
		getUC:          usecases.NewGetBusinessUseCase(repo, logger),
		updateStatusUC: usecases.NewUpdateBusinessStatusUseCase(repo, logger),
	}
}

func (s *Service) ListBusinesses(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error) {
	return s.listUC.Execute(ctx, req)
}

func (s *Service) GetBusiness(ctx context.Context, id uint) (*dto.BusinessSummary, error) {
	return s.getUC.Execute(ctx, id)
}

func (s *Service) UpdateBusinessStatus(ctx context.Context, id uint, status string) (*dto.BusinessSummary, error) {
	return s.updateStatusUC.Execute(ctx, dto.UpdateBusinessStatusRequest{ID: id, Status: status})
}
