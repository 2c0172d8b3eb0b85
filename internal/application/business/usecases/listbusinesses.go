package usecases

import (
	"context"
	"time"

	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/domain/business"
	"github.com/pawpath/pawpath/internal/infrastructure/metrics"
	"github.com/pawpath/pawpath/internal/shared/logger"
	"github.com/pawpath/pawpath/internal/shared/query"
)

type ListBusinessesUseCase struct {
	repo    business.Repository
	metrics *metrics.Metrics
	logger  logger.Interface
}

func NewListBusinessesUseCase(repo business.Repository, m *metrics.Metrics, logger logger.Interface) *ListBusinessesUseCase {
	return &ListBusinessesUseCase{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// Execute returns one page of businesses ordered by ID together with the
// total number of matches. Filters combine with AND.
func (uc *ListBusinessesUseCase) Execute(ctx context.Context, req dto.ListBusinessesRequest) (*dto.ListBusinessesResponse, error) {
	filter, err := business.NewListFilter(req.Status, req.Plan, req.BillingStatus, req.Search)
	if err != nil {
		return nil, err
	}

	window, err := query.NewWindow(req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	list, total, err := uc.repo.List(ctx, filter, window)
	uc.metrics.ObserveListQuery(time.Since(start), err)
	if err != nil {
		uc.logger.Errorw("failed to list businesses",
			"limit", window.Limit,
			"offset", window.Offset,
			"error", err,
		)
		return nil, storageError(ctx, err)
	}

	items := dto.ToBusinessSummaries(list)
	if items == nil {
		items = []*dto.BusinessSummary{}
	}

	return &dto.ListBusinessesResponse{
		Businesses: items,
		Total:      total,
	}, nil
}
