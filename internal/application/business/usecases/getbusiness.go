package usecases

import (
	"context"
	"fmt"

	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/domain/business"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

type GetBusinessUseCase struct {
	repo   business.Repository
	logger logger.Interface
}

func NewGetBusinessUseCase(repo business.Repository, logger logger.Interface) *GetBusinessUseCase {
	return &GetBusinessUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetBusinessUseCase) Execute(ctx context.Context, id uint) (*dto.BusinessSummary, error) {
	if id == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get business", "business_id", id, "error", err)
		return nil, storageError(ctx, err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("business %d not found", id))
	}

	return dto.ToBusinessSummary(b), nil
}
