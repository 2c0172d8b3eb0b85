package usecases

import (
	"context"
	"fmt"

	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/domain/business"
	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

type UpdateBusinessStatusUseCase struct {
	repo   business.Repository
	logger logger.Interface
}

func NewUpdateBusinessStatusUseCase(repo business.Repository, logger logger.Interface) *UpdateBusinessStatusUseCase {
	return &UpdateBusinessStatusUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UpdateBusinessStatusUseCase) Execute(ctx context.Context, req dto.UpdateBusinessStatusRequest) (*dto.BusinessSummary, error) {
	if req.ID == 0 {
		return nil, errors.NewValidationError("business ID is required")
	}
	status, err := vo.NewStatus(req.Status)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		uc.logger.Errorw("failed to update business status",
			"business_id", req.ID,
			"status", status,
			"error", err,
		)
		return nil, storageError(ctx, err)
	}
	if b == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("business %d not found", req.ID))
	}

	uc.logger.Infow("business status updated", "business_id", req.ID, "status", status)
	return dto.ToBusinessSummary(b), nil
}
