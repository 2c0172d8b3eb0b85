package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/domain/business"
	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

func TestUpdateBusinessStatusUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateBusinessStatusRequest
		repoFunc  func(ctx context.Context, id uint, status vo.Status) (*business.Business, error)
		wantErr   func(error) bool
		wantState string
	}{
		{
			name: "suspends business",
			req:  dto.UpdateBusinessStatusRequest{ID: 7, Status: "suspended"},
			repoFunc: func(ctx context.Context, id uint, status vo.Status) (*business.Business, error) {
				return mustBusiness(id, "Fetch Co", status.String(), "PRO", "ACTIVE"), nil
			},
			wantState: "suspended",
		},
		{
			name:    "unknown status",
			req:     dto.UpdateBusinessStatusRequest{ID: 7, Status: "deleted"},
			wantErr: errors.IsValidationError,
		},
		{
			name:    "missing id",
			req:     dto.UpdateBusinessStatusRequest{Status: "active"},
			wantErr: errors.IsValidationError,
		},
		{
			name: "unknown id",
			req:  dto.UpdateBusinessStatusRequest{ID: 99, Status: "active"},
			repoFunc: func(ctx context.Context, id uint, status vo.Status) (*business.Business, error) {
				return nil, nil
			},
			wantErr: errors.IsNotFoundError,
		},
		{
			name: "storage failure",
			req:  dto.UpdateBusinessStatusRequest{ID: 7, Status: "active"},
			repoFunc: func(ctx context.Context, id uint, status vo.Status) (*business.Business, error) {
				return nil, stderrors.New("deadlock")
			},
			wantErr: errors.IsStorageError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUpdateBusinessStatusUseCase(&mockBusinessRepository{UpdateStatusFunc: tt.repoFunc}, logger.NewNopLogger())

			res, err := uc.Execute(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, res.Status)
		})
	}
}

func TestGetBusinessUseCase_Execute(t *testing.T) {
	repo := &mockBusinessRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*business.Business, error) {
			if id == 1 {
				return mustBusiness(1, "Wag Walks", "pending", "ENTERPRISE", "overdue"), nil
			}
			return nil, nil
		},
	}
	uc := NewGetBusinessUseCase(repo, logger.NewNopLogger())

	res, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Enterprise", res.PlanLabel)
	assert.Equal(t, "EXPIRED", res.BillingStatus)
	assert.Equal(t, "red", res.BillingColor)

	_, err = uc.Execute(context.Background(), 2)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), 0)
	assert.True(t, errors.IsValidationError(err))
}
