package usecases

import (
	"context"
	"time"

	"github.com/pawpath/pawpath/internal/domain/business"
	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/shared/query"
)

type mockBusinessRepository struct {
	CreateFunc       func(ctx context.Context, b *business.Business) error
	GetByIDFunc      func(ctx context.Context, id uint) (*business.Business, error)
	ListFunc         func(ctx context.Context, filter business.ListFilter, window query.Window) ([]*business.Business, int64, error)
	UpdateStatusFunc func(ctx context.Context, id uint, status vo.Status) (*business.Business, error)
}

func (m *mockBusinessRepository) Create(ctx context.Context, b *business.Business) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, b)
	}
	return nil
}

func (m *mockBusinessRepository) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBusinessRepository) List(ctx context.Context, filter business.ListFilter, window query.Window) ([]*business.Business, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, window)
	}
	return nil, 0, nil
}

func (m *mockBusinessRepository) UpdateStatus(ctx context.Context, id uint, status vo.Status) (*business.Business, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil, nil
}

func mustBusiness(id uint, name, status, plan, billing string) *business.Business {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	b, err := business.ReconstructBusiness(id, name, name+"@example.com", status, plan, billing, 1, 2, 3, at, at)
	if err != nil {
		panic(err)
	}
	return b
}

func strPtr(s string) *string {
	return &s
}
