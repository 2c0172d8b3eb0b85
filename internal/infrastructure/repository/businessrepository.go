package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/domain/business"
	vo "github.com/pawpath/pawpath/internal/domain/business/valueobjects"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/mappers"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/models"
	"github.com/pawpath/pawpath/internal/shared/db"
	"github.com/pawpath/pawpath/internal/shared/query"
)

type BusinessRepositoryImpl struct {
	db     *gorm.DB
	txm    *db.TransactionManager
	mapper mappers.BusinessMapper
}

func NewBusinessRepository(gdb *gorm.DB) business.Repository {
	return &BusinessRepositoryImpl{
		db:     gdb,
		txm:    db.NewTransactionManager(gdb),
		mapper: mappers.NewBusinessMapper(),
	}
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, b *business.Business) error {
	model := r.mapper.ToModel(b)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}

	b.SetID(model.ID)
	return nil
}

func (r *BusinessRepositoryImpl) GetByID(ctx context.Context, id uint) (*business.Business, error) {
	var model models.BusinessModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get business by ID: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map business model to entity: %w", err)
	}

	return entity, nil
}

func applyListFilter(tx *gorm.DB, filter business.ListFilter) *gorm.DB {
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.Plan != nil {
		tx = tx.Where("plan = ?", filter.Plan.String())
	}
	if filter.BillingStatus != nil {
		// Exact match on the stored value: rows still holding a legacy
		// alias are not returned for the canonical filter. On MySQL the
		// column uses utf8mb4_bin so the comparison stays case-sensitive.
		tx = tx.Where("billing_status = ?", filter.BillingStatus.String())
	}
	if filter.Search != nil {
		tx = tx.Scopes(db.ContainsFold(*filter.Search, "name_folded", "email_folded"))
	}
	return tx
}

func (r *BusinessRepositoryImpl) List(ctx context.Context, filter business.ListFilter, window query.Window) ([]*business.Business, int64, error) {
	base := applyListFilter(db.GetTxFromContext(ctx, r.db).Model(&models.BusinessModel{}), filter)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count businesses: %w", err)
	}

	var modelList []*models.BusinessModel
	if total > int64(window.Offset) {
		err := base.Session(&gorm.Session{}).
			Scopes(db.OrderByID(), db.Window(window.Limit, window.Offset)).
			Find(&modelList).Error
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list businesses: %w", err)
		}
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map business models to entities: %w", err)
	}
	if entities == nil {
		entities = []*business.Business{}
	}

	return entities, total, nil
}

func (r *BusinessRepositoryImpl) UpdateStatus(ctx context.Context, id uint, status vo.Status) (*business.Business, error) {
	var updated *business.Business

	err := r.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		entity, err := r.GetByID(txCtx, id)
		if err != nil || entity == nil {
			return err
		}

		if err := entity.ChangeStatus(status); err != nil {
			return err
		}

		result := db.GetTxFromContext(txCtx, r.db).
			Model(&models.BusinessModel{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     entity.Status().String(),
				"updated_at": entity.UpdatedAt(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update business status: %w", result.Error)
		}

		updated = entity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
