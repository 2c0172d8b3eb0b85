package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/mappers"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/models"
	"github.com/pawpath/pawpath/internal/shared/db"
)

type ContentCacheRepositoryImpl struct {
	db     *gorm.DB
	txm    *db.TransactionManager
	mapper mappers.ContentCacheEntryMapper
}

func NewContentCacheRepository(gdb *gorm.DB) contentcache.Repository {
	return &ContentCacheRepositoryImpl{
		db:     gdb,
		txm:    db.NewTransactionManager(gdb),
		mapper: mappers.NewContentCacheEntryMapper(),
	}
}

func byKey(key contentcache.Key) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("content_type = ? AND subject_id = ? AND locale = ?",
			key.ContentType.String(), key.SubjectID, key.Locale)
	}
}

func (r *ContentCacheRepositoryImpl) FindByKey(ctx context.Context, key contentcache.Key) (*contentcache.Entry, error) {
	var model models.ContentCacheEntryModel

	err := db.GetTxFromContext(ctx, r.db).Scopes(byKey(key)).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content cache entry %s: %w", key, err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map content cache model to entity: %w", err)
	}

	return entity, nil
}

// Upsert writes the entry with INSERT ... ON CONFLICT on the key columns so
// concurrent writers never create a second row. The existence check only
// decides the created flag; when two first writers race both may report
// created while the table still holds a single row.
func (r *ContentCacheRepositoryImpl) Upsert(ctx context.Context, entry *contentcache.Entry) (bool, error) {
	model := r.mapper.ToModel(entry)
	model.ID = 0

	var created bool
	err := r.txm.RunInTransaction(ctx, func(txCtx context.Context) error {
		tx := db.GetTxFromContext(txCtx, r.db)

		var existing models.ContentCacheEntryModel
		err := tx.Select("id").Scopes(byKey(entry.Key())).Take(&existing).Error
		switch {
		case err == nil:
			created = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
		default:
			return fmt.Errorf("failed to check content cache entry: %w", err)
		}

		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "content_type"}, {Name: "subject_id"}, {Name: "locale"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"payload", "schema_tag", "generator_version", "generated_at", "updated_at",
			}),
		}).Create(model).Error
		if err != nil {
			return fmt.Errorf("failed to upsert content cache entry: %w", err)
		}

		if created {
			entry.SetID(model.ID)
		} else {
			entry.SetID(existing.ID)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

func (r *ContentCacheRepositoryImpl) DeleteByKey(ctx context.Context, key contentcache.Key) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).Scopes(byKey(key)).Delete(&models.ContentCacheEntryModel{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete content cache entry %s: %w", key, result.Error)
	}
	return result.RowsAffected > 0, nil
}
