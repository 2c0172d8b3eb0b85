package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/infrastructure/persistence/models"
	"github.com/pawpath/pawpath/internal/shared/logger"
)

// AutoMigrateModels lists every persisted model.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ContentCacheEntryModel{},
		&models.BusinessModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs.
// Only meant for local development and tests.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.gorm")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	modelList := AutoMigrateModels()
	s.logger.Infow("starting gorm auto migration", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return StrategyAutoMigrate
}
