package http

import (
	"gorm.io/gorm"

	"github.com/pawpath/pawpath/internal/domain/business"
	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	contentCacheRepo contentcache.Repository
	businessRepo     business.Repository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		contentCacheRepo: repository.NewContentCacheRepository(db),
		businessRepo:     repository.NewBusinessRepository(db),
	}
}
