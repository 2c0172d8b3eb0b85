package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/pawpath/pawpath/internal/shared/constants"
)

// ContentCacheEntryModel is one cached payload. The composite unique index
// enforces a single row per (content_type, subject_id, locale).
type ContentCacheEntryModel struct {
	ID               uint           `gorm:"primaryKey"`
	ContentType      string         `gorm:"size:64;not null;uniqueIndex:uk_content_cache_key,priority:1"`
	SubjectID        string         `gorm:"size:191;not null;uniqueIndex:uk_content_cache_key,priority:2"`
	Locale           string         `gorm:"size:35;not null;uniqueIndex:uk_content_cache_key,priority:3"`
	Payload          datatypes.JSON `gorm:"not null"`
	SchemaTag        string         `gorm:"size:64;not null"`
	GeneratorVersion string         `gorm:"size:64;not null;index"`
	GeneratedAt      time.Time      `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (ContentCacheEntryModel) TableName() string {
	return constants.TableContentCacheEntries
}
