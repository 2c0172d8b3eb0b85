package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/pawpath/pawpath/internal/domain/contentcache"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/models"
)

type ContentCacheEntryMapper interface {
	ToEntity(model *models.ContentCacheEntryModel) (*contentcache.Entry, error)
	ToModel(entity *contentcache.Entry) *models.ContentCacheEntryModel
}

type ContentCacheEntryMapperImpl struct{}

func NewContentCacheEntryMapper() ContentCacheEntryMapper {
	return &ContentCacheEntryMapperImpl{}
}

func (m *ContentCacheEntryMapperImpl) ToEntity(model *models.ContentCacheEntryModel) (*contentcache.Entry, error) {
	if model == nil {
		return nil, nil
	}

	ct, err := contentcache.NewContentType(model.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to map content type: %w", err)
	}

	key := contentcache.Key{
		ContentType: ct,
		SubjectID:   model.SubjectID,
		Locale:      model.Locale,
	}

	entity, err := contentcache.ReconstructEntry(
		model.ID,
		key,
		[]byte(model.Payload),
		model.SchemaTag,
		model.GeneratorVersion,
		model.GeneratedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct content cache entry: %w", err)
	}

	return entity, nil
}

func (m *ContentCacheEntryMapperImpl) ToModel(entity *contentcache.Entry) *models.ContentCacheEntryModel {
	if entity == nil {
		return nil
	}

	key := entity.Key()
	return &models.ContentCacheEntryModel{
		ID:               entity.ID(),
		ContentType:      key.ContentType.String(),
		SubjectID:        key.SubjectID,
		Locale:           key.Locale,
		Payload:          datatypes.JSON(entity.Payload()),
		SchemaTag:        entity.SchemaTag(),
		GeneratorVersion: entity.GeneratorVersion(),
		GeneratedAt:      entity.GeneratedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}
