package mappers

import (
	"fmt"

	"github.com/pawpath/pawpath/internal/domain/business"
	"github.com/pawpath/pawpath/internal/infrastructure/persistence/models"
	"github.com/pawpath/pawpath/internal/shared/mapper"
)

type BusinessMapper interface {
	ToEntity(model *models.BusinessModel) (*business.Business, error)
	ToModel(entity *business.Business) *models.BusinessModel
	ToEntities(models []*models.BusinessModel) ([]*business.Business, error)
}

type BusinessMapperImpl struct{}

func NewBusinessMapper() BusinessMapper {
	return &BusinessMapperImpl{}
}

func (m *BusinessMapperImpl) ToEntity(model *models.BusinessModel) (*business.Business, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := business.ReconstructBusiness(
		model.ID,
		model.Name,
		model.ContactEmail,
		model.Status,
		model.Plan,
		model.BillingStatus,
		model.PlacesCount,
		model.LeadsCount,
		model.LeadsLast30Days,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct business entity: %w", err)
	}

	return entity, nil
}

func (m *BusinessMapperImpl) ToModel(entity *business.Business) *models.BusinessModel {
	if entity == nil {
		return nil
	}

	return &models.BusinessModel{
		ID:              entity.ID(),
		Name:            entity.Name(),
		ContactEmail:    entity.ContactEmail(),
		Status:          entity.Status().String(),
		Plan:            entity.Plan().String(),
		BillingStatus:   entity.StoredBillingStatus(),
		PlacesCount:     entity.PlacesCount(),
		LeadsCount:      entity.LeadsCount(),
		LeadsLast30Days: entity.LeadsLast30Days(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *BusinessMapperImpl) ToEntities(modelList []*models.BusinessModel) ([]*business.Business, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.BusinessModel) uint {
		return model.ID
	})
}
