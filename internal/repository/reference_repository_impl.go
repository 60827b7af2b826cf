package repository

import (
	"context"

	"workplace-survey-api/internal/domain/entity"
	domainRepo "workplace-survey-api/internal/domain/repository"

	"gorm.io/gorm"
)

type referenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) domainRepo.ReferenceRepository {
	return &referenceRepository{db: db}
}

func (r *referenceRepository) ListStates(ctx context.Context) ([]entity.State, error) {
	var states []entity.State
	err := r.db.WithContext(ctx).Order("name ASC").Find(&states).Error
	if err != nil {
		return nil, err
	}
	return states, nil
}

func (r *referenceRepository) ListMunicipalitiesByState(ctx context.Context, stateID uint) ([]entity.Municipality, error) {
	var municipalities []entity.Municipality
	err := r.db.WithContext(ctx).Where("state_id = ?", stateID).Order("name ASC").Find(&municipalities).Error
	if err != nil {
		return nil, err
	}
	return municipalities, nil
}

func (r *referenceRepository) ListOrganizationRoles(ctx context.Context) ([]entity.OrganizationRole, error) {
	var roles []entity.OrganizationRole
	err := r.db.WithContext(ctx).Order("name ASC").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
