package repository

import (
	"context"

	"workplace-survey-api/internal/domain/entity"
)

type ReferenceRepository interface {
	ListStates(ctx context.Context) ([]entity.State, error)
	ListMunicipalitiesByState(ctx context.Context, stateID uint) ([]entity.Municipality, error)
	ListOrganizationRoles(ctx context.Context) ([]entity.OrganizationRole, error)
}
