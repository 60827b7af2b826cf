package converter

import (
	"workplace-survey-api/internal/delivery/dto"
	"workplace-survey-api/internal/domain/entity"
)

func StatesToOptions(states []entity.State) []dto.ReferenceOption {
	options := make([]dto.ReferenceOption, len(states))
	for i, state := range states {
		options[i] = dto.ReferenceOption{ID: state.ID, Name: state.Name}
	}
	return options
}

func MunicipalitiesToOptions(municipalities []entity.Municipality) []dto.ReferenceOption {
	options := make([]dto.ReferenceOption, len(municipalities))
	for i, municipality := range municipalities {
		options[i] = dto.ReferenceOption{ID: municipality.ID, Name: municipality.Name}
	}
	return options
}

func OrganizationRolesToOptions(roles []entity.OrganizationRole) []dto.ReferenceOption {
	options := make([]dto.ReferenceOption, len(roles))
	for i, role := range roles {
		options[i] = dto.ReferenceOption{ID: role.ID, Name: role.Name}
	}
	return options
}
