package dto

// ReferenceOption is one selectable (id, name) pair for a survey form field.
type ReferenceOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type StateListResponse struct {
	States []ReferenceOption `json:"states"`
}

type MunicipalityListResponse struct {
	Municipalities []ReferenceOption `json:"municipalities"`
}

type OrganizationRoleListResponse struct {
	Roles []ReferenceOption `json:"roles"`
}
