package entity

// SurveyFilter is a domain-level filter for querying survey responses.
// Nil fields contribute no predicate; present fields are AND-combined.
// The page query and the count query share the same filter so both agree
// on which records match.
type SurveyFilter struct {
	OrganizationID *uint
	MinAge         *int
	MaxAge         *int
}
