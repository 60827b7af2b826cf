package dto

import "time"

// CreateSurveyResponseRequest carries one complete questionnaire submission.
// Numeric fields are pointers so that 0 stays a valid Likert answer while a
// missing field still fails the required check. Range tags are checked at the
// boundary, before business-rule validation runs.
type CreateSurveyResponseRequest struct {
	OrganizationID      *uint  `json:"organization_id" validate:"required,gt=0"`
	LastName            string `json:"last_name" validate:"required,min=1,max=100"`
	FirstName           string `json:"first_name" validate:"required,min=1,max=100"`
	Age                 *int   `json:"age" validate:"required,gte=14,lte=100"`
	GenderID            *int   `json:"gender_id" validate:"required,gte=0"`
	OrganizationRoleID  *int   `json:"organization_role_id" validate:"required,gt=0"`
	YearsAtOrganization *int   `json:"years_at_organization" validate:"required,gte=0,lte=60"`
	WeeklyHours         *int   `json:"weekly_hours" validate:"required,gte=1,lte=90"`
	RemoteWorkPercentID *int   `json:"remote_work_percent_id" validate:"required,gte=0"`

	PleasureInterestLevel      *int `json:"pleasure_interest_level" validate:"required,gte=0,lte=5"`
	SadnessHopelessnessLevel   *int `json:"sadness_hopelessness_level" validate:"required,gte=0,lte=5"`
	SleepProblemsLevel         *int `json:"sleep_problems_level" validate:"required,gte=0,lte=5"`
	EnergyLossLevel            *int `json:"energy_loss_level" validate:"required,gte=0,lte=5"`
	AppetiteChangeLevel        *int `json:"appetite_change_level" validate:"required,gte=0,lte=5"`
	SelfDisappointmentLevel    *int `json:"self_disappointment_level" validate:"required,gte=0,lte=5"`
	ConcentrationProblemsLevel *int `json:"concentration_problems_level" validate:"required,gte=0,lte=5"`
	InvoluntaryMovementsLevel  *int `json:"involuntary_movements_level" validate:"required,gte=0,lte=5"`
	StayInBedTemptationLevel   *int `json:"stay_in_bed_temptation_level" validate:"required,gte=0,lte=5"`

	SocialIsolationFreq     *int `json:"social_isolation_freq" validate:"required,gte=0,lte=5"`
	WorkDiscreditFreq       *int `json:"work_discredit_freq" validate:"required,gte=0,lte=5"`
	ReputationDamageFreq    *int `json:"reputation_damage_freq" validate:"required,gte=0,lte=5"`
	JobStabilityMisinfoFreq *int `json:"job_stability_misinfo_freq" validate:"required,gte=0,lte=5"`

	EducationLevelID        *int `json:"education_level_id" validate:"required,gte=0"`
	BirthStateID            *int `json:"birth_state_id" validate:"required,gte=0"`
	LongestResidenceStateID *int `json:"longest_residence_state_id" validate:"required,gte=0"`
	ParentsMaritalStatusID  *int `json:"parents_marital_status_id" validate:"required,gte=0"`

	FamilyDiabetes        *int `json:"family_diabetes" validate:"required,gte=0,lte=4"`
	FamilyCancer          *int `json:"family_cancer" validate:"required,gte=0,lte=4"`
	FamilyCerebrovascular *int `json:"family_cerebrovascular" validate:"required,gte=0,lte=4"`
}

type SurveyResponseData struct {
	ID                  uint   `json:"id"`
	OrganizationID      uint   `json:"organization_id"`
	LastName            string `json:"last_name"`
	FirstName           string `json:"first_name"`
	Age                 int    `json:"age"`
	GenderID            int    `json:"gender_id"`
	OrganizationRoleID  int    `json:"organization_role_id"`
	YearsAtOrganization int    `json:"years_at_organization"`
	WeeklyHours         int    `json:"weekly_hours"`
	RemoteWorkPercentID int    `json:"remote_work_percent_id"`

	PleasureInterestLevel      int `json:"pleasure_interest_level"`
	SadnessHopelessnessLevel   int `json:"sadness_hopelessness_level"`
	SleepProblemsLevel         int `json:"sleep_problems_level"`
	EnergyLossLevel            int `json:"energy_loss_level"`
	AppetiteChangeLevel        int `json:"appetite_change_level"`
	SelfDisappointmentLevel    int `json:"self_disappointment_level"`
	ConcentrationProblemsLevel int `json:"concentration_problems_level"`
	InvoluntaryMovementsLevel  int `json:"involuntary_movements_level"`
	StayInBedTemptationLevel   int `json:"stay_in_bed_temptation_level"`

	SocialIsolationFreq     int `json:"social_isolation_freq"`
	WorkDiscreditFreq       int `json:"work_discredit_freq"`
	ReputationDamageFreq    int `json:"reputation_damage_freq"`
	JobStabilityMisinfoFreq int `json:"job_stability_misinfo_freq"`

	EducationLevelID        int `json:"education_level_id"`
	BirthStateID            int `json:"birth_state_id"`
	LongestResidenceStateID int `json:"longest_residence_state_id"`
	ParentsMaritalStatusID  int `json:"parents_marital_status_id"`

	FamilyDiabetes        int `json:"family_diabetes"`
	FamilyCancer          int `json:"family_cancer"`
	FamilyCerebrovascular int `json:"family_cerebrovascular"`

	CreatedAt time.Time `json:"created_at"`
}

type SurveyListResponse struct {
	Responses  []SurveyResponseData `json:"responses"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// StatisticsResponse is the aggregate summary. Averages and the gender
// distribution are only present when at least one record matched.
type StatisticsResponse struct {
	TotalResponses int64 `json:"total_responses"`
	OrganizationID *uint `json:"organization_id"`

	AvgPleasureInterest      *float64 `json:"avg_pleasure_interest,omitempty"`
	AvgSadnessHopelessness   *float64 `json:"avg_sadness_hopelessness,omitempty"`
	AvgSleepProblems         *float64 `json:"avg_sleep_problems,omitempty"`
	AvgEnergyLoss            *float64 `json:"avg_energy_loss,omitempty"`
	AvgConcentrationProblems *float64 `json:"avg_concentration_problems,omitempty"`

	GenderDistribution map[string]int64 `json:"gender_distribution,omitempty"`
	AvgAge             *float64         `json:"avg_age,omitempty"`
}
