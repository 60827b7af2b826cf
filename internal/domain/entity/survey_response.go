package entity

import "time"

// SurveyResponse is one respondent's complete answer set for the workplace
// mental-health questionnaire. Reference ids (state, role, gender) carry no
// foreign keys; catalogs live in their own tables and are looked up by id.
type SurveyResponse struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Respondent demographics
	OrganizationID      uint   `gorm:"not null;index" json:"organization_id"`
	LastName            string `gorm:"type:varchar(100);not null" json:"last_name"`
	FirstName           string `gorm:"type:varchar(100);not null" json:"first_name"`
	Age                 int    `gorm:"not null" json:"age"`
	GenderID            int    `gorm:"not null" json:"gender_id"`
	OrganizationRoleID  int    `gorm:"not null" json:"organization_role_id"`
	YearsAtOrganization int    `gorm:"not null" json:"years_at_organization"`
	WeeklyHours         int    `gorm:"not null" json:"weekly_hours"`
	RemoteWorkPercentID int    `gorm:"not null" json:"remote_work_percent_id"`

	// Mental-health scale (Likert intensity, 0-5)
	PleasureInterestLevel      int `gorm:"not null" json:"pleasure_interest_level"`
	SadnessHopelessnessLevel   int `gorm:"not null" json:"sadness_hopelessness_level"`
	SleepProblemsLevel         int `gorm:"not null" json:"sleep_problems_level"`
	EnergyLossLevel            int `gorm:"not null" json:"energy_loss_level"`
	AppetiteChangeLevel        int `gorm:"not null" json:"appetite_change_level"`
	SelfDisappointmentLevel    int `gorm:"not null" json:"self_disappointment_level"`
	ConcentrationProblemsLevel int `gorm:"not null" json:"concentration_problems_level"`
	InvoluntaryMovementsLevel  int `gorm:"not null" json:"involuntary_movements_level"`
	StayInBedTemptationLevel   int `gorm:"not null" json:"stay_in_bed_temptation_level"`

	// Workplace-climate scale (Likert frequency, 0-5)
	SocialIsolationFreq     int `gorm:"not null" json:"social_isolation_freq"`
	WorkDiscreditFreq       int `gorm:"not null" json:"work_discredit_freq"`
	ReputationDamageFreq    int `gorm:"not null" json:"reputation_damage_freq"`
	JobStabilityMisinfoFreq int `gorm:"not null" json:"job_stability_misinfo_freq"`

	// Socio-demographics
	EducationLevelID        int `gorm:"not null" json:"education_level_id"`
	BirthStateID            int `gorm:"not null" json:"birth_state_id"`
	LongestResidenceStateID int `gorm:"not null" json:"longest_residence_state_id"`
	ParentsMaritalStatusID  int `gorm:"not null" json:"parents_marital_status_id"`

	// Family health history (0-4)
	FamilyDiabetes        int `gorm:"not null" json:"family_diabetes"`
	FamilyCancer          int `gorm:"not null" json:"family_cancer"`
	FamilyCerebrovascular int `gorm:"not null" json:"family_cerebrovascular"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}
