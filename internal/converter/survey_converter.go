package converter

import (
	"workplace-survey-api/internal/delivery/dto"
	"workplace-survey-api/internal/domain/entity"
)

// CreateRequestToSurveyResponse builds the entity from a decoded request.
// The request has already passed boundary validation, so every pointer field
// is non-nil here. Name normalization runs later, in the usecase.
func CreateRequestToSurveyResponse(req *dto.CreateSurveyResponseRequest) *entity.SurveyResponse {
	return &entity.SurveyResponse{
		OrganizationID:      *req.OrganizationID,
		LastName:            req.LastName,
		FirstName:           req.FirstName,
		Age:                 *req.Age,
		GenderID:            *req.GenderID,
		OrganizationRoleID:  *req.OrganizationRoleID,
		YearsAtOrganization: *req.YearsAtOrganization,
		WeeklyHours:         *req.WeeklyHours,
		RemoteWorkPercentID: *req.RemoteWorkPercentID,

		PleasureInterestLevel:      *req.PleasureInterestLevel,
		SadnessHopelessnessLevel:   *req.SadnessHopelessnessLevel,
		SleepProblemsLevel:         *req.SleepProblemsLevel,
		EnergyLossLevel:            *req.EnergyLossLevel,
		AppetiteChangeLevel:        *req.AppetiteChangeLevel,
		SelfDisappointmentLevel:    *req.SelfDisappointmentLevel,
		ConcentrationProblemsLevel: *req.ConcentrationProblemsLevel,
		InvoluntaryMovementsLevel:  *req.InvoluntaryMovementsLevel,
		StayInBedTemptationLevel:   *req.StayInBedTemptationLevel,

		SocialIsolationFreq:     *req.SocialIsolationFreq,
		WorkDiscreditFreq:       *req.WorkDiscreditFreq,
		ReputationDamageFreq:    *req.ReputationDamageFreq,
		JobStabilityMisinfoFreq: *req.JobStabilityMisinfoFreq,

		EducationLevelID:        *req.EducationLevelID,
		BirthStateID:            *req.BirthStateID,
		LongestResidenceStateID: *req.LongestResidenceStateID,
		ParentsMaritalStatusID:  *req.ParentsMaritalStatusID,

		FamilyDiabetes:        *req.FamilyDiabetes,
		FamilyCancer:          *req.FamilyCancer,
		FamilyCerebrovascular: *req.FamilyCerebrovascular,
	}
}

// SurveyResponseToData converts a stored entity to its response DTO.
func SurveyResponseToData(response *entity.SurveyResponse) *dto.SurveyResponseData {
	if response == nil {
		return nil
	}

	return &dto.SurveyResponseData{
		ID:                  response.ID,
		OrganizationID:      response.OrganizationID,
		LastName:            response.LastName,
		FirstName:           response.FirstName,
		Age:                 response.Age,
		GenderID:            response.GenderID,
		OrganizationRoleID:  response.OrganizationRoleID,
		YearsAtOrganization: response.YearsAtOrganization,
		WeeklyHours:         response.WeeklyHours,
		RemoteWorkPercentID: response.RemoteWorkPercentID,

		PleasureInterestLevel:      response.PleasureInterestLevel,
		SadnessHopelessnessLevel:   response.SadnessHopelessnessLevel,
		SleepProblemsLevel:         response.SleepProblemsLevel,
		EnergyLossLevel:            response.EnergyLossLevel,
		AppetiteChangeLevel:        response.AppetiteChangeLevel,
		SelfDisappointmentLevel:    response.SelfDisappointmentLevel,
		ConcentrationProblemsLevel: response.ConcentrationProblemsLevel,
		InvoluntaryMovementsLevel:  response.InvoluntaryMovementsLevel,
		StayInBedTemptationLevel:   response.StayInBedTemptationLevel,

		SocialIsolationFreq:     response.SocialIsolationFreq,
		WorkDiscreditFreq:       response.WorkDiscreditFreq,
		ReputationDamageFreq:    response.ReputationDamageFreq,
		JobStabilityMisinfoFreq: response.JobStabilityMisinfoFreq,

		EducationLevelID:        response.EducationLevelID,
		BirthStateID:            response.BirthStateID,
		LongestResidenceStateID: response.LongestResidenceStateID,
		ParentsMaritalStatusID:  response.ParentsMaritalStatusID,

		FamilyDiabetes:        response.FamilyDiabetes,
		FamilyCancer:          response.FamilyCancer,
		FamilyCerebrovascular: response.FamilyCerebrovascular,

		CreatedAt: response.CreatedAt,
	}
}

// SurveyResponsesToData converts a page of entities.
func SurveyResponsesToData(responses []entity.SurveyResponse) []dto.SurveyResponseData {
	data := make([]dto.SurveyResponseData, len(responses))
	for i := range responses {
		data[i] = *SurveyResponseToData(&responses[i])
	}
	return data
}
