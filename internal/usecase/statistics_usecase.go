package usecase

import (
	"context"
	"fmt"

	"workplace-survey-api/internal/delivery/dto"
	"workplace-survey-api/internal/domain/entity"
	"workplace-survey-api/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Columns the aggregate averages are computed over. Must match the entity's
// column names; never built from request input.
const (
	colPleasureInterest      = "pleasure_interest_level"
	colSadnessHopelessness   = "sadness_hopelessness_level"
	colSleepProblems         = "sleep_problems_level"
	colEnergyLoss            = "energy_loss_level"
	colConcentrationProblems = "concentration_problems_level"
	colAge                   = "age"
)

type StatisticsUsecase interface {
	BasicStatistics(ctx context.Context, organizationID *uint) (*dto.StatisticsResponse, error)
}

type statisticsUsecase struct {
	log        *logrus.Logger
	surveyRepo repository.SurveyResponseRepository
}

func NewStatisticsUsecase(log *logrus.Logger, surveyRepo repository.SurveyResponseRepository) StatisticsUsecase {
	return &statisticsUsecase{
		log:        log,
		surveyRepo: surveyRepo,
	}
}

// BasicStatistics computes the aggregate summary, optionally scoped to one
// organization. Averages and the gender distribution are skipped entirely
// when no record matches.
func (u *statisticsUsecase) BasicStatistics(ctx context.Context, organizationID *uint) (*dto.StatisticsResponse, error) {
	filter := &entity.SurveyFilter{OrganizationID: organizationID}

	total, err := u.surveyRepo.Count(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to count survey responses: %+v", err)
		return nil, err
	}

	stats := &dto.StatisticsResponse{
		TotalResponses: total,
		OrganizationID: organizationID,
	}
	if total == 0 {
		return stats, nil
	}

	averages := []struct {
		column string
		dest   **float64
	}{
		{colPleasureInterest, &stats.AvgPleasureInterest},
		{colSadnessHopelessness, &stats.AvgSadnessHopelessness},
		{colSleepProblems, &stats.AvgSleepProblems},
		{colEnergyLoss, &stats.AvgEnergyLoss},
		{colConcentrationProblems, &stats.AvgConcentrationProblems},
	}
	for _, avg := range averages {
		value, err := u.roundedAverage(ctx, avg.column, filter, 2)
		if err != nil {
			return nil, err
		}
		*avg.dest = &value
	}

	genderCounts, err := u.surveyRepo.CountByGender(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to compute gender distribution: %+v", err)
		return nil, err
	}
	distribution := make(map[string]int64, len(genderCounts))
	for genderID, count := range genderCounts {
		distribution[fmt.Sprintf("gender_%d", genderID)] = count
	}
	stats.GenderDistribution = distribution

	avgAge, err := u.roundedAverage(ctx, colAge, filter, 1)
	if err != nil {
		return nil, err
	}
	stats.AvgAge = &avgAge

	return stats, nil
}

// roundedAverage fetches one column average and rounds it to the given number
// of decimal places. A NULL aggregate from the store is reported as 0.0.
func (u *statisticsUsecase) roundedAverage(ctx context.Context, column string, filter *entity.SurveyFilter, places int32) (float64, error) {
	avg, err := u.surveyRepo.Average(ctx, column, filter)
	if err != nil {
		u.log.Warnf("Failed to compute average of %s: %+v", column, err)
		return 0, err
	}
	if avg == nil {
		return 0.0, nil
	}
	return decimal.NewFromFloat(*avg).Round(places).InexactFloat64(), nil
}
