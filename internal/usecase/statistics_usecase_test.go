package usecase

import (
	"context"
	"testing"

	"workplace-survey-api/internal/domain/entity"
	"workplace-survey-api/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStatisticsUsecase(t *testing.T) (StatisticsUsecase, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.SurveyResponse{}))

	repo := repository.NewSurveyResponseRepository(db)
	return NewStatisticsUsecase(logrus.New(), repo), db
}

func seedStatsResponse(t *testing.T, db *gorm.DB, org uint, age, gender, pleasure, sadness, sleep, energy, concentration int) {
	t.Helper()
	require.NoError(t, db.Create(&entity.SurveyResponse{
		OrganizationID:             org,
		LastName:                   "Doe",
		FirstName:                  "Jane",
		Age:                        age,
		GenderID:                   gender,
		WeeklyHours:                40,
		YearsAtOrganization:        1,
		PleasureInterestLevel:      pleasure,
		SadnessHopelessnessLevel:   sadness,
		SleepProblemsLevel:         sleep,
		EnergyLossLevel:            energy,
		ConcentrationProblemsLevel: concentration,
	}).Error)
}

func TestStatisticsEmptySet(t *testing.T) {
	usecase, _ := setupStatisticsUsecase(t)

	orgID := uint(7)
	stats, err := usecase.BasicStatistics(context.Background(), &orgID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalResponses)
	require.NotNil(t, stats.OrganizationID)
	assert.Equal(t, orgID, *stats.OrganizationID)
	assert.Nil(t, stats.AvgPleasureInterest)
	assert.Nil(t, stats.AvgSadnessHopelessness)
	assert.Nil(t, stats.AvgSleepProblems)
	assert.Nil(t, stats.AvgEnergyLoss)
	assert.Nil(t, stats.AvgConcentrationProblems)
	assert.Nil(t, stats.AvgAge)
	assert.Nil(t, stats.GenderDistribution)
}

func TestStatisticsScopedToOrganization(t *testing.T) {
	usecase, db := setupStatisticsUsecase(t)

	// org 1: three respondents
	seedStatsResponse(t, db, 1, 30, 1, 1, 2, 0, 5, 0)
	seedStatsResponse(t, db, 1, 40, 1, 1, 3, 0, 5, 1)
	seedStatsResponse(t, db, 1, 50, 2, 2, 4, 5, 5, 2)
	// org 2: excluded by the filter
	seedStatsResponse(t, db, 2, 99, 3, 5, 5, 5, 5, 5)

	orgID := uint(1)
	stats, err := usecase.BasicStatistics(context.Background(), &orgID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalResponses)

	// Averages rounded to two decimals
	require.NotNil(t, stats.AvgPleasureInterest)
	assert.InDelta(t, 1.33, *stats.AvgPleasureInterest, 0.0001)
	require.NotNil(t, stats.AvgSadnessHopelessness)
	assert.InDelta(t, 3.0, *stats.AvgSadnessHopelessness, 0.0001)
	require.NotNil(t, stats.AvgSleepProblems)
	assert.InDelta(t, 1.67, *stats.AvgSleepProblems, 0.0001)
	require.NotNil(t, stats.AvgEnergyLoss)
	assert.InDelta(t, 5.0, *stats.AvgEnergyLoss, 0.0001)
	require.NotNil(t, stats.AvgConcentrationProblems)
	assert.InDelta(t, 1.0, *stats.AvgConcentrationProblems, 0.0001)

	// Average age rounded to one decimal
	require.NotNil(t, stats.AvgAge)
	assert.InDelta(t, 40.0, *stats.AvgAge, 0.0001)

	// Distribution covers only present gender ids and sums to the total
	assert.Equal(t, map[string]int64{"gender_1": 2, "gender_2": 1}, stats.GenderDistribution)
	var sum int64
	for _, count := range stats.GenderDistribution {
		sum += count
	}
	assert.Equal(t, stats.TotalResponses, sum)
}

func TestStatisticsUnscoped(t *testing.T) {
	usecase, db := setupStatisticsUsecase(t)

	seedStatsResponse(t, db, 1, 30, 1, 1, 1, 1, 1, 1)
	seedStatsResponse(t, db, 2, 33, 2, 3, 3, 3, 3, 3)

	stats, err := usecase.BasicStatistics(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalResponses)
	assert.Nil(t, stats.OrganizationID)
	require.NotNil(t, stats.AvgAge)
	assert.InDelta(t, 31.5, *stats.AvgAge, 0.0001)
	assert.Equal(t, map[string]int64{"gender_1": 1, "gender_2": 1}, stats.GenderDistribution)
}
