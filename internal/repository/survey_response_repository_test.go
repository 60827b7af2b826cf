package repository

import (
	"context"
	"testing"
	"time"

	"workplace-survey-api/internal/domain/entity"
	domainRepo "workplace-survey-api/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupSurveyTestDB creates an in-memory SQLite database for testing
func setupSurveyTestDB(t *testing.T) (*gorm.DB, domainRepo.SurveyResponseRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entity.SurveyResponse{})
	require.NoError(t, err)

	return db, NewSurveyResponseRepository(db)
}

func newTestResponse(org uint, age, gender int) *entity.SurveyResponse {
	return &entity.SurveyResponse{
		OrganizationID:      org,
		LastName:            "Doe",
		FirstName:           "Jane",
		Age:                 age,
		GenderID:            gender,
		OrganizationRoleID:  1,
		YearsAtOrganization: 1,
		WeeklyHours:         40,
	}
}

func uintPtr(v uint) *uint { return &v }
func intPtr(v int) *int    { return &v }

func TestFindPageFilterComposition(t *testing.T) {
	db, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	seed := []*entity.SurveyResponse{
		newTestResponse(1, 25, 1),
		newTestResponse(1, 40, 2),
		newTestResponse(1, 55, 1),
		newTestResponse(2, 40, 1),
	}
	for _, r := range seed {
		require.NoError(t, db.Create(r).Error)
	}

	// Organization filter alone
	orgFilter := &entity.SurveyFilter{OrganizationID: uintPtr(1)}
	responses, total, err := repo.FindPage(ctx, orgFilter, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, responses, 3)
	for _, r := range responses {
		assert.Equal(t, uint(1), r.OrganizationID)
	}

	// Adding age bounds restricts further
	combined := &entity.SurveyFilter{
		OrganizationID: uintPtr(1),
		MinAge:         intPtr(30),
		MaxAge:         intPtr(50),
	}
	responses, total, err = repo.FindPage(ctx, combined, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.Equal(t, 40, responses[0].Age)

	// Removing a key is equivalent to not constraining that dimension
	noMax := &entity.SurveyFilter{OrganizationID: uintPtr(1), MinAge: intPtr(30)}
	_, total, err = repo.FindPage(ctx, noMax, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Nil filter matches everything
	_, total, err = repo.FindPage(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestFindPageOrderingAndPagination(t *testing.T) {
	db, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	// Same creation timestamp for all rows, so ordering falls back to id DESC.
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := newTestResponse(1, 30+i, 1)
		r.CreatedAt = createdAt
		require.NoError(t, db.Create(r).Error)
	}

	firstPage, total, err := repo.FindPage(ctx, nil, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, firstPage, 2)
	assert.Equal(t, uint(5), firstPage[0].ID)
	assert.Equal(t, uint(4), firstPage[1].ID)

	lastPage, _, err := repo.FindPage(ctx, nil, 2, 4)
	require.NoError(t, err)
	require.Len(t, lastPage, 1)
	assert.Equal(t, uint(1), lastPage[0].ID)

	// Paging past the end is an empty page, not an error
	empty, total, err := repo.FindPage(ctx, nil, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, empty)
}

func TestFindByID(t *testing.T) {
	db, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	created := newTestResponse(1, 30, 1)
	require.NoError(t, db.Create(created).Error)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := repo.FindByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteByID(t *testing.T) {
	db, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	created := newTestResponse(1, 30, 1)
	require.NoError(t, db.Create(created).Error)

	affected, err := repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	affected, err = repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestAverage(t *testing.T) {
	db, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(newTestResponse(1, 30, 1)).Error)
	require.NoError(t, db.Create(newTestResponse(1, 40, 1)).Error)
	require.NoError(t, db.Create(newTestResponse(2, 60, 1)).Error)

	avg, err := repo.Average(ctx, "age", &entity.SurveyFilter{OrganizationID: uintPtr(1)})
	require.NoError(t, err)
	require.NotNil(t, avg)
	assert.InDelta(t, 35.0, *avg, 0.001)

	// No matching rows: the store reports a NULL aggregate
	avg, err = repo.Average(ctx, "age", &entity.SurveyFilter{OrganizationID: uintPtr(99)})
	require.NoError(t, err)
	assert.Nil(t, avg)
}

func TestCountByGender(t *testing.T) {
	db, repo := setupSurveyTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Create(newTestResponse(1, 30, 1)).Error)
	require.NoError(t, db.Create(newTestResponse(1, 31, 1)).Error)
	require.NoError(t, db.Create(newTestResponse(1, 32, 2)).Error)
	require.NoError(t, db.Create(newTestResponse(2, 33, 3)).Error)

	distribution, err := repo.CountByGender(ctx, &entity.SurveyFilter{OrganizationID: uintPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 2, 2: 1}, distribution)

	// Absent gender ids contribute no zero-count entries
	_, present := distribution[3]
	assert.False(t, present)
}
