package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"workplace-survey-api/internal/domain/entity"
	domainRepo "workplace-survey-api/internal/domain/repository"

	"gorm.io/gorm"
)

type surveyResponseRepository struct {
	db *gorm.DB
}

func NewSurveyResponseRepository(db *gorm.DB) domainRepo.SurveyResponseRepository {
	return &surveyResponseRepository{db: db}
}

func (r *surveyResponseRepository) Create(ctx context.Context, response *entity.SurveyResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *surveyResponseRepository) FindByID(ctx context.Context, id uint) (*entity.SurveyResponse, error) {
	var response entity.SurveyResponse
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&response).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &response, nil
}

// FindPage returns one page of matching responses plus the total match count.
// Both queries go through applyFilter so the page and the count always agree.
// Ordering is newest first; id breaks ties so the order is stable.
func (r *surveyResponseRepository) FindPage(ctx context.Context, filter *entity.SurveyFilter, limit, offset int) ([]entity.SurveyResponse, int64, error) {
	var responses []entity.SurveyResponse
	var total int64

	countQuery := applyFilter(r.db.WithContext(ctx).Model(&entity.SurveyResponse{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	pageQuery := applyFilter(r.db.WithContext(ctx), filter)
	err := pageQuery.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&responses).Error
	if err != nil {
		return nil, 0, err
	}

	return responses, total, nil
}

func (r *surveyResponseRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.SurveyResponse{})
	return result.RowsAffected, result.Error
}

func (r *surveyResponseRepository) Count(ctx context.Context, filter *entity.SurveyFilter) (int64, error) {
	var total int64
	query := applyFilter(r.db.WithContext(ctx).Model(&entity.SurveyResponse{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Average computes AVG(column) over the filtered set. Returns nil when the
// store reports a NULL aggregate (no matching rows). The column name comes
// from package-internal constants, never from request input.
func (r *surveyResponseRepository) Average(ctx context.Context, column string, filter *entity.SurveyFilter) (*float64, error) {
	var avg sql.NullFloat64
	query := applyFilter(r.db.WithContext(ctx).Model(&entity.SurveyResponse{}), filter)
	err := query.Select(fmt.Sprintf("AVG(%s)", column)).Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *surveyResponseRepository) CountByGender(ctx context.Context, filter *entity.SurveyFilter) (map[int]int64, error) {
	type genderCount struct {
		GenderID int
		Total    int64
	}

	var rows []genderCount
	query := applyFilter(r.db.WithContext(ctx).Model(&entity.SurveyResponse{}), filter)
	err := query.
		Select("gender_id, COUNT(id) AS total").
		Group("gender_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	distribution := make(map[int]int64, len(rows))
	for _, row := range rows {
		distribution[row.GenderID] = row.Total
	}
	return distribution, nil
}

// applyFilter maps the closed filter struct onto AND-combined predicates.
func applyFilter(query *gorm.DB, filter *entity.SurveyFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.MinAge != nil {
		query = query.Where("age >= ?", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		query = query.Where("age <= ?", *filter.MaxAge)
	}
	return query
}
