package repository

import (
	"context"

	"workplace-survey-api/internal/domain/entity"
)

type SurveyResponseRepository interface {
	Create(ctx context.Context, response *entity.SurveyResponse) error
	FindByID(ctx context.Context, id uint) (*entity.SurveyResponse, error)
	FindPage(ctx context.Context, filter *entity.SurveyFilter, limit, offset int) ([]entity.SurveyResponse, int64, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
	Count(ctx context.Context, filter *entity.SurveyFilter) (int64, error)
	Average(ctx context.Context, column string, filter *entity.SurveyFilter) (*float64, error)
	CountByGender(ctx context.Context, filter *entity.SurveyFilter) (map[int]int64, error)
}
