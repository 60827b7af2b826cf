package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"workplace-survey-api/internal/converter"
	"workplace-survey-api/internal/delivery/dto"
	"workplace-survey-api/internal/domain/entity"
	"workplace-survey-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrSurveyResponseNotFound = errors.New("survey response not found")
	ErrNameEmpty              = errors.New("first and last name cannot be empty")
	ErrWorkingYearsExceeded   = errors.New("years at the organization cannot exceed years since working age")
)

// workingAge is the age from which organization tenure can start counting.
const workingAge = 18

type SurveyResponseUsecase interface {
	Create(ctx context.Context, req *dto.CreateSurveyResponseRequest) (*dto.SurveyResponseData, error)
	GetByID(ctx context.Context, id uint) (*dto.SurveyResponseData, error)
	List(ctx context.Context, page, pageSize int, filter *entity.SurveyFilter) (*dto.SurveyListResponse, error)
	Delete(ctx context.Context, id uint) error
}

type surveyResponseUsecase struct {
	log        *logrus.Logger
	surveyRepo repository.SurveyResponseRepository
}

func NewSurveyResponseUsecase(log *logrus.Logger, surveyRepo repository.SurveyResponseRepository) SurveyResponseUsecase {
	return &surveyResponseUsecase{
		log:        log,
		surveyRepo: surveyRepo,
	}
}

// Create validates the cross-field business rule, normalizes names and
// persists the response. Field ranges were already checked at the boundary.
func (u *surveyResponseUsecase) Create(ctx context.Context, req *dto.CreateSurveyResponseRequest) (*dto.SurveyResponseData, error) {
	lastName := NormalizeName(req.LastName)
	firstName := NormalizeName(req.FirstName)
	if lastName == "" || firstName == "" {
		return nil, ErrNameEmpty
	}

	if *req.YearsAtOrganization > *req.Age-workingAge {
		return nil, ErrWorkingYearsExceeded
	}

	response := converter.CreateRequestToSurveyResponse(req)
	response.LastName = lastName
	response.FirstName = firstName

	if err := u.surveyRepo.Create(ctx, response); err != nil {
		u.log.Warnf("Failed to create survey response: %+v", err)
		return nil, err
	}

	return converter.SurveyResponseToData(response), nil
}

func (u *surveyResponseUsecase) GetByID(ctx context.Context, id uint) (*dto.SurveyResponseData, error) {
	response, err := u.surveyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find survey response: %+v", err)
		return nil, err
	}
	if response == nil {
		return nil, ErrSurveyResponseNotFound
	}

	return converter.SurveyResponseToData(response), nil
}

// List returns one page of matching responses, newest first. Pages past the
// end of the data come back empty with the totals still filled in.
func (u *surveyResponseUsecase) List(ctx context.Context, page, pageSize int, filter *entity.SurveyFilter) (*dto.SurveyListResponse, error) {
	// A page number large enough to overflow the offset cannot address any
	// stored row, so answer with an empty page instead of a wrapped offset.
	if page > 1 && page-1 > math.MaxInt/pageSize {
		total, err := u.surveyRepo.Count(ctx, filter)
		if err != nil {
			u.log.Warnf("Failed to count survey responses: %+v", err)
			return nil, err
		}
		return &dto.SurveyListResponse{
			Responses:  []dto.SurveyResponseData{},
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
		}, nil
	}

	offset := (page - 1) * pageSize

	responses, total, err := u.surveyRepo.FindPage(ctx, filter, pageSize, offset)
	if err != nil {
		u.log.Warnf("Failed to list survey responses: %+v", err)
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	return &dto.SurveyListResponse{
		Responses:  converter.SurveyResponsesToData(responses),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (u *surveyResponseUsecase) Delete(ctx context.Context, id uint) error {
	affected, err := u.surveyRepo.DeleteByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete survey response: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSurveyResponseNotFound
	}
	return nil
}

// NormalizeName trims surrounding whitespace and title-cases the result.
// Applying it twice yields the same value.
func NormalizeName(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}
