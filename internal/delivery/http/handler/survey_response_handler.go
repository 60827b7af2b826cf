package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"workplace-survey-api/internal/delivery/dto"
	"workplace-survey-api/internal/domain/entity"
	"workplace-survey-api/internal/usecase"
	"workplace-survey-api/pkg/response"
	"workplace-survey-api/pkg/validator"

	"github.com/gorilla/mux"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100

	// Age filter bounds: tenure can only start at working age, and 100 is
	// the highest age a response can carry.
	minFilterAge = 18
	maxFilterAge = 100
)

type SurveyResponseHandler struct {
	surveyUsecase usecase.SurveyResponseUsecase
	validator     *validator.CustomValidator
}

func NewSurveyResponseHandler(surveyUsecase usecase.SurveyResponseUsecase, validator *validator.CustomValidator) *SurveyResponseHandler {
	return &SurveyResponseHandler{
		surveyUsecase: surveyUsecase,
		validator:     validator,
	}
}

func (h *SurveyResponseHandler) CreateSurveyResponse(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSurveyResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.MalformedRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.surveyUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNameEmpty, usecase.ErrWorkingYearsExceeded:
			response.RuleViolation(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create survey response")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Survey response created successfully", created)
}

func (h *SurveyResponseHandler) GetSurveyResponse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid survey response ID", nil)
		return
	}

	data, err := h.surveyUsecase.GetByID(r.Context(), uint(id))
	if err != nil {
		if err == usecase.ErrSurveyResponseNotFound {
			response.NotFound(w, "Survey response not found")
			return
		}
		response.InternalServerError(w, "Failed to get survey response")
		return
	}

	response.Success(w, http.StatusOK, "Survey response retrieved successfully", data)
}

func (h *SurveyResponseHandler) ListSurveyResponses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	errs := make(map[string]string)

	page := defaultPage
	if raw := query.Get("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			errs["page"] = "page must be an integer greater than or equal to 1"
		} else {
			page = v
		}
	}

	pageSize := defaultPageSize
	if raw := query.Get("page_size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > maxPageSize {
			errs["page_size"] = "page_size must be an integer between 1 and 100"
		} else {
			pageSize = v
		}
	}

	filter := &entity.SurveyFilter{}
	if raw := query.Get("organization_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			errs["organization_id"] = "organization_id must be a non-negative integer"
		} else {
			id := uint(v)
			filter.OrganizationID = &id
		}
	}
	if raw := query.Get("min_age"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < minFilterAge {
			errs["min_age"] = "min_age must be an integer greater than or equal to 18"
		} else {
			filter.MinAge = &v
		}
	}
	if raw := query.Get("max_age"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v > maxFilterAge {
			errs["max_age"] = "max_age must be an integer less than or equal to 100"
		} else {
			filter.MaxAge = &v
		}
	}

	if len(errs) > 0 {
		response.MalformedRequest(w, errs)
		return
	}

	list, err := h.surveyUsecase.List(r.Context(), page, pageSize, filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list survey responses")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Survey responses retrieved successfully", list.Responses, &response.Meta{
		Page:       list.Page,
		PageSize:   list.PageSize,
		Total:      list.Total,
		TotalPages: list.TotalPages,
	})
}

func (h *SurveyResponseHandler) DeleteSurveyResponse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid survey response ID", nil)
		return
	}

	if err := h.surveyUsecase.Delete(r.Context(), uint(id)); err != nil {
		if err == usecase.ErrSurveyResponseNotFound {
			response.NotFound(w, "Survey response not found")
			return
		}
		response.InternalServerError(w, "Failed to delete survey response")
		return
	}

	response.Success(w, http.StatusOK, "Survey response deleted successfully", nil)
}
