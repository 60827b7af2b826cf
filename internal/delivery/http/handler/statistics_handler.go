package handler

import (
	"net/http"
	"strconv"

	"workplace-survey-api/internal/usecase"
	"workplace-survey-api/pkg/response"
)

type StatisticsHandler struct {
	statisticsUsecase usecase.StatisticsUsecase
}

func NewStatisticsHandler(statisticsUsecase usecase.StatisticsUsecase) *StatisticsHandler {
	return &StatisticsHandler{
		statisticsUsecase: statisticsUsecase,
	}
}

func (h *StatisticsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	var organizationID *uint
	if raw := r.URL.Query().Get("organization_id"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.MalformedRequest(w, map[string]string{
				"organization_id": "organization_id must be a non-negative integer",
			})
			return
		}
		id := uint(v)
		organizationID = &id
	}

	stats, err := h.statisticsUsecase.BasicStatistics(r.Context(), organizationID)
	if err != nil {
		response.InternalServerError(w, "Failed to compute statistics")
		return
	}

	response.Success(w, http.StatusOK, "Statistics computed successfully", stats)
}
