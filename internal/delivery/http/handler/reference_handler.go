package handler

import (
	"net/http"
	"strconv"

	"workplace-survey-api/internal/usecase"
	"workplace-survey-api/pkg/response"
)

type ReferenceHandler struct {
	referenceUsecase usecase.ReferenceUsecase
}

func NewReferenceHandler(referenceUsecase usecase.ReferenceUsecase) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUsecase: referenceUsecase,
	}
}

func (h *ReferenceHandler) ListStates(w http.ResponseWriter, r *http.Request) {
	states, err := h.referenceUsecase.ListStates(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list states")
		return
	}

	response.Success(w, http.StatusOK, "States retrieved successfully", states)
}

func (h *ReferenceHandler) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("state")
	stateID, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || stateID < 1 {
		response.MalformedRequest(w, map[string]string{
			"state": "state must be an integer greater than or equal to 1",
		})
		return
	}

	municipalities, err := h.referenceUsecase.ListMunicipalities(r.Context(), uint(stateID))
	if err != nil {
		response.InternalServerError(w, "Failed to list municipalities")
		return
	}

	response.Success(w, http.StatusOK, "Municipalities retrieved successfully", municipalities)
}

func (h *ReferenceHandler) ListOrganizationRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.referenceUsecase.ListOrganizationRoles(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list organization roles")
		return
	}

	response.Success(w, http.StatusOK, "Organization roles retrieved successfully", roles)
}
