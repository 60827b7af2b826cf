package http

import (
	"net/http"

	"workplace-survey-api/internal/delivery/http/handler"
	"workplace-survey-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	surveyHandler       *handler.SurveyResponseHandler
	statisticsHandler   *handler.StatisticsHandler
	referenceHandler    *handler.ReferenceHandler
	corsMiddleware      *middleware.CORSMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

func NewRouter(
	surveyHandler *handler.SurveyResponseHandler,
	statisticsHandler *handler.StatisticsHandler,
	referenceHandler *handler.ReferenceHandler,
	corsMiddleware *middleware.CORSMiddleware,
	requestIDMiddleware *middleware.RequestIDMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		surveyHandler:       surveyHandler,
		statisticsHandler:   statisticsHandler,
		referenceHandler:    referenceHandler,
		corsMiddleware:      corsMiddleware,
		requestIDMiddleware: requestIDMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Survey responses
	surveys := api.PathPrefix("/surveys").Subrouter()
	surveys.HandleFunc("/responses", r.surveyHandler.CreateSurveyResponse).Methods(http.MethodPost)
	surveys.HandleFunc("/responses", r.surveyHandler.ListSurveyResponses).Methods(http.MethodGet)
	surveys.HandleFunc("/responses/{id}", r.surveyHandler.GetSurveyResponse).Methods(http.MethodGet)
	surveys.HandleFunc("/responses/{id}", r.surveyHandler.DeleteSurveyResponse).Methods(http.MethodDelete)

	// Aggregate statistics
	surveys.HandleFunc("/statistics", r.statisticsHandler.GetStatistics).Methods(http.MethodGet)

	// Reference catalogs for form selects
	catalog := surveys.PathPrefix("/catalog").Subrouter()
	catalog.HandleFunc("/states", r.referenceHandler.ListStates).Methods(http.MethodGet)
	catalog.HandleFunc("/municipalities", r.referenceHandler.ListMunicipalities).Methods(http.MethodGet)
	catalog.HandleFunc("/roles", r.referenceHandler.ListOrganizationRoles).Methods(http.MethodGet)

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
