// pkg/api/handlers.go
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/aleka07/movie-api/pkg/model"
	"github.com/aleka07/movie-api/pkg/persistence"
)

// HealthyStatus is the only status the liveness probe reports.
const HealthyStatus = "healthy"

// MoviesResponse is the body of GET /movies.
type MoviesResponse struct {
	Movies []model.Movie `json:"movies"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// API holds the handler dependencies.
type API struct {
	MovieStore persistence.MovieStore
	Logger     logrus.FieldLogger
}

// NewAPI creates the handler set around a movie store.
func NewAPI(store persistence.MovieStore, logger logrus.FieldLogger) *API {
	return &API{
		MovieStore: store,
		Logger:     logger,
	}
}

// --- Movie Handlers ---

// ListMovies handles GET /movies.
func (a *API) ListMovies(w http.ResponseWriter, r *http.Request) {
	log := a.Logger.WithField("request_id", middleware.GetReqID(r.Context()))

	movies, err := a.MovieStore.ListAllMovies(r.Context()) // Memory store never fails, other stores might
	if err != nil {
		log.WithError(err).Error("Failed to list movies")
		writeError(w, log, http.StatusInternalServerError, "Failed to retrieve movies")
		return
	}

	writeJSON(w, log, http.StatusOK, MoviesResponse{Movies: movies})
}

// --- Health Check Handler ---

// HealthCheckHandler handles GET /health. It reports liveness only and never
// consults the store.
func (a *API) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, a.Logger, http.StatusOK, HealthResponse{Status: HealthyStatus})
}
