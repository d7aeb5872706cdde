package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleka07/movie-api/pkg/model"
	"github.com/aleka07/movie-api/pkg/persistence"
)

const defaultMoviesBody = `{"movies":[{"id":"123","title":"Top Gun: Maverick"},{"id":"456","title":"Sonic the Hedgehog"},{"id":"789","title":"A Quiet Place"}]}`

type failingStore struct{}

func (failingStore) ListAllMovies(context.Context) ([]model.Movie, error) {
	return nil, errors.New("boom")
}

func (failingStore) Close() {}

func newTestAPI(t *testing.T) *API {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	return NewAPI(persistence.NewMemoryMovieStore(model.DefaultCatalog()), logger)
}

func TestListMovies(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	rr := httptest.NewRecorder()
	a.ListMovies(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, defaultMoviesBody, rr.Body.String())

	var body MoviesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.NotEmpty(t, body.Movies)
	for _, m := range body.Movies {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Title)
	}
}

func TestListMoviesStoreError(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	a := NewAPI(failingStore{}, logger)

	rr := httptest.NewRecorder()
	a.ListMovies(rr, httptest.NewRequest(http.MethodGet, "/movies", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Failed to retrieve movies"}`, rr.Body.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Failed to list movies", hook.LastEntry().Message)
}

func TestHealthCheckHandler(t *testing.T) {
	a := NewAPI(failingStore{}, nil)
	logger, _ := logtest.NewNullLogger()
	a.Logger = logger

	rr := httptest.NewRecorder()
	a.HealthCheckHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	// The probe must not depend on the store.
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, `{"status":"healthy"}`, rr.Body.String())
}

func TestWriteJSONUnencodable(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	rr := httptest.NewRecorder()

	writeJSON(rr, logger, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Failed to encode response", hook.LastEntry().Message)
}

type panicStore struct{}

func (panicStore) ListAllMovies(context.Context) ([]model.Movie, error) {
	panic("store exploded")
}

func (panicStore) Close() {}
