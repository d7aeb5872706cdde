// pkg/api/router.go
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// AllowedMethods is what every public route answers to.
const AllowedMethods = "GET, HEAD, OPTIONS"

// RouterOptions tunes the middleware chain.
type RouterOptions struct {
	Logger         logrus.FieldLogger
	RequestTimeout time.Duration // zero or negative disables the per-request timeout
}

// NewRouter wires the middleware chain and the two public routes.
// HEAD is served by the GET handler and a bare OPTIONS gets 200 with an
// Allow header. Unknown paths get chi's 404 and other methods its 405.
func NewRouter(a *API, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = a.Logger
	}

	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger)) // Logs after Recoverer so panics show up as 500
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"}, // Open policy, any origin may read the catalog
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middleware.GetHead) // HEAD falls through to the GET route

	// --- Routes ---
	r.Get("/movies", a.ListMovies)
	r.Options("/movies", allowHandler)

	r.Get("/health", a.HealthCheckHandler)
	r.Options("/health", allowHandler)

	return r
}

// allowHandler answers a non-preflight OPTIONS request. Preflights never
// reach it; the CORS middleware replies to those itself.
func allowHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", AllowedMethods)
	w.WriteHeader(http.StatusOK)
}
