// cmd/apiserver/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aleka07/movie-api/pkg/api"
	"github.com/aleka07/movie-api/pkg/config"
	"github.com/aleka07/movie-api/pkg/persistence"
)

// seedTimeout bounds how long startup may spend reading the catalogue.
const seedTimeout = 10 * time.Second

// buildHandler seeds the catalogue and returns the routed API.
func buildHandler(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (http.Handler, persistence.MovieStore, error) {
	// --- Seed Catalog ---
	seedCtx, cancel := context.WithTimeout(ctx, seedTimeout) // Postgres seeding must not hang startup
	defer cancel()

	catalog, source, err := persistence.SeedCatalog(seedCtx, persistence.SeedOptions{
		Path:        cfg.Catalog.Path,
		DatabaseDSN: cfg.Catalog.DatabaseDSN,
		Table:       cfg.Catalog.Table,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to seed movie catalog from %s: %w", source, err)
	}
	logger.WithFields(logrus.Fields{
		"source": source,
		"movies": catalog.Len(),
	}).Info("Movie catalog loaded")

	// --- Create Dependencies ---
	store := persistence.NewMemoryMovieStore(catalog) // Frozen from here on
	a := api.NewAPI(store, logger)
	router := api.NewRouter(a, api.RouterOptions{
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout(),
	})
	return router, store, nil
}

// run starts the API on the configured address and blocks until ctx is done.
func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger) error {
	handler, store, err := buildHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	// --- Configure and Start Server ---
	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr(), err)
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout(), // Transport-level limits, separate from the per-request timeout
		WriteTimeout: cfg.Server.WriteTimeout(),
		IdleTimeout:  cfg.Server.IdleTimeout(),
	}
	return serve(ctx, server, ln, cfg.Server.ShutdownTimeout(), logger)
}

// serve runs server on ln until ctx is cancelled, then shuts it down
// gracefully, forcing Close if the deadline passes.
func serve(ctx context.Context, server *http.Server, ln net.Listener, shutdownTimeout time.Duration, logger logrus.FieldLogger) error {
	serverErrors := make(chan error, 1) // Buffered so the goroutine never blocks after shutdown

	go func() {
		logger.WithField("addr", ln.Addr().String()).Info("Server listening")
		serverErrors <- server.Serve(ln)
	}()

	// Block until either a server error or cancellation (SIGINT/SIGTERM in production)
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			logger.Info("Server stopped")
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received, starting graceful shutdown")
	}

	// --- Graceful Shutdown ---
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful server shutdown failed")
		// Force close if shutdown fails
		if closeErr := server.Close(); closeErr != nil {
			logger.WithError(closeErr).Error("Server Close() failed")
		}
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}
