// Package feedserver implements a local stand-in for the remote product
// feed: a small HTTP server returning the full fixture catalog as a flat
// JSON array, for development and demos without network access. Pagination
// stays client-side, so the endpoint takes no query parameters.
package feedserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/storewalk/storewalk/internal/catalog"
)

// Server timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server serves a fixed product dataset over HTTP.
type Server struct {
	addr     string
	logger   zerolog.Logger
	products []catalog.Product
}

// New creates a feed server on addr serving products. A nil products slice
// serves the built-in fixture catalog.
func New(addr string, logger zerolog.Logger, products []catalog.Product) *Server {
	if products == nil {
		products = FixtureProducts()
	}
	return &Server{
		addr:     addr,
		logger:   logger,
		products: products,
	}
}

// Router builds the chi router with CORS (mobile and browser dev clients
// fetch cross-origin), request-ID tagging, and request logging.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(s.requestLogger)

	r.Get("/products", s.handleProducts)
	r.Get("/healthz", s.handleHealth)

	return r
}

// requestLogger tags every request with a UUID and logs it on completion.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}

// handleProducts returns the entire dataset as a flat JSON array.
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.products); err != nil {
		s.logger.Warn().Err(err).Msg("writing products response")
	}
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", s.addr).Int("products", len(s.products)).Msg("feed server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
