// Package api serves the lots engine over HTTP: a client uploads a trade export and
// gets its lots, summary or detected column mapping back.
//
//	GET  /healthz
//	POST /api/lots      lots as JSON, or contributor rows as CSV with format=csv
//	POST /api/summary   aggregate figures only
//	POST /api/mapping   detected mapping and a preview of the first rows
//
// The upload is either a multipart form with a "file" field, or the raw request body
// named by the "filename" query parameter. Query (or form) parameters buy and sell
// set the direction keywords, status filters the listed lots, and a parameter named
// after a role (date, direction, nominal, trn, cnc, pck) picks that column by header.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/etnz/fifo"
	"github.com/etnz/fifo/sheet"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// DefaultMaxUploadBytes bounds the size of an uploaded file.
const DefaultMaxUploadBytes = 32 << 20

// Config holds the server defaults; requests may override them.
type Config struct {
	Keywords       fifo.Keywords
	Profile        *sheet.Profile // optional
	MaxUploadBytes int64
}

// Server handles the API requests.
type Server struct {
	cfg Config
}

// NewServer returns a server with cfg, completing missing defaults.
func NewServer(cfg Config) *Server {
	if cfg.Keywords == (fifo.Keywords{}) {
		cfg.Keywords = fifo.DefaultKeywords
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = DefaultMaxUploadBytes
	}
	return &Server{cfg: cfg}
}

// Router returns the HTTP handler of s.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not_found", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" is not allowed on "+r.URL.Path)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/lots", s.handleLots)
		r.Post("/summary", s.handleSummary)
		r.Post("/mapping", s.handleMapping)
	})
	return r
}

// requestLogger logs every request once served.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		slog.Info("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// ListenAndServe serves s on addr until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("starting lots API", "addr", addr)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
