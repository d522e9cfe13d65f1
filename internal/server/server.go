// Package server exposes the dashboard pipeline over HTTP.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/spending-dashboard/internal/domain"
	"github.com/tirasundara/spending-dashboard/internal/report"
	"github.com/tirasundara/spending-dashboard/internal/repository"
	"github.com/tirasundara/spending-dashboard/internal/service"
)

const (
	requestIDHeader       = "X-Request-ID"
	defaultMaxUploadBytes = 10 << 20
)

var errEmptyBody = errors.New("empty request body")

// Options configures a Server
type Options struct {
	InputFile string
	Format    string
	Pretty    bool
	CacheTTL  time.Duration

	// MaxUploadBytes limits POST bodies; zero means 10 MiB
	MaxUploadBytes int64
}

// Server serves dashboard reports. Each request runs its own pipeline; only the
// formatted bytes are shared through the cache.
type Server struct {
	svc    *service.DashboardService
	opts   Options
	cache  *cache.Cache
	log    logrus.FieldLogger
	router *mux.Router
}

// New creates a new Server. A zero CacheTTL disables caching.
func New(svc *service.DashboardService, opts Options, log logrus.FieldLogger) *Server {
	if opts.Format == "" {
		opts.Format = report.FormatJSON
	}

	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = defaultMaxUploadBytes
	}

	s := &Server{
		svc:    svc,
		opts:   opts,
		log:    log,
		router: mux.NewRouter(),
	}

	if opts.CacheTTL > 0 {
		s.cache = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	s.router.Use(s.requestID)
	s.router.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	s.router.HandleFunc("/api/dashboard", s.dashboard).Methods(http.MethodGet)
	s.router.HandleFunc("/api/reports", s.createReport).Methods(http.MethodPost)

	return s
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("Starting server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Info("Shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(requestIDHeader, id)

		start := time.Now()
		next.ServeHTTP(w, r)

		s.log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"duration":   time.Since(start).String(),
		}).Debug("handled request")
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) dashboard(w http.ResponseWriter, r *http.Request) {
	body, err := os.ReadFile(s.opts.InputFile)
	if err != nil {
		s.fail(w, r, fmt.Errorf("reading input file: %w", err))
		return
	}

	s.render(w, r, s.opts.InputFile, body)
}

func (s *Server) createReport(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, fmt.Sprintf("reading request body: %v", err))
		return
	}

	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, http.StatusBadRequest, errEmptyBody.Error())
		return
	}

	s.render(w, r, "upload", body)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, body []byte) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = s.opts.Format
	}

	formatter, err := report.NewFormatter(format, s.opts.Pretty)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	key := cacheKey(format, body)
	if s.cache != nil {
		if cached, found := s.cache.Get(key); found {
			writeBody(w, formatter.ContentType(), cached.([]byte))
			return
		}
	}

	repo := repository.NewCSVRecordRepositoryFromReader(name, bytes.NewReader(body))
	result, _, err := s.svc.Generate(r.Context(), repo)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	output, err := formatter.Format(result)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	if s.cache != nil {
		s.cache.Set(key, output, cache.DefaultExpiration)
	}

	writeBody(w, formatter.ContentType(), output)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	entry := s.log.WithFields(logrus.Fields{
		"request_id": w.Header().Get(requestIDHeader),
		"path":       r.URL.Path,
		"status":     status,
	}).WithError(err)

	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Warn("request rejected")
	}

	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	var parseErr *csv.ParseError

	switch {
	case errors.Is(err, domain.ErrNoValidData), errors.Is(err, domain.ErrMissingColumn):
		return http.StatusUnprocessableEntity
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// cacheKey identifies a dataset by its content, so an edited file never hits a stale entry
func cacheKey(format string, body []byte) string {
	sum := sha256.Sum256(body)
	return format + ":" + hex.EncodeToString(sum[:])
}

func writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
