package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/matzehuels/dockyard/pkg/errors"
	"github.com/matzehuels/dockyard/pkg/store"
)

// maxLayoutBytes bounds uploaded layout documents.
const maxLayoutBytes = 1 << 20

// Server serves named layouts over HTTP.
type Server struct {
	store  store.Store
	logger *log.Logger
}

// New creates a layout server backed by st. A nil logger falls back to
// the default logger.
func New(st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewNullStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{store: st, logger: logger}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1/layouts", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{name}", s.handleGet)
		r.Put("/{name}", s.handlePut)
		r.Delete("/{name}", s.handleDelete)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts it
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("serving layouts", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// ===== Response Helpers =====

// errorEnvelope is the JSON shape of all error responses.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status via its error code and
// writes the JSON envelope.
func writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorEnvelope{
		Error: errorBody{Code: code, Message: apperrors.UserMessage(err)},
	})
}

func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidWidgetID,
		apperrors.ErrCodeInvalidLayoutName,
		apperrors.ErrCodeCorruptLayout:
		return http.StatusBadRequest
	case apperrors.ErrCodeUnsupportedVersion:
		return http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound,
		apperrors.ErrCodeWidgetNotFound,
		apperrors.ErrCodeLayoutNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
