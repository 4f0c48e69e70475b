package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/diegoclair/duty-roster/internal/domain/contract"
	"github.com/diegoclair/duty-roster/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HTTPHandler serves the admin REST API.
type HTTPHandler struct {
	roster  contract.RosterService
	leave   contract.LeaveService
	person  contract.PersonService
	health  HealthChecker
	metrics http.Handler
	logger  *slog.Logger
}

// NewHTTPHandler builds the REST handler. health and metrics may be nil.
func NewHTTPHandler(rosterService contract.RosterService, leaveService contract.LeaveService, personService contract.PersonService,
	health HealthChecker, metrics http.Handler, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTPHandler{
		roster:  rosterService,
		leave:   leaveService,
		person:  personService,
		health:  health,
		metrics: metrics,
		logger:  logger.With("component", "http_handler"),
	}
}

// Routes mounts the REST API, the metrics endpoint and, when given, the Slack slash command endpoint.
func (h *HTTPHandler) Routes(slackHandler *SlackHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(h.logger))

	if slackHandler != nil {
		r.Post("/slack/commands", slackHandler.HandleSlashCommand)
	}
	if h.metrics != nil {
		r.Handle("/metrics", h.metrics)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Route("/persons", func(r chi.Router) {
			r.Get("/", h.handleListPersons)
			r.Post("/", h.handleCreatePerson)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetPerson)
				r.Patch("/", h.handleUpdatePerson)
				r.Delete("/", h.handleDeletePerson)
			})
		})

		r.Route("/leave-requests", func(r chi.Router) {
			r.Get("/", h.handleListLeave)
			r.Post("/", h.handleCreateLeave)
			r.Get("/cleanup", h.handleCleanupStatus)
			r.Post("/cleanup", h.handleCleanup)
			r.Post("/purge", h.handlePurgeCanceled)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetLeave)
				r.Delete("/", h.handleDeleteLeave)
				r.Post("/approve", h.handleApproveLeave)
				r.Post("/reject", h.handleRejectLeave)
				r.Post("/cancel", h.handleCancelLeave)
				r.Post("/cancel-approved", h.handleCancelApprovedLeave)
			})
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/", h.handleListRoster)
			r.Post("/generate", h.handleGenerate)
			r.Post("/reconcile", h.handleReconcile)
			r.Put("/slots/{id}", h.handleUpdateSlot)
		})
	})

	return r
}

func (h *HTTPHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.health.Ping(ctx); err != nil {
			h.log(r).Error("health check failed", "error", err)
			respondError(w, reqID, http.StatusServiceUnavailable, &apiError{Code: "unavailable", Message: "database unreachable"})
			return
		}
	}

	respondOK(w, reqID, map[string]string{"status": "healthy"})
}

func (h *HTTPHandler) log(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context(), h.logger)
}

type ctxKey string

const ctxKeyRequestID ctxKey = "request_id"

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return id
	}
	return ""
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := "req_" + uuid.NewString()[:8]
		ctx := context.WithValue(r.Context(), ctxKeyRequestID, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware attaches a request-scoped logger and logs one line per request.
func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			reqLogger := logger.With("request_id", RequestIDFromContext(r.Context()))
			next.ServeHTTP(sw, r.WithContext(logging.ContextWithLogger(r.Context(), reqLogger)))

			reqLogger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
			)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
