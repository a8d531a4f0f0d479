package http

import (
	"log/slog"
	"net/http"
	"time"

	"resumen-backend/internal/handler/http/respond"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// NamedProvider is the part of a model provider the health endpoints report on.
type NamedProvider interface {
	Name() string
}

// HealthHandler reports the application health.
// The model provider is not called: a probe would spend paid tokens and the
// service has no state that can degrade between requests.
type HealthHandler struct {
	Version  string
	Provider NamedProvider
	Model    string
}

// ServeHTTP returns 200 OK when a model provider is configured,
// or 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	check := h.checkSummarizer()

	status := "healthy"
	statusCode := http.StatusOK
	if check.Status != "healthy" {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]CheckStatus{"summarizer": check},
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkSummarizer() CheckStatus {
	if h.Provider == nil {
		return CheckStatus{Status: "unhealthy", Message: "not configured"}
	}
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"provider": h.Provider.Name(),
			"model":    h.Model,
		},
	}
}

// ReadyHandler handles readiness probe requests.
type ReadyHandler struct {
	Provider NamedProvider
}

// ServeHTTP returns 200 OK once a model provider is configured.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.Provider == nil {
		http.Error(w, "summarizer not configured", http.StatusServiceUnavailable)
		return
	}
	writePlain(w, "ready")
}

// LiveHandler handles liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP always returns 200 OK while the process can respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	writePlain(w, "alive")
}

func writePlain(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(body)); err != nil {
		slog.Default().Warn("failed to write probe response", slog.Any("error", err))
	}
}

// RegisterOps registers the operational endpoints: /health, /ready, /live,
// /metrics and the Swagger UI under /swagger/. The swagger document itself is
// registered by importing the docs package.
func RegisterOps(mux *http.ServeMux, health *HealthHandler) {
	mux.Handle("GET /health", health)
	mux.Handle("GET /ready", &ReadyHandler{Provider: health.Provider})
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}
