package handler

import (
	"context"
	"net/http"
	"time"
)

// StoragePinger checks durable-storage connectivity.
type StoragePinger func(ctx context.Context) error

// HealthHandler handles health check requests
type HealthHandler struct {
	ping StoragePinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(ping StoragePinger) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string            `json:"status"`
	Uptime string            `json:"uptime,omitempty"`
	Checks map[string]string `json:"checks,omitempty"`
}

var startTime = time.Now()

// GetHealth handles GET /health
// Basic liveness check - returns 200 OK if the service is running
func GetHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(startTime).String(),
	})
}

// GetReadiness handles GET /health/ready
// Includes durable-storage connectivity. The ledger itself keeps working from
// memory when storage is down, so a failed check reports degraded rather than
// dead.
func (h *HealthHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{"storage": "healthy"}
	status := "ok"
	httpStatus := http.StatusOK

	if h.ping != nil {
		if err := h.ping(ctx); err != nil {
			checks["storage"] = "unhealthy: " + err.Error()
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, httpStatus, HealthResponse{
		Status: status,
		Uptime: time.Since(startTime).String(),
		Checks: checks,
	})
}
