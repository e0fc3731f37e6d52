// Package http holds the HTTP plumbing shared by the article API: health
// checks, metrics, access logging, panic recovery and rate limiting.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"article-filter/internal/handler/http/respond"
	"article-filter/internal/observability/metrics"
)

// BreakerState is implemented by the store circuit breaker.
type BreakerState interface {
	IsOpen() bool
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"` // "ok" or "unavailable"
	// Database carries the ping error summary when unavailable.
	Database string `json:"database,omitempty"`
	// StoreCircuit is "open" while the store breaker rejects requests.
	StoreCircuit string `json:"store_circuit,omitempty"`
}

// HealthHandler pings the database and reports pool statistics as metrics.
type HealthHandler struct {
	DB      *sql.DB
	Breaker BreakerState
	Timeout time.Duration
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	resp := HealthResponse{Status: "ok"}
	if h.Breaker != nil && h.Breaker.IsOpen() {
		resp.StoreCircuit = "open"
	}

	if h.DB == nil {
		resp.Status = "unavailable"
		resp.Database = "not configured"
		respond.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	if err := h.DB.PingContext(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Database = "unreachable"
		slog.Default().Warn("database health check failed",
			slog.String("error", respond.SanitizeError(err)))
		respond.JSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	stats := h.DB.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)

	respond.JSON(w, http.StatusOK, resp)
}
