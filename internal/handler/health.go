package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/studentbook/studentbook/internal/handler/dto"
)

// HealthChecker defines an interface for checking store health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages the health check endpoint.
type HealthHandler struct {
	db HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports whether the backing store is reachable.
// 200 while the database answers a ping, 503 otherwise.
//
// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.db == nil || h.db.Ping(ctx) != nil {
		writeJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{
			OK:       false,
			Database: "disconnected",
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.HealthResponse{
		OK:       true,
		Database: "connected",
	})
}
