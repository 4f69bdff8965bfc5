package handlers

import (
	"net/http"

	"github.com/pramindu123/hazardx-gateway/internal/services"
	"go.uber.org/zap"
)

// DashboardHandler serves the home page statistics and map
type DashboardHandler struct {
	svc    *services.DashboardService
	logger *zap.SugaredLogger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc *services.DashboardService, logger *zap.SugaredLogger) *DashboardHandler {
	return &DashboardHandler{svc: svc, logger: logger}
}

// Get handles GET /api/v1/dashboard
// A stale snapshot is still served; the payload carries stale=true.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Snapshot(r.Context())
	if err != nil && !snap.Stale {
		respondServiceError(w, h.logger, err, "Failed to load dashboard")
		return
	}
	if err != nil {
		h.logger.Warnw("Serving stale dashboard", "updated_at", snap.UpdatedAt, "error", err)
	}
	respondJSON(w, http.StatusOK, snap)
}
