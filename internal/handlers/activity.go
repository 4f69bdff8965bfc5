package handlers

import (
	"net/http"

	"github.com/pramindu123/hazardx-gateway/internal/services"
	"go.uber.org/zap"
)

const (
	recentActivityLimit = 100
	reportActivityLimit = 50
)

// ActivityHandler handles activity log endpoints
type ActivityHandler struct {
	svc    *services.ActivityLogService
	logger *zap.SugaredLogger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *services.ActivityLogService, logger *zap.SugaredLogger) *ActivityHandler {
	return &ActivityHandler{svc: svc, logger: logger}
}

// ByReport handles GET /api/v1/activity/reports/{id}
func (h *ActivityHandler) ByReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}

	logs, err := h.svc.FetchByReport(r.Context(), id, reportActivityLimit)
	if err != nil {
		h.logger.Errorw("Failed to fetch activity", "report_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch logs")
		return
	}

	respondJSON(w, http.StatusOK, logs)
}

// Recent handles GET /api/v1/activity/recent
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	logs, err := h.svc.FetchRecent(r.Context(), recentActivityLimit)
	if err != nil {
		h.logger.Errorw("Failed to fetch recent activity", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch recent activity")
		return
	}

	respondJSON(w, http.StatusOK, logs)
}
