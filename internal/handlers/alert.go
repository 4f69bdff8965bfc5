package handlers

import (
	"net/http"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"go.uber.org/zap"
)

// AlertHandler handles alert publication and listing
type AlertHandler struct {
	svc    *services.AlertService
	logger *zap.SugaredLogger
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(svc *services.AlertService, logger *zap.SugaredLogger) *AlertHandler {
	return &AlertHandler{svc: svc, logger: logger}
}

// Create handles POST /api/v1/alerts
// Responds 207 when the alert was created but the source report's
// status could not be updated.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.AlertRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Create(r.Context(), req, claims(r).Actor())
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to publish alert")
		return
	}

	status := http.StatusCreated
	if !result.StatusUpdated {
		status = http.StatusMultiStatus
	}
	respondJSON(w, status, result)
}

// List handles GET /api/v1/alerts
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	alerts, err := h.svc.List(r.Context(), models.AlertFilter{
		Type:       q.Get("type"),
		District:   q.Get("district"),
		GnDivision: q.Get("gnDivision"),
		Severity:   q.Get("severity"),
		Status:     q.Get("status"),
	})
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to fetch alerts")
		return
	}
	respondJSON(w, http.StatusOK, alerts)
}
