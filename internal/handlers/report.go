package handlers

import (
	"net/http"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"go.uber.org/zap"
)

// ReportHandler handles symptom report endpoints
type ReportHandler struct {
	svc    *services.ReportService
	logger *zap.SugaredLogger
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc *services.ReportService, logger *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{svc: svc, logger: logger}
}

// Submit handles POST /api/v1/reports
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	report, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Submission failed")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Symptom report submitted successfully",
		"report":  report,
	})
}

// Pending handles GET /api/v1/reports/pending
// Lists pending reports of the officer's district.
func (h *ReportHandler) Pending(w http.ResponseWriter, r *http.Request) {
	district := claims(r).District
	if district == "" {
		district = r.URL.Query().Get("district")
	}

	reports, err := h.svc.Pending(r.Context(), district)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to fetch reports")
		return
	}
	respondJSON(w, http.StatusOK, reports)
}

// UpdateStatus handles POST /api/v1/reports/{id}/status
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid report id")
		return
	}
	var req models.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c := claims(r)
	if err := h.svc.UpdateStatus(r.Context(), id, req, c.Actor(), c.District); err != nil {
		respondServiceError(w, h.logger, err, "Failed to update report status")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"report_id": id, "status": req.Status})
}
