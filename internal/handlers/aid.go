package handlers

import (
	"net/http"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"go.uber.org/zap"
)

// AidHandler handles aid request endpoints
type AidHandler struct {
	svc    *services.AidService
	logger *zap.SugaredLogger
}

// NewAidHandler creates a new aid handler
func NewAidHandler(svc *services.AidService, logger *zap.SugaredLogger) *AidHandler {
	return &AidHandler{svc: svc, logger: logger}
}

// Approved handles GET /api/v1/aid-requests/approved?type=&district=&divisional_secretariat=&page=
func (h *AidHandler) Approved(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.Approved(r.Context(), models.AidFilter{
		Type:                  q.Get("type"),
		District:              q.Get("district"),
		DivisionalSecretariat: q.Get("divisional_secretariat"),
		Page:                  queryInt(r, "page", 1),
	})
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to fetch aid requests")
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// Ongoing handles GET /api/v1/aid-requests/ongoing
func (h *AidHandler) Ongoing(w http.ResponseWriter, r *http.Request) {
	district := claims(r).District
	if district == "" {
		district = r.URL.Query().Get("district")
	}

	requests, err := h.svc.Ongoing(r.Context(), district)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to fetch ongoing aid requests")
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// Resolve handles POST /api/v1/aid-requests/{id}/resolve
func (h *AidHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid aid request id")
		return
	}

	c := claims(r)
	if err := h.svc.Resolve(r.Context(), id, c.Actor(), c.District); err != nil {
		respondServiceError(w, h.logger, err, "Failed to resolve aid request")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"aid_id": id, "status": "resolved"})
}
