package handlers

import (
	"net/http"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"go.uber.org/zap"
)

// ContributionHandler handles volunteer contributions
type ContributionHandler struct {
	svc    *services.ContributionService
	logger *zap.SugaredLogger
}

// NewContributionHandler creates a new contribution handler
func NewContributionHandler(svc *services.ContributionService, logger *zap.SugaredLogger) *ContributionHandler {
	return &ContributionHandler{svc: svc, logger: logger}
}

// Submit handles POST /api/v1/contributions
func (h *ContributionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContributionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Submit(r.Context(), claims(r).VolunteerID(), req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to submit contribution")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Contribution submitted successfully!",
		"contribution": c,
	})
}

// Pending handles GET /api/v1/contributions/pending
func (h *ContributionHandler) Pending(w http.ResponseWriter, r *http.Request) {
	district := claims(r).District
	if district == "" {
		district = r.URL.Query().Get("district")
	}

	list, err := h.svc.Pending(r.Context(), district)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to fetch contributions")
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// Approve handles POST /api/v1/contributions/{id}/approve
func (h *ContributionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, models.ContributionApproved)
}

// Reject handles POST /api/v1/contributions/{id}/reject
func (h *ContributionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, models.ContributionRejected)
}

func (h *ContributionHandler) review(w http.ResponseWriter, r *http.Request, status string) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid contribution id")
		return
	}

	c := claims(r)
	if err := h.svc.Review(r.Context(), id, status, c.Actor(), c.District); err != nil {
		respondServiceError(w, h.logger, err, "Failed to update contribution")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"contribution_id": id, "status": status})
}
