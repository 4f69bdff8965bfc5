package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"go.uber.org/zap"
)

// LocationHandler serves the region hierarchy and location resolution
type LocationHandler struct {
	svc    *services.LocationService
	logger *zap.SugaredLogger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(svc *services.LocationService, logger *zap.SugaredLogger) *LocationHandler {
	return &LocationHandler{svc: svc, logger: logger}
}

// Districts handles GET /api/v1/regions
func (h *LocationHandler) Districts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Districts())
}

// District handles GET /api/v1/regions/{district}
func (h *LocationHandler) District(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.District(chi.URLParam(r, "district"))
	if err != nil {
		respondError(w, http.StatusNotFound, "District not found")
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// Division handles GET /api/v1/regions/{district}/divisions/{division}
func (h *LocationHandler) Division(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Division(chi.URLParam(r, "district"), chi.URLParam(r, "division"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Divisional secretariat not found")
		return
	}
	respondJSON(w, http.StatusOK, info)
}

// Resolve handles POST /api/v1/location/resolve
func (h *LocationHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req models.CoordinatesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	region, err := h.svc.Resolve(req)
	if err != nil {
		respondServiceError(w, h.logger, err, "Failed to resolve location")
		return
	}
	respondJSON(w, http.StatusOK, region)
}

// Detect handles POST /api/v1/location/detect
func (h *LocationHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req models.DetectRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	out, err := h.svc.Detect(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.logger, err, services.MsgGeocodeFailed)
		return
	}
	respondJSON(w, http.StatusOK, out)
}
