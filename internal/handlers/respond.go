// Package handlers contains HTTP request handlers for the HazardX API.
// Handlers parse requests, call services, and return JSON responses.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pramindu123/hazardx-gateway/internal/middleware"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/pramindu123/hazardx-gateway/internal/validation"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Helper: respond with JSON
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Helper: respond with error
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a JSON body into v, rejecting unknown fields and
// oversized bodies.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// pathID parses a positive integer URL parameter.
func pathID(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, fallback int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// claims returns the caller identity stored by RequireAuth.
func claims(r *http.Request) *middleware.Claims {
	if c, ok := middleware.ClaimsFromContext(r.Context()); ok {
		return c
	}
	return &middleware.Claims{}
}

// respondServiceError maps service errors onto HTTP responses.
func respondServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, err error, fallback string) {
	var (
		verrs  validation.Errors
		geoErr *services.GeolocationError
		apiErr *upstream.APIError
	)

	switch {
	case errors.As(err, &verrs):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "Validation failed",
			"fields": verrs,
		})
	case errors.As(err, &geoErr):
		respondError(w, http.StatusUnprocessableEntity, geoErr.Error())
	case errors.Is(err, services.ErrInvalidRegion):
		respondError(w, http.StatusBadRequest, "Divisional secretariat does not belong to the selected district")
	case errors.Is(err, services.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrNotVolunteer):
		respondError(w, http.StatusForbidden, "You must be logged in as a volunteer to submit a contribution.")
	case errors.Is(err, services.ErrGeocodeFailed):
		respondError(w, http.StatusBadGateway, services.MsgGeocodeFailed)
	case errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		respondError(w, http.StatusNotFound, "Not found")
	case errors.As(err, &apiErr):
		logger.Errorw(fallback, "upstream_status", apiErr.Status, "error", err)
		respondError(w, http.StatusBadGateway, fallback)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Errorw(fallback, "error", err)
		respondError(w, http.StatusGatewayTimeout, fallback)
	default:
		logger.Errorw(fallback, "error", err)
		respondError(w, http.StatusInternalServerError, fallback)
	}
}
