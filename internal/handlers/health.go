package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"go.uber.org/zap"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

var startTime = time.Now()

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// Ping calls f(ctx).
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HealthHandler provides health check endpoints. Nil dependencies are
// reported as "disabled" and never fail readiness.
type HealthHandler struct {
	db     Pinger
	redis  Pinger
	logger *zap.SugaredLogger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db, redis Pinger, logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, logger: logger}
}

// Check handles GET /api/v1/health (liveness probe)
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:  "ok",
		Version: Version,
		Uptime:  time.Since(startTime).String(),
	})
}

// Ready handles GET /api/v1/health/ready (readiness probe)
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	dbStatus, dbOK := h.probe(r.Context(), "database", h.db)
	redisStatus, redisOK := h.probe(r.Context(), "redis", h.redis)

	if !dbOK || !redisOK {
		respondJSON(w, http.StatusServiceUnavailable, models.HealthStatus{
			Status:   "not ready",
			Version:  Version,
			Database: dbStatus,
			Redis:    redisStatus,
		})
		return
	}

	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:   "ready",
		Version:  Version,
		Uptime:   time.Since(startTime).String(),
		Database: dbStatus,
		Redis:    redisStatus,
	})
}

func (h *HealthHandler) probe(ctx context.Context, name string, p Pinger) (string, bool) {
	if p == nil {
		return "disabled", true
	}
	if err := p.Ping(ctx); err != nil {
		h.logger.Warnw("Readiness probe failed", "dependency", name, "error", err)
		return "disconnected", false
	}
	return "connected", true
}
