package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pramindu123/hazardx-gateway/internal/config"
	"github.com/pramindu123/hazardx-gateway/internal/handlers"
	"github.com/pramindu123/hazardx-gateway/internal/middleware"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// api groups the handlers mounted under /api/v1.
type api struct {
	health        *handlers.HealthHandler
	location      *handlers.LocationHandler
	reports       *handlers.ReportHandler
	alerts        *handlers.AlertHandler
	aid           *handlers.AidHandler
	contributions *handlers.ContributionHandler
	dashboard     *handlers.DashboardHandler
	activity      *handlers.ActivityHandler
}

func newRouter(ctx context.Context, cfg *config.Config, logger *zap.Logger, metrics *observability.Metrics, h api) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Metrics(metrics))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())

	officer := middleware.RequireRole(middleware.RoleDMC, middleware.RoleDS)

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPM))

		// Health check
		r.Get("/health", h.health.Check)
		r.Get("/health/ready", h.health.Ready)

		// Region hierarchy and location detection (public)
		r.Route("/regions", func(r chi.Router) {
			r.Get("/", h.location.Districts)
			r.Get("/{district}", h.location.District)
			r.Get("/{district}/divisions/{division}", h.location.Division)
		})
		r.Post("/location/resolve", h.location.Resolve)
		r.Post("/location/detect", h.location.Detect)

		// Public screens
		r.Post("/reports", h.reports.Submit)
		r.Get("/alerts", h.alerts.List)
		r.Get("/aid-requests/approved", h.aid.Approved)
		r.Get("/dashboard", h.dashboard.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.JWTSecret))

			// Volunteer endpoints
			r.With(middleware.RequireRole(middleware.RoleVolunteer)).Post("/contributions", h.contributions.Submit)

			// Officer endpoints (DMC and DS)
			r.Group(func(r chi.Router) {
				r.Use(officer)
				r.Get("/reports/pending", h.reports.Pending)
				r.Post("/reports/{id}/status", h.reports.UpdateStatus)
				r.Post("/alerts", h.alerts.Create)
				r.Get("/aid-requests/ongoing", h.aid.Ongoing)
				r.Post("/aid-requests/{id}/resolve", h.aid.Resolve)
				r.Get("/contributions/pending", h.contributions.Pending)
				r.Post("/contributions/{id}/approve", h.contributions.Approve)
				r.Post("/contributions/{id}/reject", h.contributions.Reject)
				r.Get("/activity/recent", h.activity.Recent)
				r.Get("/activity/reports/{id}", h.activity.ByReport)
			})
		})
	})

	return r
}
