package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DashboardService builds and caches the home page snapshot.
type DashboardService struct {
	api      ReliefAPI
	resolver *regions.Resolver
	metrics  *observability.Metrics
	logger   *zap.SugaredLogger

	mu       sync.RWMutex
	snapshot *models.Dashboard
}

// NewDashboardService creates a dashboard service
func NewDashboardService(api ReliefAPI, resolver *regions.Resolver, metrics *observability.Metrics, logger *zap.SugaredLogger) *DashboardService {
	return &DashboardService{api: api, resolver: resolver, metrics: metrics, logger: logger}
}

// Snapshot returns the cached dashboard, building it on first use.
func (s *DashboardService) Snapshot(ctx context.Context) (models.Dashboard, error) {
	s.mu.RLock()
	if s.snapshot != nil {
		snap := *s.snapshot
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()
	return s.Refresh(ctx)
}

// Refresh fetches counts, approved aid requests and alerts concurrently and
// replaces the snapshot. On failure the previous snapshot is kept and marked
// stale.
func (s *DashboardService) Refresh(ctx context.Context) (models.Dashboard, error) {
	var (
		stats  models.DashboardStats
		aid    []upstream.AidRequest
		alerts []upstream.Alert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.ActiveVolunteers, err = s.api.ActiveVolunteersCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.AlertsSent, err = s.api.AlertsSentCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalAidRequests, err = s.api.TotalAidRequestsCount(gctx)
		return err
	})
	g.Go(func() (err error) {
		aid, err = s.api.ApprovedAidRequests(gctx)
		return err
	})
	g.Go(func() (err error) {
		alerts, err = s.api.Alerts(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.metrics.DashboardRefreshes.WithLabelValues("error").Inc()
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.snapshot != nil {
			s.snapshot.Stale = true
			return *s.snapshot, fmt.Errorf("refresh dashboard: %w", err)
		}
		return models.Dashboard{}, fmt.Errorf("refresh dashboard: %w", err)
	}

	snap := models.Dashboard{
		Stats:     stats,
		Markers:   buildMarkers(s.resolver, aid, alerts),
		UpdatedAt: clock.Now().UTC(),
	}

	s.mu.Lock()
	s.snapshot = &snap
	s.mu.Unlock()

	s.metrics.DashboardRefreshes.WithLabelValues("success").Inc()
	s.metrics.DashboardLastUpdate.Set(float64(snap.UpdatedAt.Unix()))
	return snap, nil
}

// buildMarkers places aid requests and alerts on the map. Records without
// coordinates fall back to their division anchor, then their district
// anchor, and are skipped when neither is known.
func buildMarkers(resolver *regions.Resolver, aid []upstream.AidRequest, alerts []upstream.Alert) []models.MapMarker {
	markers := make([]models.MapMarker, 0, len(aid)+len(alerts))
	for _, r := range aid {
		title := r.TypeSupport
		if title == "" {
			title = r.RequestType
		}
		m := models.MapMarker{
			Kind:                  "aid",
			ID:                    r.AidID,
			Title:                 title,
			District:              r.District,
			DivisionalSecretariat: r.DivisionalSecretariat,
		}
		if place(resolver, &m, r.Latitude, r.Longitude) {
			markers = append(markers, m)
		}
	}
	for _, a := range alerts {
		title := a.Title
		if title == "" {
			title = a.Type
		}
		m := models.MapMarker{
			Kind:                  "alert",
			ID:                    a.ID,
			Title:                 title,
			District:              a.District,
			DivisionalSecretariat: a.GnDivision,
			Severity:              a.Severity,
		}
		if place(resolver, &m, a.Latitude, a.Longitude) {
			markers = append(markers, m)
		}
	}
	return markers
}

func place(resolver *regions.Resolver, m *models.MapMarker, lat, lng float64) bool {
	if lat != 0 || lng != 0 {
		m.Lat, m.Lng = lat, lng
		return true
	}
	if c, ok := resolver.DivisionCoordinates(m.DivisionalSecretariat); ok && m.DivisionalSecretariat != "" {
		m.Lat, m.Lng, m.Approximate = c.Lat, c.Lng, true
		return true
	}
	if c, ok := resolver.DistrictCoordinates(m.District); ok {
		m.Lat, m.Lng, m.Approximate = c.Lat, c.Lng, true
		return true
	}
	return false
}

// DashboardRefresher rebuilds the dashboard snapshot on a cron schedule.
type DashboardRefresher struct {
	svc    *DashboardService
	logger *zap.SugaredLogger
	cron   *cron.Cron
}

// NewDashboardRefresher creates a new background dashboard refresher
func NewDashboardRefresher(svc *DashboardService, logger *zap.SugaredLogger) *DashboardRefresher {
	l := cronLogger{logger}
	return &DashboardRefresher{
		svc:    svc,
		logger: logger,
		cron:   cron.New(cron.WithLogger(l), cron.WithChain(cron.Recover(l), cron.SkipIfStillRunning(l))),
	}
}

// Start builds the first snapshot, schedules refreshes with spec and stops
// the schedule when ctx is done.
func (w *DashboardRefresher) Start(ctx context.Context, spec string) error {
	if _, err := w.cron.AddFunc(spec, func() { w.refresh(ctx) }); err != nil {
		return fmt.Errorf("schedule dashboard refresh %q: %w", spec, err)
	}

	// Initial build
	w.refresh(ctx)
	w.cron.Start()

	go func() {
		<-ctx.Done()
		<-w.cron.Stop().Done()
		w.logger.Info("Dashboard refresher stopped")
	}()
	return nil
}

func (w *DashboardRefresher) refresh(ctx context.Context) {
	snap, err := w.svc.Refresh(ctx)
	if err != nil {
		w.logger.Warnw("Dashboard refresh failed", "error", err)
		return
	}
	w.logger.Debugw("Dashboard refreshed",
		"markers", len(snap.Markers),
		"volunteers", snap.Stats.ActiveVolunteers,
		"alerts", snap.Stats.AlertsSent,
		"aid_requests", snap.Stats.TotalAidRequests,
	)
}

// cronLogger routes cron's scheduler logs through zap.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, kv ...interface{}) { c.l.Debugw(msg, kv...) }
func (c cronLogger) Error(err error, msg string, kv ...interface{}) {
	c.l.Errorw(msg, append(kv, "error", err)...)
}
