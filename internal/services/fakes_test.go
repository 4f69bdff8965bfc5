package services

import (
	"context"
	"sync"

	"github.com/pramindu123/hazardx-gateway/internal/events"
	"github.com/pramindu123/hazardx-gateway/internal/geocode"
	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"go.uber.org/zap"
)

// fakeRelief records calls and returns canned data. Errors are per method.
type fakeRelief struct {
	mu sync.Mutex

	reports       []upstream.SymptomReport
	statusUpdates []upstream.StatusUpdate
	newAlerts     []upstream.NewAlert
	resolved      []upstream.ResolveAidRequest
	contributions []upstream.Contribution
	reviews       []upstream.ContributionStatus
	pendingFor    string

	pending      []upstream.SymptomReport
	alerts       []upstream.Alert
	approvedAid  []upstream.AidRequest
	ongoingAid   []upstream.AidRequest
	pendingContr []upstream.Contribution
	volunteers   int64
	alertsSent   int64
	aidTotal     int64

	createReportErr error
	statusErr       error
	createAlertErr  error
	listErr         error
	countErr        error
	writeErr        error
}

func (f *fakeRelief) CreateReport(_ context.Context, r upstream.SymptomReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createReportErr != nil {
		return f.createReportErr
	}
	f.reports = append(f.reports, r)
	return nil
}

func (f *fakeRelief) PendingReports(_ context.Context, district string) ([]upstream.SymptomReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingFor = district
	return f.pending, f.listErr
}

func (f *fakeRelief) UpdateReportStatus(_ context.Context, u upstream.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusUpdates = append(f.statusUpdates, u)
	return nil
}

func (f *fakeRelief) CreateAlert(_ context.Context, a upstream.NewAlert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createAlertErr != nil {
		return f.createAlertErr
	}
	f.newAlerts = append(f.newAlerts, a)
	return nil
}

func (f *fakeRelief) Alerts(context.Context) ([]upstream.Alert, error) {
	return f.alerts, f.listErr
}

func (f *fakeRelief) ApprovedAidRequests(context.Context) ([]upstream.AidRequest, error) {
	return f.approvedAid, f.listErr
}

func (f *fakeRelief) OngoingAidRequests(context.Context) ([]upstream.AidRequest, error) {
	return f.ongoingAid, f.listErr
}

func (f *fakeRelief) ResolveAidRequest(_ context.Context, r upstream.ResolveAidRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.resolved = append(f.resolved, r)
	return nil
}

func (f *fakeRelief) AddContribution(_ context.Context, c upstream.Contribution) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.contributions = append(f.contributions, c)
	return nil
}

func (f *fakeRelief) PendingContributions(_ context.Context, district string) ([]upstream.Contribution, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pendingFor = district
	return f.pendingContr, f.listErr
}

func (f *fakeRelief) SetContributionStatus(_ context.Context, s upstream.ContributionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.reviews = append(f.reviews, s)
	return nil
}

func (f *fakeRelief) ActiveVolunteersCount(context.Context) (int64, error) {
	return f.volunteers, f.countErr
}

func (f *fakeRelief) AlertsSentCount(context.Context) (int64, error) {
	return f.alertsSent, f.countErr
}

func (f *fakeRelief) TotalAidRequestsCount(context.Context) (int64, error) {
	return f.aidTotal, f.countErr
}

// fakeActivity collects recorded actions.
type fakeActivity struct {
	entries []models.ActivityLogEntry
	err     error
}

func (a *fakeActivity) Log(_ context.Context, e *models.ActivityLogEntry) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, *e)
	return nil
}

// fakePublisher collects published alert events.
type fakePublisher struct {
	events []events.AlertEvent
	err    error
}

func (p *fakePublisher) PublishAlert(_ context.Context, e events.AlertEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

// stubGeocoder returns a fixed result.
type stubGeocoder struct {
	res   geocode.Result
	err   error
	calls int
}

func (g *stubGeocoder) ReverseGeocode(context.Context, float64, float64) (geocode.Result, error) {
	g.calls++
	return g.res, g.err
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func testResolver() *regions.Resolver {
	return regions.Default()
}

func f64(v float64) *float64 { return &v }
