package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pramindu123/hazardx-gateway/internal/models"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardAPI() *fakeRelief {
	return &fakeRelief{
		volunteers: 58,
		alertsSent: 12,
		aidTotal:   230,
		approvedAid: []upstream.AidRequest{
			{AidID: 1, TypeSupport: "Food", District: "Galle", DivisionalSecretariat: "Hikkaduwa", Latitude: 6.14, Longitude: 80.10},
			{AidID: 2, RequestType: "Shelter", District: "Colombo", DivisionalSecretariat: "Dehiwala"},
			{AidID: 3, TypeSupport: "Water", District: "Atlantis"},
		},
		alerts: []upstream.Alert{
			{ID: 7, Type: "Flood", Title: "River overflow", District: "Gampaha", Severity: "High"},
		},
	}
}

func TestDashboardService_Refresh(t *testing.T) {
	now := time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(now))
	defer SetClock(nil)

	m := observability.NewMetricsForTesting()
	svc := NewDashboardService(dashboardAPI(), testResolver(), m, testLogger())

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DashboardStats{ActiveVolunteers: 58, AlertsSent: 12, TotalAidRequests: 230}, snap.Stats)
	assert.Equal(t, now, snap.UpdatedAt)
	assert.False(t, snap.Stale)

	want := []models.MapMarker{
		{Kind: "aid", ID: 1, Title: "Food", District: "Galle", DivisionalSecretariat: "Hikkaduwa", Lat: 6.14, Lng: 80.10},
		{Kind: "aid", ID: 2, Title: "Shelter", District: "Colombo", DivisionalSecretariat: "Dehiwala", Lat: 6.8511, Lng: 79.8659, Approximate: true},
		{Kind: "alert", ID: 7, Title: "River overflow", District: "Gampaha", Severity: "High", Lat: 7.0917, Lng: 79.9997, Approximate: true},
	}
	assert.Equal(t, want, snap.Markers)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.DashboardRefreshes.WithLabelValues("success")))
	assert.Equal(t, float64(now.Unix()), testutil.ToFloat64(m.DashboardLastUpdate))
}

func TestDashboardService_SnapshotIsCached(t *testing.T) {
	api := dashboardAPI()
	svc := NewDashboardService(api, testResolver(), observability.NewMetricsForTesting(), testLogger())

	first, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	api.volunteers = 99
	second, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.Stats, second.Stats)
}

func TestDashboardService_FailedRefreshKeepsStaleSnapshot(t *testing.T) {
	api := dashboardAPI()
	m := observability.NewMetricsForTesting()
	svc := NewDashboardService(api, testResolver(), m, testLogger())

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	api.countErr = errors.New("upstream down")
	snap, err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.True(t, snap.Stale)
	assert.Equal(t, int64(58), snap.Stats.ActiveVolunteers)

	cached, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, cached.Stale)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DashboardRefreshes.WithLabelValues("error")))
}

func TestDashboardService_FirstRefreshFails(t *testing.T) {
	api := dashboardAPI()
	api.listErr = errors.New("timeout")
	svc := NewDashboardService(api, testResolver(), observability.NewMetricsForTesting(), testLogger())

	_, err := svc.Snapshot(context.Background())

	assert.Error(t, err)
}

func TestDashboardRefresher_Start(t *testing.T) {
	api := dashboardAPI()
	svc := NewDashboardService(api, testResolver(), observability.NewMetricsForTesting(), testLogger())
	w := NewDashboardRefresher(svc, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, "@every 1h"))

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(230), snap.Stats.TotalAidRequests)
}

func TestDashboardRefresher_InvalidSpec(t *testing.T) {
	svc := NewDashboardService(dashboardAPI(), testResolver(), observability.NewMetricsForTesting(), testLogger())
	w := NewDashboardRefresher(svc, testLogger())

	err := w.Start(context.Background(), "every now and then")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "schedule dashboard refresh")
}
