package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/pramindu123/hazardx-gateway/internal/events"
	"github.com/pramindu123/hazardx-gateway/internal/geocode"
	"github.com/pramindu123/hazardx-gateway/internal/middleware"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// fakeUpstream stands in for the relief API. It records request bodies per
// path and answers with canned bodies or failure statuses.
type fakeUpstream struct {
	mu        sync.Mutex
	bodies    map[string][]json.RawMessage
	queries   map[string]string
	responses map[string]interface{}
	failures  map[string]int
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{
		bodies:    map[string][]json.RawMessage{},
		queries:   map[string]string{},
		responses: map[string]interface{}{},
		failures:  map[string]int{},
	}
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries[r.URL.Path] = r.URL.RawQuery
	if r.Method == http.MethodPost {
		body, _ := io.ReadAll(r.Body)
		f.bodies[r.URL.Path] = append(f.bodies[r.URL.Path], body)
	}
	if status, ok := f.failures[r.URL.Path]; ok {
		http.Error(w, "upstream failure", status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if resp, ok := f.responses[r.URL.Path]; ok {
		json.NewEncoder(w).Encode(resp)
		return
	}
	w.Write([]byte(`{}`))
}

func (f *fakeUpstream) respond(path string, body interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[path] = body
}

func (f *fakeUpstream) fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = status
}

// posted decodes the i-th body posted to path into v.
func (f *fakeUpstream) posted(t *testing.T, path string, i int, v interface{}) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Greater(t, len(f.bodies[path]), i, "no body %d posted to %s", i, path)
	require.NoError(t, json.Unmarshal(f.bodies[path][i], v))
}

func (f *fakeUpstream) query(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[path]
}

func (f *fakeUpstream) postCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bodies[path])
}

type stubGeocoder struct {
	result geocode.Result
	err    error
}

func (s stubGeocoder) ReverseGeocode(context.Context, float64, float64) (geocode.Result, error) {
	return s.result, s.err
}

type testEnv struct {
	upstream *fakeUpstream
	router   chi.Router
}

// newTestEnv mounts every handler on a router backed by a fake relief API.
// Claims passed to do are stored in the request context as RequireAuth would.
func newTestEnv(t *testing.T, geo geocode.Geocoder) *testEnv {
	t.Helper()
	logger := zaptest.NewLogger(t).Sugar()
	metrics := observability.NewMetricsForTesting()
	resolver := regions.Default()

	fake := newFakeUpstream()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	api := upstream.NewClient(srv.URL, 5*time.Second, 0, metrics, logger)
	activity := services.NewActivityLogService(nil, logger)

	location := NewLocationHandler(services.NewLocationService(resolver, geo, metrics, logger), logger)
	report := NewReportHandler(services.NewReportService(api, resolver, activity, logger), logger)
	alert := NewAlertHandler(services.NewAlertService(api, resolver, events.NopPublisher{}, activity, logger), logger)
	aid := NewAidHandler(services.NewAidService(api, activity, logger), logger)
	contribution := NewContributionHandler(services.NewContributionService(api, resolver, activity, logger), logger)
	dashboard := NewDashboardHandler(services.NewDashboardService(api, resolver, metrics, logger), logger)
	activityH := NewActivityHandler(activity, logger)

	r := chi.NewRouter()
	r.Get("/regions", location.Districts)
	r.Get("/regions/{district}", location.District)
	r.Get("/regions/{district}/divisions/{division}", location.Division)
	r.Post("/location/resolve", location.Resolve)
	r.Post("/location/detect", location.Detect)
	r.Post("/reports", report.Submit)
	r.Get("/reports/pending", report.Pending)
	r.Post("/reports/{id}/status", report.UpdateStatus)
	r.Post("/alerts", alert.Create)
	r.Get("/alerts", alert.List)
	r.Get("/aid-requests/approved", aid.Approved)
	r.Get("/aid-requests/ongoing", aid.Ongoing)
	r.Post("/aid-requests/{id}/resolve", aid.Resolve)
	r.Post("/contributions", contribution.Submit)
	r.Get("/contributions/pending", contribution.Pending)
	r.Post("/contributions/{id}/approve", contribution.Approve)
	r.Post("/contributions/{id}/reject", contribution.Reject)
	r.Get("/dashboard", dashboard.Get)
	r.Get("/activity/recent", activityH.Recent)
	r.Get("/activity/reports/{id}", activityH.ByReport)

	return &testEnv{upstream: fake, router: r}
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, c *middleware.Claims) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = strings.NewReader(b)
	default:
		buf, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, rdr)
	if c != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), c))
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

var errGeocoderDown = errors.New("geocoder down")

var officer = &middleware.Claims{UserID: "3", Name: "Nimal", Role: middleware.RoleDMC, District: "Galle"}
