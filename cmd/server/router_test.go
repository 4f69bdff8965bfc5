package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pramindu123/hazardx-gateway/internal/config"
	"github.com/pramindu123/hazardx-gateway/internal/events"
	"github.com/pramindu123/hazardx-gateway/internal/geocode"
	"github.com/pramindu123/hazardx-gateway/internal/handlers"
	"github.com/pramindu123/hazardx-gateway/internal/middleware"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := zaptest.NewLogger(t)
	sugar := logger.Sugar()
	metrics := observability.NewMetricsForTesting()
	resolver := regions.Default()

	relief := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			w.Write([]byte(`[]`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(relief.Close)

	apiClient := upstream.NewClient(relief.URL, 5*time.Second, 0, metrics, sugar)
	activity := services.NewActivityLogService(nil, sugar)
	geo, err := geocode.New(geocode.Options{NominatimURL: relief.URL, Timeout: time.Second}, metrics, sugar)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:      testSecret,
		AllowedOrigins: []string{"http://localhost:5173"},
		RateLimitRPM:   1000,
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return newRouter(ctx, cfg, logger, metrics, api{
		health:        handlers.NewHealthHandler(nil, nil, sugar),
		location:      handlers.NewLocationHandler(services.NewLocationService(resolver, geo, metrics, sugar), sugar),
		reports:       handlers.NewReportHandler(services.NewReportService(apiClient, resolver, activity, sugar), sugar),
		alerts:        handlers.NewAlertHandler(services.NewAlertService(apiClient, resolver, events.NopPublisher{}, activity, sugar), sugar),
		aid:           handlers.NewAidHandler(services.NewAidService(apiClient, activity, sugar), sugar),
		contributions: handlers.NewContributionHandler(services.NewContributionService(apiClient, resolver, activity, sugar), sugar),
		dashboard:     handlers.NewDashboardHandler(services.NewDashboardService(apiClient, resolver, metrics, sugar), sugar),
		activity:      handlers.NewActivityHandler(activity, sugar),
	})
}

func token(t *testing.T, role string) string {
	t.Helper()
	claims := middleware.Claims{
		UserID:   "5",
		Role:     role,
		District: "Galle",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func TestRouter_Access(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		role   string
		want   int
	}{
		{"health", http.MethodGet, "/api/v1/health", "", "", http.StatusOK},
		{"regions", http.MethodGet, "/api/v1/regions", "", "", http.StatusOK},
		{"district", http.MethodGet, "/api/v1/regions/Galle", "", "", http.StatusOK},
		{"public alerts", http.MethodGet, "/api/v1/alerts", "", "", http.StatusOK},
		{"approved aid", http.MethodGet, "/api/v1/aid-requests/approved", "", "", http.StatusOK},
		{"pending without token", http.MethodGet, "/api/v1/reports/pending", "", "", http.StatusUnauthorized},
		{"pending as volunteer", http.MethodGet, "/api/v1/reports/pending", "", middleware.RoleVolunteer, http.StatusForbidden},
		{"pending as officer", http.MethodGet, "/api/v1/reports/pending", "", middleware.RoleDS, http.StatusOK},
		{"alert without token", http.MethodPost, "/api/v1/alerts", `{}`, "", http.StatusUnauthorized},
		{"activity as dmc", http.MethodGet, "/api/v1/activity/recent", "", middleware.RoleDMC, http.StatusOK},
		{"contribution as officer", http.MethodPost, "/api/v1/contributions", `{}`, middleware.RoleDMC, http.StatusForbidden},
		{"contribution as volunteer", http.MethodPost, "/api/v1/contributions", `{"district":"Galle","type_support":"Food","description":"Rice packs"}`, middleware.RoleVolunteer, http.StatusCreated},
		{"unknown route", http.MethodGet, "/api/v1/nowhere", "", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.role != "" {
				req.Header.Set("Authorization", "Bearer "+token(t, tt.role))
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_CORSAndHeaders(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/regions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}
