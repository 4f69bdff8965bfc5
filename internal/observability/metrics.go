// Package observability holds the Prometheus collectors shared by the gateway.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hazardx"

// Metrics holds the Prometheus counters, histograms, and gauges for the gateway.
type Metrics struct {
	// HTTP surface.
	HTTPRequests *prometheus.CounterVec   // labels: method, route, status
	HTTPDuration *prometheus.HistogramVec // labels: method, route

	// Region resolution.
	Resolutions *prometheus.CounterVec // labels: source={coordinates,address}, pass

	// Reverse geocoding.
	GeocodeRequests    *prometheus.CounterVec   // labels: provider, outcome={success,error,empty}
	GeocodeCache       *prometheus.CounterVec   // labels: layer={memory,redis}, result={hit,miss,error}
	GeocodeAPIDuration *prometheus.HistogramVec // labels: provider

	// Upstream relief API.
	UpstreamRequests *prometheus.CounterVec // labels: endpoint, outcome={success,error}

	// Workflows.
	AlertsPublished     prometheus.Counter
	AlertPublishErrors  prometheus.Counter
	DashboardRefreshes  *prometheus.CounterVec // labels: outcome={success,error}
	DashboardLastUpdate prometheus.Gauge
}

// NewMetrics creates and registers all gateway metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.Resolutions,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeAPIDuration,
		m.UpstreamRequests,
		m.AlertsPublished,
		m.AlertPublishErrors,
		m.DashboardRefreshes,
		m.DashboardLastUpdate,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as
// many instances as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "region_resolutions_total",
			Help:      "Region resolutions by source and matching pass.",
		}, []string{"source", "pass"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_total",
			Help:      "Reverse geocoding cache lookups by layer and result.",
		}, []string{"layer", "result"}),
		GeocodeAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_api_duration_seconds",
			Help:      "Reverse geocoding provider latency in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Relief API requests by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_published_total",
			Help:      "Alerts written to the alert topic.",
		}),
		AlertPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_publish_errors_total",
			Help:      "Alerts that could not be written to the alert topic.",
		}),
		DashboardRefreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dashboard_refreshes_total",
			Help:      "Dashboard snapshot refreshes by outcome.",
		}, []string{"outcome"}),
		DashboardLastUpdate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dashboard_last_refresh_timestamp_seconds",
			Help:      "Unix time of the last successful dashboard refresh.",
		}),
	}
}
