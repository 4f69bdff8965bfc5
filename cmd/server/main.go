// Package main is the entry point for the HazardX gateway. It serves the
// region hierarchy and device-location detection used by the report forms,
// and fronts the relief API for the reporting, triage, alert, aid and
// volunteer screens.
//
// Architecture:
//   - The region resolver is built once from static reference data
//   - Reverse geocoding goes through an in-process LRU and an optional Redis cache
//   - Reports, alerts, aid requests and contributions live in the relief API
//   - Officer actions are recorded in an optional Postgres activity log
//   - Published alerts are also emitted to Kafka when brokers are configured
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pramindu123/hazardx-gateway/internal/config"
	"github.com/pramindu123/hazardx-gateway/internal/database"
	"github.com/pramindu123/hazardx-gateway/internal/events"
	"github.com/pramindu123/hazardx-gateway/internal/geocode"
	"github.com/pramindu123/hazardx-gateway/internal/handlers"
	"github.com/pramindu123/hazardx-gateway/internal/observability"
	"github.com/pramindu123/hazardx-gateway/internal/regions"
	"github.com/pramindu123/hazardx-gateway/internal/services"
	"github.com/pramindu123/hazardx-gateway/internal/upstream"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	sugar.Infow("Starting HazardX gateway",
		"port", cfg.Port,
		"env", cfg.Environment,
		"geocoder", cfg.GeocoderProvider,
		"upstream", cfg.UpstreamBaseURL,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()
	resolver := regions.Default()

	// Optional activity log store
	var db *pgxpool.Pool
	var dbPinger handlers.Pinger
	if cfg.DatabaseURL != "" {
		db, err = database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			sugar.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := database.CreateSchema(ctx, db); err != nil {
			sugar.Fatalf("Failed to create schema: %v", err)
		}
		dbPinger = db
	} else {
		sugar.Warn("DATABASE_URL not set, activity log disabled")
	}

	// Optional shared geocode cache
	var rdb *redis.Client
	var redisPinger handlers.Pinger
	if cfg.RedisURL != "" {
		rdb, err = geocode.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			sugar.Fatalf("Failed to connect to redis: %v", err)
		}
		defer rdb.Close()
		redisPinger = handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
	}

	geoOpts := geocode.Options{
		Provider:           cfg.GeocoderProvider,
		NominatimURL:       cfg.NominatimURL,
		NominatimUserAgent: cfg.NominatimUserAgent,
		GoogleAPIKey:       cfg.GoogleMapsAPIKey,
		Timeout:            cfg.GeocoderTimeout,
		CacheSize:          cfg.GeocodeCacheSize,
		RedisTTL:           cfg.GeocodeCacheTTL,
	}
	if rdb != nil {
		geoOpts.Redis = rdb
	}
	geocoder, err := geocode.New(geoOpts, metrics, sugar)
	if err != nil {
		sugar.Fatalf("Failed to create geocoder: %v", err)
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaAlertTopic, metrics, sugar)
	}
	defer publisher.Close()

	relief := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, cfg.UpstreamRetries, metrics, sugar)

	// Initialize services
	activitySvc := services.NewActivityLogService(db, sugar)
	locationSvc := services.NewLocationService(resolver, geocoder, metrics, sugar)
	reportSvc := services.NewReportService(relief, resolver, activitySvc, sugar)
	alertSvc := services.NewAlertService(relief, resolver, publisher, activitySvc, sugar)
	aidSvc := services.NewAidService(relief, activitySvc, sugar)
	contributionSvc := services.NewContributionService(relief, resolver, activitySvc, sugar)
	dashboardSvc := services.NewDashboardService(relief, resolver, metrics, sugar)

	// Start background dashboard refresh
	refresher := services.NewDashboardRefresher(dashboardSvc, sugar)
	if err := refresher.Start(ctx, cfg.DashboardRefreshSpec); err != nil {
		sugar.Fatalf("Failed to start dashboard refresher: %v", err)
	}

	router := newRouter(ctx, cfg, logger, metrics, api{
		health:        handlers.NewHealthHandler(dbPinger, redisPinger, sugar),
		location:      handlers.NewLocationHandler(locationSvc, sugar),
		reports:       handlers.NewReportHandler(reportSvc, sugar),
		alerts:        handlers.NewAlertHandler(alertSvc, sugar),
		aid:           handlers.NewAidHandler(aidSvc, sugar),
		contributions: handlers.NewContributionHandler(contributionSvc, sugar),
		dashboard:     handlers.NewDashboardHandler(dashboardSvc, sugar),
		activity:      handlers.NewActivityHandler(activitySvc, sugar),
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infof("Server listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	sugar.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Forced shutdown", "error", err)
	}

	sugar.Info("Server stopped")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
