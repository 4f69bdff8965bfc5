// Package config handles loading and validation of application configuration
// from environment variables. Supports .env files via godotenv.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "dev-secret-change-in-production"

// Config holds all application configuration
type Config struct {
	// Server settings
	Port            int
	Environment     string // "development" | "staging" | "production"
	ShutdownTimeout time.Duration

	// Security
	JWTSecret      string
	AllowedOrigins []string
	RateLimitRPM   int

	// Activity log database (optional)
	DatabaseURL string

	// Reverse geocoding
	GeocoderProvider   string // "nominatim" | "google"
	NominatimURL       string
	NominatimUserAgent string
	GoogleMapsAPIKey   string
	GeocoderTimeout    time.Duration
	GeocodeCacheSize   int
	RedisURL           string // shared geocode cache, optional
	GeocodeCacheTTL    time.Duration

	// Relief API
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	UpstreamRetries int

	// Alert events (optional)
	KafkaBrokers    []string
	KafkaAlertTopic string

	// Dashboard snapshot refresh, robfig/cron syntax
	DashboardRefreshSpec string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (development)
	_ = godotenv.Load()

	shutdownTimeout, err := getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	geocoderTimeout, err := getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvDuration("GEOCODE_CACHE_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	upstreamTimeout, err := getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            getEnvInt("PORT", 8080),
		Environment:     getEnv("ENVIRONMENT", "development"),
		ShutdownTimeout: shutdownTimeout,

		JWTSecret:      getEnv("JWT_SECRET", devJWTSecret),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		RateLimitRPM:   getEnvInt("RATE_LIMIT_RPM", 120),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		GeocoderProvider:   strings.ToLower(getEnv("GEOCODER_PROVIDER", "nominatim")),
		NominatimURL:       getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: getEnv("NOMINATIM_USER_AGENT", "HazardX-Gateway/1.0"),
		GoogleMapsAPIKey:   getEnv("GOOGLE_MAPS_API_KEY", ""),
		GeocoderTimeout:    geocoderTimeout,
		GeocodeCacheSize:   getEnvInt("GEOCODE_CACHE_SIZE", 1000),
		RedisURL:           getEnv("REDIS_URL", ""),
		GeocodeCacheTTL:    cacheTTL,

		UpstreamBaseURL: getEnv("UPSTREAM_BASE_URL", "http://localhost:5158"),
		UpstreamTimeout: upstreamTimeout,
		UpstreamRetries: getEnvInt("UPSTREAM_RETRIES", 2),

		KafkaBrokers:    splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaAlertTopic: getEnv("KAFKA_ALERT_TOPIC", "hazardx.alerts"),

		DashboardRefreshSpec: getEnv("DASHBOARD_REFRESH_SPEC", "@every 1m"),
	}

	switch cfg.GeocoderProvider {
	case "nominatim":
	case "google":
		if cfg.GoogleMapsAPIKey == "" {
			return nil, fmt.Errorf("GOOGLE_MAPS_API_KEY is required when GEOCODER_PROVIDER is google")
		}
	default:
		return nil, fmt.Errorf("GEOCODER_PROVIDER must be nominatim or google, got %q", cfg.GeocoderProvider)
	}
	if cfg.UpstreamRetries < 0 {
		return nil, fmt.Errorf("UPSTREAM_RETRIES must not be negative")
	}
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaAlertTopic == "" {
		return nil, fmt.Errorf("KAFKA_ALERT_TOPIC is required when KAFKA_BROKERS is set")
	}

	// Validate required fields in production
	if cfg.Environment == "production" {
		if cfg.JWTSecret == devJWTSecret {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		if cfg.NominatimUserAgent == "" {
			return nil, fmt.Errorf("NOMINATIM_USER_AGENT is required in production")
		}
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs with development defaults.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive duration", key, val)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
