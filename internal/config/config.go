// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultDatasetSource is the export shipped with the dashboard.
const DefaultDatasetSource = "data/mlb_data.json"

// --------------------------------------------------------------------------
// Table names — single source of truth, matches db.Schema
// --------------------------------------------------------------------------

const (
	SeasonRecordsTable = "season_records"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Dataset
	DatasetSource       string // file path, http(s) URL, s3://bucket/key or "postgres"
	DatasetFetchTimeout time.Duration
	DatasetReloadCron   string // empty disables scheduled reloads
	AWSRegion           string

	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool
	CacheSize    int

	// Visualization embeds (TOML); empty uses the built-in set
	EmbedsFile string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatasetSource:       envOr("DATASET_SOURCE", DefaultDatasetSource),
		DatasetFetchTimeout: time.Duration(envInt("DATASET_FETCH_TIMEOUT_SECONDS", 30)) * time.Second,
		DatasetReloadCron:   envOr("DATASET_RELOAD_CRON", ""),
		AWSRegion:           envOr("AWS_REGION", ""),

		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 1),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 5),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),
		CacheSize:    envInt("CACHE_SIZE", 512),

		EmbedsFile: envOr("EMBEDS_FILE", ""),
	}

	if cfg.UsesDatabase() && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set when DATASET_SOURCE=postgres")
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("CACHE_SIZE must be positive, got %d", cfg.CacheSize)
	}
	return cfg, nil
}

// UsesDatabase reports whether the dataset is read from Postgres.
func (c *Config) UsesDatabase() bool {
	return c.DatasetSource == "postgres"
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
