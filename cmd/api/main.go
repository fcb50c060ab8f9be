// Command api serves the MLB payroll efficiency dashboard data.
//
// Usage:
//
//	mlb-payroll-api
//	DATASET_SOURCE=s3://bucket/mlb_data.json API_PORT=8080 mlb-payroll-api
//
// Send SIGHUP to reload the dataset without restarting.

// @title MLB Payroll Efficiency API
// @version 1.0.0
// @description Payroll versus performance analytics for MLB teams: season records, team summaries, cost-per-win rankings and quadrant classification. Derived from a single season dataset loaded at startup.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/mlb-payroll/internal/api"
	"github.com/albapepper/mlb-payroll/internal/api/handler"
	"github.com/albapepper/mlb-payroll/internal/cache"
	"github.com/albapepper/mlb-payroll/internal/config"
	"github.com/albapepper/mlb-payroll/internal/dataset"
	"github.com/albapepper/mlb-payroll/internal/db"
	"github.com/albapepper/mlb-payroll/internal/listener"
	"github.com/albapepper/mlb-payroll/internal/snapshot"
	"github.com/albapepper/mlb-payroll/internal/viz"

	_ "github.com/albapepper/mlb-payroll/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Connect to database only when the dataset lives there
	var (
		pool   *db.Pool
		health handler.HealthChecker
	)
	if cfg.UsesDatabase() {
		logger.Info("Connecting to database...")
		pool, err = db.New(ctx, cfg)
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		health = pool
		logger.Info("Database connected",
			"min_conns", cfg.DBPoolMinConns,
			"max_conns", cfg.DBPoolMaxConns)
	}

	// Dataset source
	opts := dataset.Options{FetchTimeout: cfg.DatasetFetchTimeout, AWSRegion: cfg.AWSRegion}
	if pool != nil {
		opts.DB = pool
	}
	src, err := dataset.NewSource(ctx, cfg.DatasetSource, opts)
	if err != nil {
		logger.Error("Invalid dataset source", "source", cfg.DatasetSource, "error", err)
		os.Exit(1)
	}

	// Initialize cache
	appCache, err := cache.New(cfg.CacheEnabled, cfg.CacheSize)
	if err != nil {
		logger.Error("Failed to create cache", "error", err)
		os.Exit(1)
	}
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled, "size", cfg.CacheSize)

	// Visualization embeds
	embeds, err := viz.Load(cfg.EmbedsFile)
	if err != nil {
		logger.Error("Failed to load embeds", "file", cfg.EmbedsFile, "error", err)
		os.Exit(1)
	}

	// Load the dataset. A failed first load keeps the server up and
	// answering 503 until a reload succeeds.
	store := snapshot.New(src, logger)
	store.OnReload(func(*snapshot.Snapshot) { appCache.Purge() })
	if _, err := store.Reload(ctx); err != nil {
		logger.Warn("Serving without a dataset until a reload succeeds", "source", src.String())
	}

	// Scheduled reloads
	if cfg.DatasetReloadCron != "" {
		sched, err := snapshot.NewScheduler(ctx, store, cfg.DatasetReloadCron)
		if err != nil {
			logger.Error("Invalid reload schedule", "cron", cfg.DatasetReloadCron, "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
		logger.Info("Dataset reload scheduled", "cron", cfg.DatasetReloadCron, "next", sched.Next())
	}

	// Reload when the ingest CLI seeds new records
	if cfg.UsesDatabase() {
		go listener.Start(ctx, cfg.DatabaseURL, func(ctx context.Context) error {
			_, err := store.Reload(ctx)
			return err
		}, logger)
	}

	// Reload on SIGHUP
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hup:
				logger.Info("SIGHUP received, reloading dataset")
				_, _ = store.Reload(ctx)
			}
		}
	}()

	// Create router
	router := api.NewRouter(api.Deps{
		Store:  store,
		Cache:  appCache,
		Embeds: embeds,
		DB:     health,
		Logger: logger,
	}, cfg)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting MLB Payroll API",
			"addr", addr,
			"environment", cfg.Environment,
			"dataset", src.String(),
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
