// Package handler provides HTTP handlers for all API endpoints.
// Handlers read the current derived snapshot and serialize views of it;
// responses are cached per snapshot generation with ETags.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/mlb-payroll/internal/api/respond"
	"github.com/albapepper/mlb-payroll/internal/cache"
	"github.com/albapepper/mlb-payroll/internal/config"
	"github.com/albapepper/mlb-payroll/internal/payroll"
	"github.com/albapepper/mlb-payroll/internal/snapshot"
	"github.com/albapepper/mlb-payroll/internal/viz"
)

// HealthChecker is satisfied by *db.Pool.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store  *snapshot.Store
	cache  *cache.Cache
	embeds *viz.Registry
	cfg    *config.Config
	db     HealthChecker
}

// New creates a Handler with shared dependencies. db may be nil when the
// dataset does not come from Postgres.
func New(store *snapshot.Store, c *cache.Cache, embeds *viz.Registry, cfg *config.Config, db HealthChecker) *Handler {
	return &Handler{
		store:  store,
		cache:  c,
		embeds: embeds,
		cfg:    cfg,
		db:     db,
	}
}

// apiError is returned by view builders to select a non-200 response.
type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.message }

func notFound(code, message string) error {
	return &apiError{status: http.StatusNotFound, code: code, message: message}
}

func badRequest(code, message string) error {
	return &apiError{status: http.StatusBadRequest, code: code, message: message}
}

func writeAPIError(w http.ResponseWriter, err error) {
	var ae *apiError
	if errors.As(err, &ae) {
		respond.WriteError(w, ae.status, ae.code, ae.message)
		return
	}
	respond.WriteErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Failed to build response", err.Error())
}

// serveCached answers from the response cache when possible and otherwise
// builds the view from the current snapshot. Cache keys carry the snapshot
// generation so a reload never serves stale views.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string, ttl time.Duration, build func(ds *payroll.Dataset) (any, error)) {
	snap := h.store.Current()
	if snap == nil {
		respond.WriteError(w, http.StatusServiceUnavailable, "DATASET_UNAVAILABLE", "Dataset has not been loaded")
		return
	}

	cacheKey := fmt.Sprintf("g%d:%s", snap.Generation, key)
	if data, etag, ok := h.cache.Get(cacheKey); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	v, err := build(snap.Dataset)
	if err != nil {
		writeAPIError(w, err)
		return
	}

	data, err := respond.Marshal(v)
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response", err.Error())
		return
	}

	etag := h.cache.Set(cacheKey, data, ttl)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, false)
}

// --------------------------------------------------------------------------
// Request parameters
// --------------------------------------------------------------------------

func yearParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		return 0, badRequest("INVALID_YEAR", fmt.Sprintf("year must be a positive integer, got %q", raw))
	}
	return year, nil
}

func leagueParam(r *http.Request) (payroll.League, error) {
	raw := r.URL.Query().Get("league")
	league, err := payroll.ParseLeague(raw)
	if err != nil {
		return "", badRequest("INVALID_LEAGUE", "league must be AL, NL or All")
	}
	return league, nil
}

func limitParam(r *http.Request, fallback, ceiling int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, badRequest("INVALID_LIMIT", "limit must be a positive integer")
	}
	return min(n, ceiling), nil
}

func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(raw)
}

// --------------------------------------------------------------------------
// Meta and health
// --------------------------------------------------------------------------

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the loaded dataset generation.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	st := h.store.Status()
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":        "MLB Payroll Efficiency API",
		"version":     "1.0.0",
		"status":      "running",
		"environment": h.cfg.Environment,
		"docs":        "/docs/",
		"dataset":     st.Source,
		"generation":  st.Generation,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDataset reports the loaded snapshot.
// @Summary Dataset health check
// @Description Reports the dataset source, generation, counts and the last load error. 503 until a dataset is loaded.
// @Tags health
// @Produce json
// @Success 200 {object} snapshot.Status
// @Failure 503 {object} snapshot.Status
// @Router /health/dataset [get]
func (h *Handler) HealthCheckDataset(w http.ResponseWriter, r *http.Request) {
	st := h.store.Status()
	status := http.StatusOK
	if !st.Loaded {
		status = http.StatusServiceUnavailable
	}
	respond.WriteJSONObject(w, status, st)
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity when the dataset is read from Postgres.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
			"status":    "healthy",
			"database":  "not configured",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	if err := h.db.HealthCheck(r.Context()); err != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"error":     "Database connection check failed",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns response cache statistics (keys, capacity, hits, misses).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
