package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/mlb-payroll/internal/api/handler"
	"github.com/albapepper/mlb-payroll/internal/cache"
	"github.com/albapepper/mlb-payroll/internal/config"
	"github.com/albapepper/mlb-payroll/internal/snapshot"
	"github.com/albapepper/mlb-payroll/internal/viz"
)

// Deps are the components the router serves from.
type Deps struct {
	Store  *snapshot.Store
	Cache  *cache.Cache
	Embeds *viz.Registry
	// DB is nil unless the dataset is read from Postgres.
	DB     handler.HealthChecker
	Logger *slog.Logger
}

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(deps Deps, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	if cfg.Debug {
		r.Use(LoggingMiddleware(deps.Logger))
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(deps.Store, deps.Cache, deps.Embeds, cfg, deps.DB)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/dataset", h.HealthCheckDataset)
		r.Get("/cache", h.HealthCheckCache)
		r.Get("/db", h.HealthCheckDB)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Seasons
		r.Get("/seasons", h.GetSeasons)
		r.Route("/seasons/{year}", func(r chi.Router) {
			r.Get("/", h.GetSeason)
			r.Get("/payrolls", h.GetSeasonPayrolls)
			r.Get("/outcomes", h.GetSeasonOutcomes)
			r.Get("/divisions", h.GetSeasonDivisions)
			r.Get("/leagues", h.GetSeasonLeagues)
		})
		r.Get("/records", h.GetRecords)

		// Teams
		r.Get("/teams", h.GetTeams)
		r.Get("/teams/options", h.GetTeamOptions)
		r.Get("/teams/search", h.SearchTeams)
		r.Get("/teams/{code}", h.GetTeam)

		// Efficiency
		r.Get("/efficiency", h.GetEfficiency)

		// Embeds
		r.Get("/embeds", h.GetEmbeds)
	})

	return r
}
