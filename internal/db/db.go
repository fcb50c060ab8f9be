// Package db provides a pgxpool-based connection pool with prepared statement
// registration, schema bootstrap and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/mlb-payroll/internal/config"
	"github.com/albapepper/mlb-payroll/internal/dataset"
)

// Prepared statement names.
const (
	StmtHealthCheck        = "health_check"
	StmtSeasonRecords      = dataset.StmtSeasonRecords
	StmtUpsertSeasonRecord = "upsert_season_record"
)

// Schema creates the season_records table when missing.
const Schema = `
CREATE TABLE IF NOT EXISTS ` + config.SeasonRecordsTable + ` (
	year            INTEGER       NOT NULL,
	team_code       TEXT          NOT NULL,
	team_name       TEXT          NOT NULL,
	league          TEXT          NOT NULL CHECK (league IN ('AL', 'NL')),
	division        TEXT          NOT NULL,
	total_payroll   NUMERIC(14,2) NOT NULL CHECK (total_payroll > 0),
	wins            INTEGER       NOT NULL CHECK (wins BETWEEN 0 AND 162),
	made_postseason BOOLEAN       NOT NULL,
	won_world_series BOOLEAN      NOT NULL,
	won_league      BOOLEAN,
	division_winner BOOLEAN,
	wildcard        BOOLEAN,
	ops             DOUBLE PRECISION,
	era             DOUBLE PRECISION,
	updated_at      TIMESTAMPTZ   NOT NULL DEFAULT NOW(),
	PRIMARY KEY (year, team_code)
)`

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool. The schema is ensured
// before statements are prepared on each connection.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, Schema); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, StmtHealthCheck).Scan(&n)
}

// Statements returns every statement the API and ingestion layers use,
// keyed by name.
func Statements() map[string]string {
	return map[string]string{
		// Health
		StmtHealthCheck: "SELECT 1",

		// Dataset source
		StmtSeasonRecords: `SELECT year, team_code, team_name, league, division,
			total_payroll::float8, wins, made_postseason, won_world_series,
			won_league, division_winner, wildcard, ops, era
			FROM ` + config.SeasonRecordsTable + `
			ORDER BY year, team_code`,

		// Ingestion
		StmtUpsertSeasonRecord: `INSERT INTO ` + config.SeasonRecordsTable + ` (
			year, team_code, team_name, league, division, total_payroll, wins,
			made_postseason, won_world_series, won_league, division_winner,
			wildcard, ops, era
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (year, team_code) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			league = EXCLUDED.league,
			division = EXCLUDED.division,
			total_payroll = EXCLUDED.total_payroll,
			wins = EXCLUDED.wins,
			made_postseason = EXCLUDED.made_postseason,
			won_world_series = EXCLUDED.won_world_series,
			won_league = EXCLUDED.won_league,
			division_winner = EXCLUDED.division_winner,
			wildcard = EXCLUDED.wildcard,
			ops = EXCLUDED.ops,
			era = EXCLUDED.era,
			updated_at = NOW()`,
	}
}

// registerPreparedStatements prepares every statement on a new connection.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	for name, sql := range Statements() {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
