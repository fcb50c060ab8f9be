package seed

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/albapepper/mlb-payroll/internal/db"
	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// Execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// UpsertSeason writes one season record to the season_records table.
func UpsertSeason(ctx context.Context, ex Execer, r payroll.SeasonRecord) error {
	_, err := ex.Exec(ctx, db.StmtUpsertSeasonRecord,
		r.Year, r.TeamCode, r.TeamName, string(r.League), r.Division,
		r.TotalPayroll, r.Wins, r.MadePostseason, r.WonWorldSeries,
		r.WonLeague, r.DivisionWinner, r.Wildcard, r.OPS, r.ERA,
	)
	return err
}

// SeedSeasons upserts a derived dataset season by season. Individual
// failures are collected in the result and do not stop the run.
func SeedSeasons(ctx context.Context, ex Execer, ds *payroll.Dataset, logger *slog.Logger) SeedResult {
	var result SeedResult

	for _, year := range ds.Years() {
		if err := ctx.Err(); err != nil {
			result.AddErrorf("seed cancelled before %d: %v", year, err)
			return result
		}

		season, _ := ds.Season(year)
		count := 0
		for _, r := range season {
			if err := UpsertSeason(ctx, ex, r.SeasonRecord); err != nil {
				result.AddErrorf("upsert %d %s: %v", r.Year, r.TeamCode, err)
				continue
			}
			count++
		}
		result.RecordsUpserted += count
		result.SeasonsSeeded++
		logger.Info("Season seeded", "year", year, "records", count, "of", len(season))
	}

	logger.Info("Seed complete", "summary", result.Summary())
	return result
}
