// Command ingest is the MLB payroll dataset CLI.
//
// Usage:
//
//	mlb-payroll-ingest convert --in export.csv --out data/mlb_data.json
//	mlb-payroll-ingest validate --source data/mlb_data.json
//	mlb-payroll-ingest summary --source data/mlb_data.json --league AL
//	mlb-payroll-ingest seed --source s3://bucket/mlb_data.json
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/mlb-payroll/internal/config"
	"github.com/albapepper/mlb-payroll/internal/dataset"
	"github.com/albapepper/mlb-payroll/internal/db"
	"github.com/albapepper/mlb-payroll/internal/listener"
	"github.com/albapepper/mlb-payroll/internal/payroll"
	"github.com/albapepper/mlb-payroll/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "mlb-payroll-ingest",
		Short: "MLB payroll dataset CLI",
	}

	root.AddCommand(convertCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(summaryCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// convert command
// --------------------------------------------------------------------------

func convertCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a spreadsheet CSV export into flat JSON records",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				return fmt.Errorf("--in is required")
			}
			src, err := os.Open(in)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer src.Close()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			n, err := dataset.ConvertCSV(src, w)
			if err != nil {
				return err
			}
			if out != "" {
				logger.Info("Converted", "in", in, "out", out, "rows", n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "CSV export to read")
	cmd.Flags().StringVar(&out, "out", "", "JSON file to write (stdout if empty)")
	return cmd
}

// --------------------------------------------------------------------------
// validate command
// --------------------------------------------------------------------------

func validateCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load a dataset and check every record",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDataset(source, func(ctx context.Context, cfg *config.Config, ds *payroll.Dataset, pool *db.Pool) error {
				years := ds.Years()
				logger.Info("Dataset valid",
					"records", len(ds.Records),
					"teams", len(ds.Teams),
					"first_year", years[0],
					"last_year", years[len(years)-1])
				for _, t := range ds.Teams {
					if t.AvgCostPerWin == nil {
						logger.Warn("Team has no defined cost per win", "team", t.Team)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Dataset source (default DATASET_SOURCE)")
	return cmd
}

// --------------------------------------------------------------------------
// summary command
// --------------------------------------------------------------------------

func summaryCmd() *cobra.Command {
	var source, league string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the cost-per-win efficiency table",
		RunE: func(cmd *cobra.Command, args []string) error {
			lg, err := payroll.ParseLeague(league)
			if err != nil {
				return err
			}
			return runWithDataset(source, func(ctx context.Context, cfg *config.Config, ds *payroll.Dataset, pool *db.Pool) error {
				return writeSummary(cmd.OutOrStdout(), ds, lg)
			})
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Dataset source (default DATASET_SOURCE)")
	cmd.Flags().StringVar(&league, "league", "All", "League filter (AL, NL, All)")
	return cmd
}

func writeSummary(out io.Writer, ds *payroll.Dataset, league payroll.League) error {
	teams := payroll.FilterLeague(ds.Teams, league)
	avg := payroll.LeagueAverages(teams)

	quadrants := make(map[string]payroll.Quadrant, len(teams))
	for _, q := range payroll.ClassifyQuadrants(teams) {
		quadrants[q.Team] = q.Quadrant
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tTEAM\tLG\tAVG PAYROLL\tAVG WINS\tCOST/WIN\tQUADRANT")
	for _, t := range payroll.RankByEfficiency(teams) {
		rank, cost := "-", "n/a"
		if t.AvgCostPerWin != nil {
			rank = fmt.Sprint(t.Rank)
			cost = payroll.FormatMoney(*t.AvgCostPerWin)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%s\t%s\n",
			rank, t.Team, t.League,
			payroll.FormatPayroll(t.AvgPayroll/payroll.Million),
			t.AvgWins, cost, quadrants[t.Team])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	cost := "n/a"
	if avg.AvgCostPerWinMillions != nil {
		cost = payroll.FormatPayroll(*avg.AvgCostPerWinMillions)
	}
	_, err := fmt.Fprintf(out, "\n%s teams (%s): avg payroll %s, avg wins %.1f, avg cost per win %s\n",
		humanize.Comma(int64(avg.Teams)), league,
		payroll.FormatPayroll(avg.AvgPayrollMillions), avg.AvgWins, cost)
	return err
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	var source string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Upsert season records into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "postgres" {
				return fmt.Errorf("--source must not be postgres when seeding postgres")
			}
			return runWithDataset(source, func(ctx context.Context, cfg *config.Config, ds *payroll.Dataset, pool *db.Pool) error {
				if pool == nil {
					p, err := db.New(ctx, cfg)
					if err != nil {
						return fmt.Errorf("connect to database: %w", err)
					}
					defer p.Close()
					pool = p
				}
				start := time.Now()
				result := seed.SeedSeasons(ctx, pool, ds, logger)
				logger.Info("Season seed finished", "duration", time.Since(start).Round(time.Millisecond), "summary", result.Summary())
				if len(result.Errors) > 0 {
					for _, e := range result.Errors {
						logger.Error("seed error", "error", e)
					}
					return fmt.Errorf("%d season records failed", len(result.Errors))
				}
				return listener.Notify(ctx, pool, listener.ChangeEvent{
					Seasons: result.SeasonsSeeded,
					Records: result.RecordsUpserted,
				})
			})
		},
	}
	cmd.Flags().StringVar(&source, "source", "", "Dataset source (default DATASET_SOURCE)")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runWithDataset handles config loading, optional DB connection, dataset
// loading and context cancellation. pool is nil unless the source is
// Postgres.
func runWithDataset(source string, fn func(ctx context.Context, cfg *config.Config, ds *payroll.Dataset, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if source != "" {
		cfg.DatasetSource = source
	}

	opts := dataset.Options{FetchTimeout: cfg.DatasetFetchTimeout, AWSRegion: cfg.AWSRegion}
	var pool *db.Pool
	if cfg.UsesDatabase() {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL must be set to read from postgres")
		}
		pool, err = db.New(ctx, cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		opts.DB = pool
	}

	src, err := dataset.NewSource(ctx, cfg.DatasetSource, opts)
	if err != nil {
		return err
	}
	raw, err := src.Load(ctx)
	if err != nil {
		return fmt.Errorf("load %s: %w", src, err)
	}
	ds, err := payroll.DeriveAll(raw)
	if err != nil {
		return fmt.Errorf("derive %s: %w", src, err)
	}
	logger.Info("Dataset loaded", "source", src.String(), "records", humanize.Comma(int64(len(ds.Records))))

	return fn(ctx, cfg, ds, pool)
}
