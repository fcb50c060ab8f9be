package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5"

	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// Source produces the full raw record set. A Load either returns every
// record or an error; there is no partial result.
type Source interface {
	Load(ctx context.Context) ([]payroll.SeasonRecord, error)
	String() string
}

// Format selects the row decoder.
type Format int

const (
	FormatJSON Format = iota
	FormatCSV
)

// FormatFor picks CSV for a .csv name and JSON for everything else.
func FormatFor(name string) Format {
	if strings.EqualFold(path.Ext(name), ".csv") {
		return FormatCSV
	}
	return FormatJSON
}

// Decode reads rows in the given format.
func Decode(r io.Reader, f Format) ([]payroll.SeasonRecord, error) {
	if f == FormatCSV {
		return DecodeCSV(r)
	}
	return DecodeJSON(r)
}

// --------------------------------------------------------------------------
// File
// --------------------------------------------------------------------------

// FileSource reads a JSON or CSV export from disk.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(_ context.Context) ([]payroll.SeasonRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Decode(f, FormatFor(filepath.Base(s.Path)))
}

func (s *FileSource) String() string { return "file:" + s.Path }

// --------------------------------------------------------------------------
// HTTP
// --------------------------------------------------------------------------

// HTTPSource fetches an export over HTTP(S). The format follows the URL
// path extension, or a text/csv content type.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s *HTTPSource) Load(ctx context.Context) ([]payroll.SeasonRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/csv")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %d", resp.StatusCode)
	}

	format := FormatFor(req.URL.Path)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv") {
		format = FormatCSV
	}
	return Decode(resp.Body, format)
}

func (s *HTTPSource) String() string { return s.URL }

// --------------------------------------------------------------------------
// S3
// --------------------------------------------------------------------------

// ObjectGetter is the subset of the S3 client used by S3Source.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads an export object from a bucket.
type S3Source struct {
	Bucket string
	Key    string
	Client ObjectGetter
}

// NewS3Source builds an S3Source with the default AWS credential chain.
func NewS3Source(ctx context.Context, bucket, key, region string) (*S3Source, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Source{Bucket: bucket, Key: key, Client: s3.NewFromConfig(cfg)}, nil
}

func (s *S3Source) Load(ctx context.Context) ([]payroll.SeasonRecord, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object %s: %w", s, err)
	}
	defer out.Body.Close()
	return Decode(out.Body, FormatFor(s.Key))
}

func (s *S3Source) String() string { return "s3://" + s.Bucket + "/" + s.Key }

// --------------------------------------------------------------------------
// Postgres
// --------------------------------------------------------------------------

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// StmtSeasonRecords names the prepared statement that selects every stored
// season record, ordered by year and code.
const StmtSeasonRecords = "season_records_all"

// PostgresSource reads the season_records table seeded by the ingest CLI.
type PostgresSource struct {
	DB Querier
}

func (s *PostgresSource) Load(ctx context.Context) ([]payroll.SeasonRecord, error) {
	rows, err := s.DB.Query(ctx, StmtSeasonRecords)
	if err != nil {
		return nil, fmt.Errorf("query season records: %w", err)
	}
	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (payroll.SeasonRecord, error) {
		var (
			r      payroll.SeasonRecord
			league string
		)
		err := row.Scan(
			&r.Year, &r.TeamCode, &r.TeamName, &league, &r.Division,
			&r.TotalPayroll, &r.Wins, &r.MadePostseason, &r.WonWorldSeries,
			&r.WonLeague, &r.DivisionWinner, &r.Wildcard, &r.OPS, &r.ERA,
		)
		r.League = payroll.League(league)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan season records: %w", err)
	}
	return recs, nil
}

func (s *PostgresSource) String() string { return "postgres:season_records" }

// --------------------------------------------------------------------------
// Resolution
// --------------------------------------------------------------------------

// Options carries what non-file sources need.
type Options struct {
	// FetchTimeout bounds a single HTTP fetch.
	FetchTimeout time.Duration
	AWSRegion    string
	// DB backs the "postgres" source.
	DB Querier
}

// NewSource resolves a DATASET_SOURCE value: "postgres", an http(s) URL,
// an s3://bucket/key URL, or a file path.
func NewSource(ctx context.Context, spec string, opts Options) (Source, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "":
		return nil, fmt.Errorf("dataset source is empty")
	case spec == "postgres":
		if opts.DB == nil {
			return nil, fmt.Errorf("dataset source %q needs a database connection", spec)
		}
		return &PostgresSource{DB: opts.DB}, nil
	case strings.HasPrefix(spec, "http://"), strings.HasPrefix(spec, "https://"):
		return &HTTPSource{URL: spec, Client: &http.Client{Timeout: opts.FetchTimeout}}, nil
	case strings.HasPrefix(spec, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(spec, "s3://"), "/")
		if !ok || bucket == "" || key == "" {
			return nil, fmt.Errorf("invalid s3 source %q: want s3://bucket/key", spec)
		}
		return NewS3Source(ctx, bucket, key, opts.AWSRegion)
	default:
		return &FileSource{Path: spec}, nil
	}
}
