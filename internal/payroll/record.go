// Package payroll turns raw per-team-per-season rows into the shapes the
// dashboard views consume: an enriched row list, a year-keyed index and one
// multi-year summary per team, plus the ranking and classification helpers
// that operate on them.
//
// Everything in this package is pure and synchronous. Derived structures are
// built once per load and never mutated afterward.
package payroll

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Million converts base-currency payroll to the millions unit used by charts.
const Million = 1_000_000

// MaxSeasonWins bounds the win column to the length of a regular season.
const MaxSeasonWins = 162

var (
	// ErrEmptyDataset is returned when a load produced no season records.
	ErrEmptyDataset = errors.New("dataset contains no season records")
	// ErrInvalidRecord wraps every per-record validation failure.
	ErrInvalidRecord = errors.New("invalid season record")
	// ErrDuplicateSeason is returned when (year, team code) is not unique.
	ErrDuplicateSeason = errors.New("duplicate season record")
	// ErrDuplicateTeamSeason is returned when one franchise has two records
	// for the same year under different codes.
	ErrDuplicateTeamSeason = errors.New("franchise has more than one record for a season")
)

// League identifies the American or National League.
type League string

const (
	LeagueAmerican League = "AL"
	LeagueNational League = "NL"
	// LeagueAll is the pass-through value for league filters.
	LeagueAll League = "All"
)

// ParseLeague accepts the short codes and the long names found in
// spreadsheet exports. An empty string or "all" yields LeagueAll.
func ParseLeague(s string) (League, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return LeagueAll, nil
	case "al", "american", "american league":
		return LeagueAmerican, nil
	case "nl", "national", "national league":
		return LeagueNational, nil
	}
	return "", fmt.Errorf("unknown league %q", s)
}

// SeasonRecord is one team's stats for one season, as loaded from the dataset.
type SeasonRecord struct {
	Year           int     `json:"year"`
	TeamCode       string  `json:"teamCode"`
	TeamName       string  `json:"teamName"`
	League         League  `json:"league"`
	Division       string  `json:"division"`
	TotalPayroll   float64 `json:"totalPayroll"`
	Wins           int     `json:"wins"`
	MadePostseason bool    `json:"madePostseason"`
	WonWorldSeries bool    `json:"wonWorldSeries"`

	// Optional outcome flags. Nil means the column was absent.
	WonLeague      *bool `json:"wonLeague,omitempty"`
	DivisionWinner *bool `json:"divisionWinner,omitempty"`
	Wildcard       *bool `json:"wildcard,omitempty"`

	// Optional advanced stats. Nil means missing, never zero.
	OPS *float64 `json:"ops,omitempty"`
	ERA *float64 `json:"era,omitempty"`
}

type seasonKey struct {
	year int
	code string
}

// Validate checks every record and the (year, team code) uniqueness rule.
// All problems are reported together so a bad load fails once.
func Validate(records []SeasonRecord) error {
	var errs []error
	seen := make(map[seasonKey]int, len(records))

	for i, r := range records {
		if err := validateRecord(r); err != nil {
			errs = append(errs, fmt.Errorf("record %d (%d %s): %w", i, r.Year, r.TeamCode, err))
			continue
		}
		key := seasonKey{r.Year, r.TeamCode}
		if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%w: %d %s at records %d and %d",
				ErrDuplicateSeason, r.Year, r.TeamCode, first, i))
			continue
		}
		seen[key] = i
	}
	return errors.Join(errs...)
}

func validateRecord(r SeasonRecord) error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, fmt.Sprintf(format, args...))
	}
	switch {
	case r.Year <= 0:
		return invalid("year must be positive, got %d", r.Year)
	case strings.TrimSpace(r.TeamCode) == "":
		return invalid("team code is required")
	case strings.TrimSpace(r.TeamName) == "":
		return invalid("team name is required")
	case r.League != LeagueAmerican && r.League != LeagueNational:
		return invalid("league must be AL or NL, got %q", r.League)
	case r.Wins < 0 || r.Wins > MaxSeasonWins:
		return invalid("wins must be within [0, %d], got %d", MaxSeasonWins, r.Wins)
	case math.IsNaN(r.TotalPayroll) || math.IsInf(r.TotalPayroll, 0) || r.TotalPayroll <= 0:
		return invalid("total payroll must be positive, got %v", r.TotalPayroll)
	case r.WonWorldSeries && !r.MadePostseason:
		return invalid("world series winner must have made the postseason")
	case r.WonLeague != nil && *r.WonLeague && !r.MadePostseason:
		return invalid("pennant winner must have made the postseason")
	}
	if r.OPS != nil && !nonNegativeFinite(*r.OPS) {
		return invalid("OPS must be a non-negative number, got %v", *r.OPS)
	}
	if r.ERA != nil && !nonNegativeFinite(*r.ERA) {
		return invalid("ERA must be a non-negative number, got %v", *r.ERA)
	}
	return nil
}

func nonNegativeFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
