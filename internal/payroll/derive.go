package payroll

import (
	"fmt"
	"strings"
)

// Dataset holds every structure derived from one load of season records.
// It is immutable once returned by DeriveAll; share it by pointer.
type Dataset struct {
	Records []EnrichedRecord `json:"records"`
	Yearly  YearlyIndex      `json:"yearly"`
	Teams   []TeamSummary    `json:"teams"`
}

// DeriveAll validates raw records and derives the enriched rows, the yearly
// index and the team summaries. It either returns a complete dataset or a
// single error for the whole load.
func DeriveAll(raw []SeasonRecord) (*Dataset, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyDataset
	}
	if err := Validate(raw); err != nil {
		return nil, fmt.Errorf("validate records: %w", err)
	}

	enriched := Enrich(raw)
	teams, err := AggregateTeams(enriched)
	if err != nil {
		return nil, fmt.Errorf("aggregate teams: %w", err)
	}

	return &Dataset{
		Records: enriched,
		Yearly:  GroupByYear(enriched),
		Teams:   teams,
	}, nil
}

// Team finds a summary by team code (latest season's code) or display name,
// case-insensitively.
func (d *Dataset) Team(key string) (TeamSummary, bool) {
	key = strings.TrimSpace(key)
	for _, t := range d.Teams {
		if strings.EqualFold(t.TeamCode, key) || strings.EqualFold(t.Team, key) {
			return t, true
		}
	}
	return TeamSummary{}, false
}

// Season returns the records for year; see YearlyIndex.Season.
func (d *Dataset) Season(year int) ([]EnrichedRecord, bool) {
	return d.Yearly.Season(year)
}

// Years returns the available seasons in ascending order.
func (d *Dataset) Years() []int {
	return d.Yearly.Years()
}
