package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leagueFixture() []SeasonRecord {
	return []SeasonRecord{
		season(2021, "NYY", "New York Yankees", LeagueAmerican, "AL East", 200, 92),
		season(2021, "TB", "Tampa Bay Rays", LeagueAmerican, "AL East", 70, 100),
		season(2021, "LAD", "Los Angeles Dodgers", LeagueNational, "NL West", 260, 106),
		season(2021, "PIT", "Pittsburgh Pirates", LeagueNational, "NL Central", 50, 61),
		season(2022, "NYY", "New York Yankees", LeagueAmerican, "AL East", 250, 99),
		season(2022, "TB", "Tampa Bay Rays", LeagueAmerican, "AL East", 80, 86),
		season(2022, "LAD", "Los Angeles Dodgers", LeagueNational, "NL West", 270, 111),
		season(2022, "PIT", "Pittsburgh Pirates", LeagueNational, "NL Central", 55, 62),
	}
}

func TestDeriveAll(t *testing.T) {
	ds, err := DeriveAll(leagueFixture())
	require.NoError(t, err)

	assert.Len(t, ds.Records, 8)
	assert.Equal(t, 8, ds.Yearly.Len())
	assert.Equal(t, []int{2021, 2022}, ds.Years())
	assert.Len(t, ds.Teams, 4)

	seen := make(map[[2]any]bool)
	for _, r := range ds.Records {
		key := [2]any{r.Year, r.TeamCode}
		assert.False(t, seen[key], "duplicate %v", key)
		seen[key] = true
	}

	team, ok := ds.Team("tb")
	require.True(t, ok)
	assert.Equal(t, "Tampa Bay Rays", team.Team)

	team, ok = ds.Team("Los Angeles Dodgers")
	require.True(t, ok)
	assert.Equal(t, "LAD", team.TeamCode)

	_, ok = ds.Team("XYZ")
	assert.False(t, ok)
}

func TestDeriveAll_Idempotent(t *testing.T) {
	raw := leagueFixture()
	first, err := DeriveAll(raw)
	require.NoError(t, err)
	second, err := DeriveAll(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, leagueFixture(), raw, "input is not mutated")
}

func TestDeriveAll_ZeroWinsDoesNotCrash(t *testing.T) {
	raw := leagueFixture()
	raw = append(raw, season(2022, "COL", "Colorado Rockies", LeagueNational, "NL West", 100, 0))

	ds, err := DeriveAll(raw)
	require.NoError(t, err)

	s, ok := ds.Season(2022)
	require.True(t, ok)
	assert.Len(t, s, 5)

	col, ok := ds.Team("COL")
	require.True(t, ok)
	assert.Nil(t, col.AvgCostPerWin)

	ranked := RankByEfficiency(ds.Teams)
	last := ranked[len(ranked)-1]
	assert.Equal(t, "COL", last.TeamCode)
	assert.Zero(t, last.Rank)
}

func TestDeriveAll_Errors(t *testing.T) {
	tests := []struct {
		name    string
		records []SeasonRecord
		wantErr error
	}{
		{
			name:    "empty",
			records: nil,
			wantErr: ErrEmptyDataset,
		},
		{
			name: "duplicate year and code",
			records: []SeasonRecord{
				season(2021, "AAA", "Alpha", LeagueAmerican, "AL East", 100, 80),
				season(2021, "AAA", "Alpha Two", LeagueAmerican, "AL East", 90, 81),
			},
			wantErr: ErrDuplicateSeason,
		},
		{
			name: "franchise with two codes in one season",
			records: []SeasonRecord{
				season(2021, "AAA", "Alpha", LeagueAmerican, "AL East", 100, 80),
				season(2021, "AAB", "Alpha", LeagueAmerican, "AL East", 90, 81),
			},
			wantErr: ErrDuplicateTeamSeason,
		},
		{
			name: "non-positive payroll",
			records: []SeasonRecord{
				season(2021, "AAA", "Alpha", LeagueAmerican, "AL East", 0, 80),
			},
			wantErr: ErrInvalidRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := DeriveAll(tt.records)
			assert.Nil(t, ds)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := season(2021, "AAA", "Alpha", LeagueAmerican, "AL East", 100, 80)

	tests := []struct {
		name   string
		mutate func(r *SeasonRecord)
		errMsg string
	}{
		{"negative wins", func(r *SeasonRecord) { r.Wins = -1 }, "wins must be within"},
		{"too many wins", func(r *SeasonRecord) { r.Wins = 170 }, "wins must be within"},
		{"missing code", func(r *SeasonRecord) { r.TeamCode = " " }, "team code is required"},
		{"missing name", func(r *SeasonRecord) { r.TeamName = "" }, "team name is required"},
		{"bad league", func(r *SeasonRecord) { r.League = "XL" }, "league must be AL or NL"},
		{"bad year", func(r *SeasonRecord) { r.Year = 0 }, "year must be positive"},
		{"world series without postseason", func(r *SeasonRecord) { r.WonWorldSeries = true }, "world series winner"},
		{"pennant without postseason", func(r *SeasonRecord) { r.WonLeague = ptr(true) }, "pennant winner"},
		{"negative ERA", func(r *SeasonRecord) { r.ERA = ptr(-1.0) }, "ERA must be"},
	}

	require.NoError(t, Validate([]SeasonRecord{valid}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := Validate([]SeasonRecord{r})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRecord)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	bad1 := season(2021, "AAA", "Alpha", LeagueAmerican, "AL East", 100, -2)
	bad2 := season(2021, "BBB", "Beta", LeagueAmerican, "AL East", -5, 80)

	err := Validate([]SeasonRecord{bad1, bad2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 0")
	assert.Contains(t, err.Error(), "record 1")
}

func TestParseLeague(t *testing.T) {
	tests := []struct {
		in      string
		want    League
		wantErr bool
	}{
		{"AL", LeagueAmerican, false},
		{"american league", LeagueAmerican, false},
		{"NL", LeagueNational, false},
		{"National", LeagueNational, false},
		{"", LeagueAll, false},
		{"All", LeagueAll, false},
		{"XL", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLeague(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
