package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueAverages(t *testing.T) {
	teams := []TeamSummary{
		summary("Alpha", "AAA", LeagueAmerican, 100, 80, ptr(1.0)),
		summary("Beta", "BBB", LeagueAmerican, 200, 90, ptr(2.0)),
		summary("Gamma", "CCC", LeagueAmerican, 150, 0, nil),
	}

	avg := LeagueAverages(teams)
	assert.Equal(t, 3, avg.Teams)
	assert.InDelta(t, 150.0, avg.AvgPayrollMillions, 1e-9)
	assert.InDelta(t, 170.0/3, avg.AvgWins, 1e-9)
	require.NotNil(t, avg.AvgCostPerWinMillions)
	assert.InDelta(t, 1.5, *avg.AvgCostPerWinMillions, 1e-9)

	empty := LeagueAverages(nil)
	assert.Zero(t, empty.Teams)
	assert.Zero(t, empty.AvgWins)
	assert.Nil(t, empty.AvgCostPerWinMillions)
}

func TestMostEfficient(t *testing.T) {
	ranked := RankByEfficiency([]TeamSummary{
		summary("Alpha", "AAA", LeagueAmerican, 100, 80, ptr(2.0)),
		summary("Beta", "BBB", LeagueAmerican, 100, 80, nil),
		summary("Gamma", "CCC", LeagueAmerican, 100, 80, ptr(1.0)),
	})

	top := MostEfficient(ranked, 3)
	require.Len(t, top, 2)
	assert.Equal(t, "CCC", top[0].TeamCode)
	assert.Equal(t, "AAA", top[1].TeamCode)

	assert.Len(t, MostEfficient(ranked, 1), 1)
	assert.Empty(t, MostEfficient(ranked, 0))

	var negative []RankedTeam
	assert.NotPanics(t, func() { negative = MostEfficient(ranked, -1) })
	assert.NotNil(t, negative)
	assert.Empty(t, negative)
}

func TestBandFor(t *testing.T) {
	leagueMean := ptr(2.0)
	tests := []struct {
		name string
		cost *float64
		mean *float64
		want EfficiencyBand
	}{
		{"well below", ptr(1.5), leagueMean, BandLowCost},
		{"at lower boundary", ptr(1.6), leagueMean, BandAverage},
		{"at mean", ptr(2.0), leagueMean, BandAverage},
		{"at upper boundary", ptr(2.4), leagueMean, BandAverage},
		{"well above", ptr(2.5), leagueMean, BandHighCost},
		{"no cost", nil, leagueMean, BandUnrated},
		{"no mean", ptr(2.0), nil, BandUnrated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BandFor(tt.cost, tt.mean))
		})
	}
}

func TestTopPayrolls(t *testing.T) {
	recs := Enrich(thirtyTeamSeason(2023))

	top := TopPayrolls(recs, 15)
	require.Len(t, top, 15)
	assert.Equal(t, "T29", top[0].TeamCode)
	assert.Equal(t, "T15", top[14].TeamCode)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].TotalPayroll, top[i].TotalPayroll)
	}

	assert.Len(t, TopPayrolls(recs, 0), 30)
	assert.Empty(t, TopPayrolls(nil, 15))
}

func TestDivisionComparison(t *testing.T) {
	recs := Enrich([]SeasonRecord{
		season(2021, "NYY", "New York Yankees", LeagueAmerican, "AL East", 200, 92),
		season(2021, "TB", "Tampa Bay Rays", LeagueAmerican, "AL East", 70, 100),
		season(2021, "LAD", "Los Angeles Dodgers", LeagueNational, "NL West", 260, 106),
	})

	stats := DivisionComparison(recs)
	require.Len(t, stats, 2)
	assert.Equal(t, DivisionStat{Division: "AL East", League: LeagueAmerican, Teams: 2, AvgPayroll: 135, AvgWins: 96}, stats[0])
	assert.Equal(t, "NL West", stats[1].Division)
	assert.Equal(t, 1, stats[1].Teams)
}

func TestLeagueSpending(t *testing.T) {
	recs := Enrich([]SeasonRecord{
		season(2021, "LAD", "Los Angeles Dodgers", LeagueNational, "NL West", 300, 106),
		season(2021, "NYY", "New York Yankees", LeagueAmerican, "AL East", 200, 92),
		season(2021, "TB", "Tampa Bay Rays", LeagueAmerican, "AL East", 100, 100),
	})

	spend := LeagueSpending(recs)
	require.Len(t, spend, 2)
	assert.Equal(t, LeagueAmerican, spend[0].League)
	assert.Equal(t, 2, spend[0].Teams)
	assert.InDelta(t, 300.0, spend[0].Payroll, 1e-9)
	assert.InDelta(t, 0.5, spend[0].Share, 1e-9)
	assert.Equal(t, LeagueNational, spend[1].League)
	assert.InDelta(t, 0.5, spend[1].Share, 1e-9)

	assert.Empty(t, LeagueSpending(nil))
}

func TestSpendingHistory(t *testing.T) {
	ds, err := DeriveAll(leagueFixture())
	require.NoError(t, err)

	nyy, ok := ds.Team("NYY")
	require.True(t, ok)

	hist := ds.SpendingHistory(nyy)
	require.Len(t, hist, 2)
	assert.Equal(t, 2021, hist[0].Year)
	assert.Equal(t, 2, hist[0].Rank)
	assert.Equal(t, 4, hist[0].LeagueSize)
	assert.Equal(t, 2022, hist[1].Year)
	assert.Equal(t, 2, hist[1].Rank)
}

func TestAssessEfficiency(t *testing.T) {
	ds, err := DeriveAll(leagueFixture())
	require.NoError(t, err)

	a, ok := AssessEfficiency(ds.Teams, "Tampa Bay Rays")
	require.True(t, ok)
	assert.Equal(t, 1, a.Rank)
	assert.Equal(t, 4, a.Of)
	assert.Equal(t, TierTop, a.Tier)
	assert.Contains(t, a.Summary, "Tampa Bay Rays demonstrate excellent")

	a, ok = AssessEfficiency(ds.Teams, "Los Angeles Dodgers")
	require.True(t, ok)
	assert.Equal(t, 4, a.Rank)
	assert.Equal(t, TierBottom, a.Tier)
	assert.Contains(t, a.Summary, "below-average")

	_, ok = AssessEfficiency(ds.Teams, "Nobody")
	assert.False(t, ok)
}

func TestTeamOptions(t *testing.T) {
	opts := TeamOptions([]TeamSummary{
		{Team: "Texas Rangers", TeamCode: "TEX"},
		{Team: "Arizona Diamondbacks", TeamCode: "ARI"},
		{Team: "Expansion Club", TeamCode: "XPN"},
	})
	require.Len(t, opts, 3)
	assert.Equal(t, TeamOption{Code: "ARI", Name: "Arizona Diamondbacks", Color: "#A71930"}, opts[0])
	assert.Equal(t, FallbackColor, opts[1].Color)
	assert.Equal(t, "TEX", opts[2].Code)
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "$1,234,568", FormatMoney(1_234_567.6))
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "$123.5M", FormatPayroll(123.45))
	assert.Equal(t, "#0E3386", TeamColor("chc"))
}

func TestSearchTeams(t *testing.T) {
	teams := []TeamSummary{
		{Team: "Boston Red Sox", TeamCode: "BOS"},
		{Team: "New York Yankees", TeamCode: "NYY"},
		{Team: "Tampa Bay Rays", TeamCode: "TB"},
	}

	got := SearchTeams(teams, "Yank", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "NYY", got[0].TeamCode)

	got = SearchTeams(teams, "bos", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "BOS", got[0].TeamCode)

	assert.Empty(t, SearchTeams(teams, "   ", 5))
	assert.Empty(t, SearchTeams(teams, "zzzz", 5))
}
