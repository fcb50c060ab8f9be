package payroll

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(name, code string, league League, avgPayrollM, avgWins float64, costM *float64) TeamSummary {
	t := TeamSummary{
		Team:       name,
		TeamCode:   code,
		League:     league,
		AvgPayroll: avgPayrollM * Million,
		AvgWins:    avgWins,
	}
	if costM != nil {
		c := *costM * Million
		t.AvgCostPerWin = &c
	}
	return t
}

func TestFilterLeague(t *testing.T) {
	teams := []TeamSummary{
		summary("Alpha", "AAA", LeagueAmerican, 100, 80, ptr(1.0)),
		summary("Beta", "BBB", LeagueNational, 100, 80, ptr(1.0)),
		summary("Gamma", "CCC", LeagueAmerican, 100, 80, ptr(1.0)),
	}

	al := FilterLeague(teams, LeagueAmerican)
	require.Len(t, al, 2)
	assert.Equal(t, "Alpha", al[0].Team)
	assert.Equal(t, "Gamma", al[1].Team)

	assert.Len(t, FilterLeague(teams, LeagueNational), 1)
	assert.Equal(t, teams, FilterLeague(teams, LeagueAll))
	assert.Equal(t, teams, FilterLeague(teams, ""))

	empty := FilterLeague(nil, LeagueNational)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRankByEfficiency(t *testing.T) {
	teams := []TeamSummary{
		summary("Alpha", "AAA", LeagueAmerican, 100, 80, ptr(2.0)),
		summary("Beta", "BBB", LeagueNational, 100, 80, ptr(1.0)),
		summary("Gamma", "CCC", LeagueAmerican, 100, 80, nil),
		summary("Delta", "DDD", LeagueAmerican, 100, 80, ptr(1.5)),
	}

	ranked := RankByEfficiency(teams)
	require.Len(t, ranked, 4)

	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = fmt.Sprintf("%s:%d", r.TeamCode, r.Rank)
	}
	assert.Equal(t, []string{"BBB:1", "DDD:2", "AAA:3", "CCC:0"}, got)
	assert.Equal(t, 3, RankedCount(ranked))
	assert.Equal(t, "Alpha", teams[0].Team, "input order untouched")
}

func TestRankByEfficiency_StableTies(t *testing.T) {
	teams := []TeamSummary{
		summary("Alpha", "AAA", LeagueAmerican, 100, 80, ptr(1.0)),
		summary("Beta", "BBB", LeagueNational, 150, 85, ptr(1.0)),
		summary("Gamma", "CCC", LeagueAmerican, 90, 70, ptr(0.5)),
		summary("Delta", "DDD", LeagueAmerican, 120, 90, ptr(1.0)),
	}

	codes := func(ranked []RankedTeam) []string {
		out := make([]string, len(ranked))
		for i, r := range ranked {
			out[i] = r.TeamCode
		}
		return out
	}

	first := codes(RankByEfficiency(teams))
	assert.Equal(t, []string{"CCC", "AAA", "BBB", "DDD"}, first)
	assert.Equal(t, first, codes(RankByEfficiency(teams)))

	teams[1].AvgWins = 60
	teams[3].Division = "AL Central"
	assert.Equal(t, first, codes(RankByEfficiency(teams)), "irrelevant fields do not reorder ties")
}

func TestClassifyQuadrant(t *testing.T) {
	const meanPayroll, meanWins = 100 * Million, 81.0

	tests := []struct {
		name     string
		payrollM float64
		wins     float64
		want     Quadrant
	}{
		{"high spend high wins", 150, 95, QuadrantHighSpendHighWins},
		{"low spend high wins", 60, 95, QuadrantLowSpendHighWins},
		{"high spend low wins", 150, 70, QuadrantHighSpendLowWins},
		{"low spend low wins", 60, 70, QuadrantLowSpendLowWins},
		{"payroll equal to mean is low", 100, 95, QuadrantLowSpendHighWins},
		{"wins equal to mean is low", 150, 81, QuadrantHighSpendLowWins},
		{"both equal to mean", 100, 81, QuadrantLowSpendLowWins},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team := summary("X", "XXX", LeagueAmerican, tt.payrollM, tt.wins, nil)
			assert.Equal(t, tt.want, ClassifyQuadrant(team, meanPayroll, meanWins))
		})
	}
}

func TestClassifyQuadrants_AndCounts(t *testing.T) {
	teams := []TeamSummary{
		summary("Alpha", "AAA", LeagueAmerican, 200, 95, nil),
		summary("Beta", "BBB", LeagueAmerican, 50, 90, nil),
		summary("Gamma", "CCC", LeagueAmerican, 50, 65, nil),
	}

	q := ClassifyQuadrants(teams)
	require.Len(t, q, 3)
	assert.Equal(t, QuadrantHighSpendHighWins, q[0].Quadrant)
	assert.Equal(t, QuadrantLowSpendHighWins, q[1].Quadrant)
	assert.Equal(t, QuadrantLowSpendLowWins, q[2].Quadrant)

	counts := CountQuadrants(q)
	assert.Equal(t, []QuadrantCount{
		{QuadrantHighSpendHighWins, 1},
		{QuadrantLowSpendHighWins, 1},
		{QuadrantHighSpendLowWins, 0},
		{QuadrantLowSpendLowWins, 1},
	}, counts)
}

func TestClassifyQuadrants_FilterChangesDenominator(t *testing.T) {
	teams := []TeamSummary{
		summary("Alpha", "AAA", LeagueAmerican, 100, 80, nil),
		summary("Beta", "BBB", LeagueAmerican, 80, 70, nil),
		summary("Gamma", "CCC", LeagueNational, 300, 100, nil),
	}

	all := ClassifyQuadrants(teams)
	assert.Equal(t, QuadrantLowSpendLowWins, all[0].Quadrant)

	al := ClassifyQuadrants(FilterLeague(teams, LeagueAmerican))
	assert.Equal(t, QuadrantHighSpendHighWins, al[0].Quadrant)
}

func TestTierForRank(t *testing.T) {
	tests := []struct {
		rank, size int
		want       Tier
	}{
		{1, 30, TierTop},
		{10, 30, TierTop},
		{11, 30, TierMid},
		{20, 30, TierMid},
		{21, 30, TierBottom},
		{30, 30, TierBottom},
		{1, 1, TierTop},
		{4, 10, TierTop},
		{5, 10, TierMid},
		{7, 10, TierMid},
		{8, 10, TierBottom},
		{0, 30, TierBottom},
		{1, 0, TierBottom},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_of_%d", tt.rank, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, TierForRank(tt.rank, tt.size))
		})
	}
}

func thirtyTeamSeason(year int) []SeasonRecord {
	recs := make([]SeasonRecord, 30)
	for i := range recs {
		code := fmt.Sprintf("T%02d", i)
		league := LeagueAmerican
		if i%2 == 1 {
			league = LeagueNational
		}
		recs[i] = season(year, code, "Team "+code, league, string(league)+" East", float64(60+i*5), 60+i)
	}
	return recs
}

func TestSpendingRankByYear(t *testing.T) {
	raw := thirtyTeamSeason(2024)
	raw[7].TotalPayroll = 400 * Million
	recs := Enrich(raw)

	sr, ok := SpendingRankByYear(recs, "Team T07")
	require.True(t, ok)
	assert.Equal(t, 1, sr.Rank)
	assert.Equal(t, 30, sr.LeagueSize)
	assert.Equal(t, TierTop, sr.Tier)
	assert.Equal(t, "T07", sr.TeamCode)
	assert.InDelta(t, 400.0, sr.Payroll, 1e-9)

	sr, ok = SpendingRankByYear(recs, "Team T00")
	require.True(t, ok)
	assert.Equal(t, 30, sr.Rank)
	assert.Equal(t, TierBottom, sr.Tier)

	_, ok = SpendingRankByYear(recs, "Nobody")
	assert.False(t, ok)

	assert.Equal(t, "T00", recs[0].TeamCode, "input order untouched")
}

func TestSpendingRankByYear_TiesKeepSourceOrder(t *testing.T) {
	recs := Enrich([]SeasonRecord{
		season(2021, "AAA", "Alpha", LeagueAmerican, "AL East", 100, 80),
		season(2021, "BBB", "Beta", LeagueAmerican, "AL East", 100, 80),
	})
	a, _ := SpendingRankByYear(recs, "Alpha")
	b, _ := SpendingRankByYear(recs, "Beta")
	assert.Equal(t, 1, a.Rank)
	assert.Equal(t, 2, b.Rank)
}

func TestClassifyOutcomes(t *testing.T) {
	ws := season(2022, "HOU", "Houston Astros", LeagueAmerican, "AL West", 180, 106)
	ws.MadePostseason, ws.WonWorldSeries = true, true

	pennant := season(2022, "PHI", "Philadelphia Phillies", LeagueNational, "NL East", 230, 87)
	pennant.MadePostseason, pennant.WonLeague = true, ptr(true)

	atl := season(2022, "ATL", "Atlanta Braves", LeagueNational, "NL East", 180, 101)
	atl.MadePostseason = true
	nym := season(2022, "NYM", "New York Mets", LeagueNational, "NL East", 270, 101)
	nym.MadePostseason = true

	sea := season(2022, "SEA", "Seattle Mariners", LeagueAmerican, "AL West", 110, 90)
	sea.MadePostseason = true

	flagged := season(2022, "CLE", "Cleveland Guardians", LeagueAmerican, "AL Central", 70, 92)
	flagged.MadePostseason, flagged.DivisionWinner = true, ptr(true)

	wild := season(2022, "TOR", "Toronto Blue Jays", LeagueAmerican, "AL East", 170, 92)
	wild.MadePostseason, wild.DivisionWinner, wild.Wildcard = true, ptr(false), ptr(true)

	missed := season(2022, "OAK", "Oakland Athletics", LeagueAmerican, "AL West", 50, 60)

	out := ClassifyOutcomes(Enrich([]SeasonRecord{ws, pennant, atl, nym, sea, flagged, wild, missed}))
	require.Len(t, out, 8)

	want := []struct {
		outcome  Outcome
		inferred bool
	}{
		{OutcomeWorldSeries, false},
		{OutcomeWonLeague, false},
		{OutcomeDivisionWinner, true},
		{OutcomeDivisionWinner, true},
		{OutcomeWildcard, true},
		{OutcomeDivisionWinner, false},
		{OutcomeWildcard, false},
		{OutcomeNoPlayoffs, false},
	}
	for i, w := range want {
		assert.Equal(t, w.outcome, out[i].Outcome, out[i].TeamCode)
		assert.Equal(t, w.inferred, out[i].Inferred, out[i].TeamCode)
	}
}

func TestOutcomeRank(t *testing.T) {
	assert.Equal(t, 0, OutcomeWorldSeries.Rank())
	assert.Equal(t, 4, OutcomeNoPlayoffs.Rank())
	assert.Less(t, OutcomeDivisionWinner.Rank(), OutcomeWildcard.Rank())
	assert.Equal(t, -1, Outcome("Unknown").Rank())
}
