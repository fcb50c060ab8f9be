package payroll

import (
	"cmp"
	"fmt"
	"slices"
)

// LeagueAverage holds the means of a filtered team set. Payroll and cost
// per win are in millions; teams with no cost per win are left out of that
// mean only.
type LeagueAverage struct {
	Teams                 int      `json:"teams"`
	AvgPayrollMillions    float64  `json:"avgPayroll"`
	AvgWins               float64  `json:"avgWins"`
	AvgCostPerWinMillions *float64 `json:"avgCostPerWin"`
}

// LeagueAverages computes the set-wide means used by the efficiency views.
func LeagueAverages(teams []TeamSummary) LeagueAverage {
	var payrolls, wins, costs []float64
	for _, t := range teams {
		payrolls = append(payrolls, t.AvgPayroll)
		wins = append(wins, t.AvgWins)
		if t.AvgCostPerWin != nil {
			costs = append(costs, *t.AvgCostPerWin)
		}
	}
	return LeagueAverage{
		Teams:                 len(teams),
		AvgPayrollMillions:    mean(payrolls) / Million,
		AvgWins:               mean(wins),
		AvgCostPerWinMillions: scaled(optionalMean(costs), Million),
	}
}

// MostEfficient returns the first n ranked teams, skipping unranked ones.
// n <= 0 yields an empty slice.
func MostEfficient(ranked []RankedTeam, n int) []RankedTeam {
	n = max(n, 0)
	out := make([]RankedTeam, 0, n)
	for _, r := range ranked {
		if len(out) == n {
			break
		}
		if r.Rank > 0 {
			out = append(out, r)
		}
	}
	return out
}

// EfficiencyBand compares a team's cost per win to the league mean.
type EfficiencyBand string

const (
	BandLowCost  EfficiencyBand = "low"
	BandAverage  EfficiencyBand = "average"
	BandHighCost EfficiencyBand = "high"
	BandUnrated  EfficiencyBand = "unrated"
)

// BandFor is low below 80% of the league mean, high above 120%, else
// average. Both arguments are in millions.
func BandFor(costPerWin, leagueMean *float64) EfficiencyBand {
	if costPerWin == nil || leagueMean == nil {
		return BandUnrated
	}
	switch {
	case *costPerWin < *leagueMean*0.8:
		return BandLowCost
	case *costPerWin > *leagueMean*1.2:
		return BandHighCost
	default:
		return BandAverage
	}
}

// TopPayrolls returns a season's records sorted descending by payroll
// (stable), truncated to n when n > 0.
func TopPayrolls(season []EnrichedRecord, n int) []EnrichedRecord {
	sorted := slices.Clone(season)
	slices.SortStableFunc(sorted, func(a, b EnrichedRecord) int {
		return cmp.Compare(b.TotalPayroll, a.TotalPayroll)
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DivisionStat is the average payroll (millions) and wins of one division in
// one season.
type DivisionStat struct {
	Division   string  `json:"division"`
	League     League  `json:"league"`
	Teams      int     `json:"teams"`
	AvgPayroll float64 `json:"avgPayroll"`
	AvgWins    float64 `json:"avgWins"`
}

// DivisionComparison summarizes a season per division, sorted by name.
func DivisionComparison(season []EnrichedRecord) []DivisionStat {
	type acc struct {
		league         League
		payrolls, wins []float64
	}
	groups := make(map[string]*acc)
	for _, r := range season {
		a, ok := groups[r.Division]
		if !ok {
			a = &acc{league: r.League}
			groups[r.Division] = a
		}
		a.payrolls = append(a.payrolls, r.PayrollMillions)
		a.wins = append(a.wins, float64(r.Wins))
	}

	out := make([]DivisionStat, 0, len(groups))
	for div, a := range groups {
		out = append(out, DivisionStat{
			Division:   div,
			League:     a.league,
			Teams:      len(a.payrolls),
			AvgPayroll: mean(a.payrolls),
			AvgWins:    mean(a.wins),
		})
	}
	slices.SortFunc(out, func(a, b DivisionStat) int { return cmp.Compare(a.Division, b.Division) })
	return out
}

// LeagueSpend is a league's total payroll (millions) in one season and its
// share of the season total.
type LeagueSpend struct {
	League  League  `json:"name"`
	Teams   int     `json:"teams"`
	Payroll float64 `json:"value"`
	Share   float64 `json:"share"`
}

// LeagueSpending totals a season's payroll per league, AL first. A league
// without teams that season is omitted.
func LeagueSpending(season []EnrichedRecord) []LeagueSpend {
	var total float64
	totals := make(map[League]*LeagueSpend)
	for _, r := range season {
		ls, ok := totals[r.League]
		if !ok {
			ls = &LeagueSpend{League: r.League}
			totals[r.League] = ls
		}
		ls.Teams++
		ls.Payroll += r.PayrollMillions
		total += r.PayrollMillions
	}

	out := make([]LeagueSpend, 0, 2)
	for _, l := range []League{LeagueAmerican, LeagueNational} {
		ls, ok := totals[l]
		if !ok {
			continue
		}
		if total > 0 {
			ls.Share = ls.Payroll / total
		}
		out = append(out, *ls)
	}
	return out
}

// SpendingHistory returns the team's spending rank for every season in its
// payroll history, oldest first.
func (d *Dataset) SpendingHistory(t TeamSummary) []SpendingRank {
	out := make([]SpendingRank, 0, len(t.PayrollHistory))
	for _, h := range t.PayrollHistory {
		season, ok := d.Season(h.Year)
		if !ok {
			continue
		}
		if sr, ok := SpendingRankByYear(season, t.Team); ok {
			out = append(out, sr)
		}
	}
	return out
}

// Assessment is a team's efficiency rank among all teams with a short
// narrative for the team detail view.
type Assessment struct {
	Rank    int    `json:"rank"`
	Of      int    `json:"of"`
	Tier    Tier   `json:"tier"`
	Summary string `json:"summary"`
}

// AssessEfficiency ranks the team among all teams by cost per win and
// applies the same third-of-the-league tiers as spending ranks. The boolean
// is false when the team is absent or unranked.
func AssessEfficiency(teams []TeamSummary, team string) (Assessment, bool) {
	ranked := RankByEfficiency(teams)
	of := RankedCount(ranked)
	for _, r := range ranked {
		if r.Team != team || r.Rank == 0 {
			continue
		}
		tier := TierForRank(r.Rank, of)
		return Assessment{Rank: r.Rank, Of: of, Tier: tier, Summary: assessmentText(r.Team, tier)}, true
	}
	return Assessment{}, false
}

func assessmentText(team string, tier Tier) string {
	switch tier {
	case TierTop:
		return fmt.Sprintf("The %s demonstrate excellent spending efficiency, ranking in the top third of MLB teams.", team)
	case TierMid:
		return fmt.Sprintf("The %s show average spending efficiency, ranking in the middle third of MLB teams.", team)
	default:
		return fmt.Sprintf("The %s have below-average spending efficiency, ranking in the bottom third of MLB teams.", team)
	}
}

// TeamOption is one entry of the team selector.
type TeamOption struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TeamOptions lists teams sorted by display name.
func TeamOptions(teams []TeamSummary) []TeamOption {
	out := make([]TeamOption, len(teams))
	for i, t := range teams {
		out[i] = TeamOption{Code: t.TeamCode, Name: t.Team, Color: TeamColor(t.TeamCode)}
	}
	slices.SortStableFunc(out, func(a, b TeamOption) int { return cmp.Compare(a.Name, b.Name) })
	return out
}
