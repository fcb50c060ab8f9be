package payroll

import (
	"fmt"
	"slices"
)

// HistoryPoint is one season of a team's time series. Payroll and
// CostPerWin are in millions.
type HistoryPoint struct {
	Year           int      `json:"year"`
	Payroll        float64  `json:"payroll"`
	Wins           int      `json:"wins"`
	CostPerWin     *float64 `json:"costPerWin"`
	MadePostseason bool     `json:"madePostseason"`
}

// TeamSummary aggregates every season of one franchise. Teams are keyed by
// display name; TeamCode, League and Division come from the latest season.
// Monetary averages are in base currency.
type TeamSummary struct {
	Team     string `json:"team"`
	TeamCode string `json:"teamCode"`
	League   League `json:"league"`
	Division string `json:"division"`

	LatestYear       int      `json:"latestYear"`
	LatestPayroll    float64  `json:"latestPayroll"`
	LatestWins       int      `json:"latestWins"`
	LatestCostPerWin *float64 `json:"latestCostPerWin"`

	AvgPayroll    float64  `json:"avgPayroll"`
	AvgWins       float64  `json:"avgWins"`
	AvgCostPerWin *float64 `json:"avgCostPerWin"`

	PostseasonAppearances int `json:"postseasonAppearances"`
	WorldSeriesWins       int `json:"worldSeriesWins"`

	AvgOPS *float64 `json:"avgOPS"`
	AvgERA *float64 `json:"avgERA"`

	PayrollHistory []HistoryPoint `json:"payrollHistory"`
}

// AggregateTeams folds enriched records into one summary per team, in order
// of each team's first appearance.
func AggregateTeams(records []EnrichedRecord) ([]TeamSummary, error) {
	var order []string
	partitions := make(map[string][]EnrichedRecord)
	for _, r := range records {
		if _, ok := partitions[r.TeamName]; !ok {
			order = append(order, r.TeamName)
		}
		partitions[r.TeamName] = append(partitions[r.TeamName], r)
	}

	summaries := make([]TeamSummary, 0, len(order))
	for _, team := range order {
		s, err := summarize(team, partitions[team])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

func summarize(team string, recs []EnrichedRecord) (TeamSummary, error) {
	history := make([]HistoryPoint, 0, len(recs))
	var payrolls, wins, costs, ops, era []float64
	s := TeamSummary{Team: team}

	latest := recs[0]
	for _, r := range recs {
		if r.Year > latest.Year {
			latest = r
		}
		payrolls = append(payrolls, r.TotalPayroll)
		wins = append(wins, float64(r.Wins))
		if r.CostPerWin != nil {
			costs = append(costs, *r.CostPerWin)
		}
		if r.OPS != nil {
			ops = append(ops, *r.OPS)
		}
		if r.ERA != nil {
			era = append(era, *r.ERA)
		}
		if r.MadePostseason {
			s.PostseasonAppearances++
		}
		if r.WonWorldSeries {
			s.WorldSeriesWins++
		}
		history = append(history, HistoryPoint{
			Year:           r.Year,
			Payroll:        r.PayrollMillions,
			Wins:           r.Wins,
			CostPerWin:     r.CostPerWinMillions,
			MadePostseason: r.MadePostseason,
		})
	}

	slices.SortStableFunc(history, func(a, b HistoryPoint) int { return a.Year - b.Year })
	for i := 1; i < len(history); i++ {
		if history[i].Year == history[i-1].Year {
			return TeamSummary{}, fmt.Errorf("%w: %s in %d", ErrDuplicateTeamSeason, team, history[i].Year)
		}
	}

	s.TeamCode = latest.TeamCode
	s.League = latest.League
	s.Division = latest.Division
	s.LatestYear = latest.Year
	s.LatestPayroll = latest.TotalPayroll
	s.LatestWins = latest.Wins
	s.LatestCostPerWin = latest.CostPerWin

	s.AvgPayroll = mean(payrolls)
	s.AvgWins = mean(wins)
	s.AvgCostPerWin = optionalMean(costs)
	s.AvgOPS = optionalMean(ops)
	s.AvgERA = optionalMean(era)
	s.PayrollHistory = history
	return s, nil
}
