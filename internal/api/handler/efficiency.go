package handler

import (
	"net/http"

	"github.com/albapepper/mlb-payroll/internal/cache"
	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// MostEfficientCount is how many teams the efficiency leaderboard shows.
const MostEfficientCount = 5

// EfficiencyRow is one team of the cost-per-win ranking in chart units.
type EfficiencyRow struct {
	Rank          int                    `json:"rank"`
	Team          string                 `json:"team"`
	TeamCode      string                 `json:"teamCode"`
	League        payroll.League         `json:"league"`
	AvgPayroll    float64                `json:"avgPayroll"`
	AvgWins       float64                `json:"avgWins"`
	AvgCostPerWin *float64               `json:"avgCostPerWin"`
	Band          payroll.EfficiencyBand `json:"band"`
	Quadrant      payroll.Quadrant       `json:"quadrant"`
	Color         string                 `json:"color"`
}

// EfficiencyResponse is the efficiency tab: averages, ranking, leaders and
// quadrant split, all over the same league-filtered set.
type EfficiencyResponse struct {
	League         payroll.League          `json:"league"`
	Averages       payroll.LeagueAverage   `json:"averages"`
	Ranking        []EfficiencyRow         `json:"ranking"`
	MostEfficient  []EfficiencyRow         `json:"mostEfficient"`
	QuadrantCounts []payroll.QuadrantCount `json:"quadrantCounts"`
}

// GetEfficiency returns the spending-efficiency analysis.
// @Summary Spending efficiency
// @Description Ranks teams by average cost per win (millions, ascending; teams without a defined cost per win last with rank 0) and classifies them into spend/wins quadrants against the filtered set's means.
// @Tags efficiency
// @Produce json
// @Param league query string false "League filter" Enums(AL, NL, All)
// @Success 200 {object} EfficiencyResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /efficiency [get]
func (h *Handler) GetEfficiency(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	h.serveCached(w, r, "efficiency:"+string(league), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		return buildEfficiency(ds, league), nil
	})
}

func buildEfficiency(ds *payroll.Dataset, league payroll.League) EfficiencyResponse {
	teams := payroll.FilterLeague(ds.Teams, league)
	avg := payroll.LeagueAverages(teams)

	quadrants := make(map[string]payroll.Quadrant, len(teams))
	classified := payroll.ClassifyQuadrants(teams)
	for _, q := range classified {
		quadrants[q.Team] = q.Quadrant
	}

	ranked := payroll.RankByEfficiency(teams)
	rows := make([]EfficiencyRow, len(ranked))
	for i, t := range ranked {
		cost := millions(t.AvgCostPerWin)
		rows[i] = EfficiencyRow{
			Rank:          t.Rank,
			Team:          t.Team,
			TeamCode:      t.TeamCode,
			League:        t.League,
			AvgPayroll:    t.AvgPayroll / payroll.Million,
			AvgWins:       t.AvgWins,
			AvgCostPerWin: cost,
			Band:          payroll.BandFor(cost, avg.AvgCostPerWinMillions),
			Quadrant:      quadrants[t.Team],
			Color:         payroll.TeamColor(t.TeamCode),
		}
	}

	leaders := make([]EfficiencyRow, 0, MostEfficientCount)
	for _, t := range payroll.MostEfficient(ranked, MostEfficientCount) {
		leaders = append(leaders, rows[t.Rank-1])
	}

	return EfficiencyResponse{
		League:         league,
		Averages:       avg,
		Ranking:        rows,
		MostEfficient:  leaders,
		QuadrantCounts: payroll.CountQuadrants(classified),
	}
}

func millions(v *float64) *float64 {
	if v == nil {
		return nil
	}
	m := *v / payroll.Million
	return &m
}
