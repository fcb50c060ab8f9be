package payroll

import (
	"cmp"
	"slices"
	"strings"
)

// FilterLeague restricts teams to one league. LeagueAll (or "") passes every
// team through. The result is always a fresh slice.
func FilterLeague(teams []TeamSummary, league League) []TeamSummary {
	if league == "" || league == LeagueAll {
		return slices.Clone(teams)
	}
	out := make([]TeamSummary, 0, len(teams))
	for _, t := range teams {
		if t.League == league {
			out = append(out, t)
		}
	}
	return out
}

// RankedTeam is a team with its 1-based efficiency rank. Rank is 0 for a
// team with no defined cost per win.
type RankedTeam struct {
	TeamSummary
	Rank int `json:"rank"`
}

// RankByEfficiency sorts teams ascending by average cost per win. The sort is
// stable so ties keep their input order. Teams without a cost per win are
// unranked and follow the ranked ones, also in input order.
func RankByEfficiency(teams []TeamSummary) []RankedTeam {
	ranked := make([]RankedTeam, len(teams))
	for i, t := range teams {
		ranked[i] = RankedTeam{TeamSummary: t}
	}
	slices.SortStableFunc(ranked, func(a, b RankedTeam) int {
		switch {
		case a.AvgCostPerWin == nil && b.AvgCostPerWin == nil:
			return 0
		case a.AvgCostPerWin == nil:
			return 1
		case b.AvgCostPerWin == nil:
			return -1
		}
		return cmp.Compare(*a.AvgCostPerWin, *b.AvgCostPerWin)
	})
	for i := range ranked {
		if ranked[i].AvgCostPerWin != nil {
			ranked[i].Rank = i + 1
		}
	}
	return ranked
}

// RankedCount returns how many entries carry a rank.
func RankedCount(ranked []RankedTeam) int {
	n := 0
	for _, r := range ranked {
		if r.Rank > 0 {
			n++
		}
	}
	return n
}

// Quadrant labels a team by payroll and wins relative to the set's means.
type Quadrant string

const (
	QuadrantHighSpendHighWins Quadrant = "High Spend / High Wins"
	QuadrantLowSpendHighWins  Quadrant = "Low Spend / High Wins"
	QuadrantHighSpendLowWins  Quadrant = "High Spend / Low Wins"
	QuadrantLowSpendLowWins   Quadrant = "Low Spend / Low Wins"
)

// Quadrants lists the four labels in display order.
var Quadrants = []Quadrant{
	QuadrantHighSpendHighWins,
	QuadrantLowSpendHighWins,
	QuadrantHighSpendLowWins,
	QuadrantLowSpendLowWins,
}

// ClassifyQuadrant places a team using strict greater-than on both axes; a
// value equal to the mean is "low". meanPayroll is in base currency.
func ClassifyQuadrant(t TeamSummary, meanPayroll, meanWins float64) Quadrant {
	highWins := t.AvgWins > meanWins
	highSpend := t.AvgPayroll > meanPayroll
	switch {
	case highWins && highSpend:
		return QuadrantHighSpendHighWins
	case highWins:
		return QuadrantLowSpendHighWins
	case highSpend:
		return QuadrantHighSpendLowWins
	default:
		return QuadrantLowSpendLowWins
	}
}

// QuadrantTeam is a team with its quadrant within a filtered set.
type QuadrantTeam struct {
	TeamSummary
	Quadrant Quadrant `json:"quadrant"`
}

// ClassifyQuadrants labels every team against the means of the given set.
func ClassifyQuadrants(teams []TeamSummary) []QuadrantTeam {
	payrolls := make([]float64, len(teams))
	wins := make([]float64, len(teams))
	for i, t := range teams {
		payrolls[i] = t.AvgPayroll
		wins[i] = t.AvgWins
	}
	meanPayroll, meanWins := mean(payrolls), mean(wins)

	out := make([]QuadrantTeam, len(teams))
	for i, t := range teams {
		out[i] = QuadrantTeam{TeamSummary: t, Quadrant: ClassifyQuadrant(t, meanPayroll, meanWins)}
	}
	return out
}

// QuadrantCount is the number of teams in one quadrant.
type QuadrantCount struct {
	Quadrant Quadrant `json:"name"`
	Count    int      `json:"value"`
}

// CountQuadrants returns a count for each of the four quadrants, zeros
// included, in display order.
func CountQuadrants(teams []QuadrantTeam) []QuadrantCount {
	counts := make(map[Quadrant]int, len(Quadrants))
	for _, t := range teams {
		counts[t.Quadrant]++
	}
	out := make([]QuadrantCount, len(Quadrants))
	for i, q := range Quadrants {
		out[i] = QuadrantCount{Quadrant: q, Count: counts[q]}
	}
	return out
}

// Tier is a coarse third-of-the-league bucket by rank.
type Tier string

const (
	TierTop    Tier = "Top Tier"
	TierMid    Tier = "Mid Tier"
	TierBottom Tier = "Bottom Tier"
)

// TierForRank buckets a 1-based rank among size entries into thirds,
// rounding the boundaries up: with 30 teams ranks 1-10 are top, 11-20 mid.
func TierForRank(rank, size int) Tier {
	if size <= 0 || rank <= 0 {
		return TierBottom
	}
	switch {
	case rank <= ceilDiv(size, 3):
		return TierTop
	case rank <= ceilDiv(2*size, 3):
		return TierMid
	default:
		return TierBottom
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// SpendingRank is a team's payroll rank within one season; rank 1 is the
// highest spender.
type SpendingRank struct {
	Year       int     `json:"year"`
	Team       string  `json:"team"`
	TeamCode   string  `json:"teamCode"`
	Payroll    float64 `json:"payroll"`
	Rank       int     `json:"rank"`
	LeagueSize int     `json:"leagueSize"`
	Tier       Tier    `json:"tier"`
}

// SpendingRankByYear ranks season records descending by payroll (stable) and
// returns the entry for the named team. League size is the number of teams
// with data for that season.
func SpendingRankByYear(season []EnrichedRecord, team string) (SpendingRank, bool) {
	sorted := slices.Clone(season)
	slices.SortStableFunc(sorted, func(a, b EnrichedRecord) int {
		return cmp.Compare(b.TotalPayroll, a.TotalPayroll)
	})
	for i, r := range sorted {
		if !strings.EqualFold(r.TeamName, team) {
			continue
		}
		rank := i + 1
		return SpendingRank{
			Year:       r.Year,
			Team:       r.TeamName,
			TeamCode:   r.TeamCode,
			Payroll:    r.PayrollMillions,
			Rank:       rank,
			LeagueSize: len(sorted),
			Tier:       TierForRank(rank, len(sorted)),
		}, true
	}
	return SpendingRank{}, false
}

// Outcome is a team-season's postseason result, best first.
type Outcome string

const (
	OutcomeWorldSeries    Outcome = "Won World Series"
	OutcomeWonLeague      Outcome = "Won League"
	OutcomeDivisionWinner Outcome = "Division Winner"
	OutcomeWildcard       Outcome = "Wildcard"
	OutcomeNoPlayoffs     Outcome = "No Playoffs"
)

// Outcomes lists the taxonomy in order.
var Outcomes = []Outcome{
	OutcomeWorldSeries,
	OutcomeWonLeague,
	OutcomeDivisionWinner,
	OutcomeWildcard,
	OutcomeNoPlayoffs,
}

// Rank is the outcome's position in Outcomes, 0 being the championship.
func (o Outcome) Rank() int {
	return slices.Index(Outcomes, o)
}

// OutcomeRecord is a season record with its postseason category. Inferred
// is set when division winner vs wildcard was guessed from win totals.
type OutcomeRecord struct {
	EnrichedRecord
	Outcome  Outcome `json:"outcome"`
	Inferred bool    `json:"inferred"`
}

// ClassifyOutcomes categorizes every record of one season.
//
// When neither the division-winner nor the wildcard flag is set for a
// postseason team, the team is called a division winner if no other team in
// its division that season has more wins, otherwise a wildcard. Ties at the
// top of a division therefore yield more than one division winner. This is
// a heuristic, not a league rule.
func ClassifyOutcomes(season []EnrichedRecord) []OutcomeRecord {
	out := make([]OutcomeRecord, len(season))
	for i, r := range season {
		o, inferred := classifyOutcome(r, season)
		out[i] = OutcomeRecord{EnrichedRecord: r, Outcome: o, Inferred: inferred}
	}
	return out
}

func classifyOutcome(r EnrichedRecord, season []EnrichedRecord) (Outcome, bool) {
	switch {
	case r.WonWorldSeries:
		return OutcomeWorldSeries, false
	case isSet(r.WonLeague):
		return OutcomeWonLeague, false
	case !r.MadePostseason:
		return OutcomeNoPlayoffs, false
	case isSet(r.DivisionWinner):
		return OutcomeDivisionWinner, false
	case isSet(r.Wildcard):
		return OutcomeWildcard, false
	}
	for _, other := range season {
		if other.Division == r.Division && other.TeamCode != r.TeamCode && other.Wins > r.Wins {
			return OutcomeWildcard, true
		}
	}
	return OutcomeDivisionWinner, true
}

func isSet(b *bool) bool {
	return b != nil && *b
}
