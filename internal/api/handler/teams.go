package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/albapepper/mlb-payroll/internal/cache"
	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// TeamsResponse lists team summaries, optionally filtered by league.
type TeamsResponse struct {
	League payroll.League        `json:"league"`
	Count  int                   `json:"count"`
	Teams  []payroll.TeamSummary `json:"teams"`
}

// TeamOptionsResponse feeds the team selector.
type TeamOptionsResponse struct {
	Count   int                  `json:"count"`
	Options []payroll.TeamOption `json:"options"`
}

// TeamSearchResponse is a fuzzy search result, best match first.
type TeamSearchResponse struct {
	Query string                `json:"query"`
	Count int                   `json:"count"`
	Teams []payroll.TeamSummary `json:"teams"`
}

// TeamDetailResponse is everything the team detail view shows.
type TeamDetailResponse struct {
	Team            payroll.TeamSummary    `json:"team"`
	Color           string                 `json:"color"`
	SpendingHistory []payroll.SpendingRank `json:"spendingHistory"`
	// Efficiency is null when the team has no defined cost per win.
	Efficiency *payroll.Assessment `json:"efficiency"`
}

// GetTeams lists team summaries.
// @Summary List teams
// @Description Returns one multi-season summary per team in first-appearance order. Monetary averages are in dollars.
// @Tags teams
// @Produce json
// @Param league query string false "League filter" Enums(AL, NL, All)
// @Success 200 {object} TeamsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	league, err := leagueParam(r)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	h.serveCached(w, r, "teams:"+string(league), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		teams := payroll.FilterLeague(ds.Teams, league)
		return TeamsResponse{League: league, Count: len(teams), Teams: teams}, nil
	})
}

// GetTeamOptions returns the team selector entries.
// @Summary Team selector options
// @Description Returns every team sorted by name with its code and chart colour.
// @Tags teams
// @Produce json
// @Success 200 {object} TeamOptionsResponse
// @Router /teams/options [get]
func (h *Handler) GetTeamOptions(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "team-options", cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		opts := payroll.TeamOptions(ds.Teams)
		return TeamOptionsResponse{Count: len(opts), Options: opts}, nil
	})
}

// SearchTeams fuzzy-matches team names and codes.
// @Summary Search teams
// @Description Fuzzy-matches the query against team names and codes, best match first.
// @Tags teams
// @Produce json
// @Param q query string true "Search text"
// @Param limit query int false "Maximum results (default 10)"
// @Success 200 {object} TeamSearchResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /teams/search [get]
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respond400(w, "MISSING_QUERY", "q query parameter is required")
		return
	}
	limit, err := limitParam(r, 10, 30)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	key := fmt.Sprintf("search:%d:%s", limit, strings.ToLower(q))
	h.serveCached(w, r, key, cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		teams := payroll.SearchTeams(ds.Teams, q, limit)
		return TeamSearchResponse{Query: q, Count: len(teams), Teams: teams}, nil
	})
}

// GetTeam returns one team's summary, spending history and efficiency
// assessment.
// @Summary Team detail
// @Description Looks a team up by code or display name (case-insensitive).
// @Tags teams
// @Produce json
// @Param code path string true "Team code or name"
// @Success 200 {object} TeamDetailResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /teams/{code} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	key := pathParam(r, "code")
	h.serveCached(w, r, "team:"+strings.ToLower(key), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		team, ok := ds.Team(key)
		if !ok {
			return nil, notFound("TEAM_NOT_FOUND", fmt.Sprintf("No team matches %q", key))
		}
		resp := TeamDetailResponse{
			Team:            team,
			Color:           payroll.TeamColor(team.TeamCode),
			SpendingHistory: ds.SpendingHistory(team),
		}
		if a, ok := payroll.AssessEfficiency(ds.Teams, team.Team); ok {
			resp.Efficiency = &a
		}
		return resp, nil
	})
}

func respond400(w http.ResponseWriter, code, message string) {
	writeAPIError(w, badRequest(code, message))
}
