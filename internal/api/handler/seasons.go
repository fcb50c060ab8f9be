package handler

import (
	"fmt"
	"net/http"

	"github.com/albapepper/mlb-payroll/internal/cache"
	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// DefaultTopPayrolls is the payroll chart's default bar count.
const DefaultTopPayrolls = 15

// SeasonsResponse lists the available seasons.
type SeasonsResponse struct {
	Years  []int `json:"years"`
	Latest int   `json:"latest"`
}

// SeasonResponse is a year's records. An unknown year yields count 0.
type SeasonResponse struct {
	Year    int                      `json:"year"`
	Count   int                      `json:"count"`
	Records []payroll.EnrichedRecord `json:"records"`
}

// OutcomesResponse classifies every team of a season by postseason result.
type OutcomesResponse struct {
	Year     int                     `json:"year"`
	Count    int                     `json:"count"`
	Outcomes []payroll.OutcomeRecord `json:"outcomes"`
	Totals   []OutcomeTotal          `json:"totals"`
}

// OutcomeTotal counts teams per outcome, every outcome present.
type OutcomeTotal struct {
	Outcome payroll.Outcome `json:"name"`
	Count   int             `json:"value"`
}

// DivisionsResponse compares divisions within a season.
type DivisionsResponse struct {
	Year      int                    `json:"year"`
	Count     int                    `json:"count"`
	Divisions []payroll.DivisionStat `json:"divisions"`
}

// LeaguesResponse splits a season's payroll by league.
type LeaguesResponse struct {
	Year    int                   `json:"year"`
	Count   int                   `json:"count"`
	Leagues []payroll.LeagueSpend `json:"leagues"`
}

// RecordsResponse is every enriched record in source order.
type RecordsResponse struct {
	Count   int                      `json:"count"`
	Records []payroll.EnrichedRecord `json:"records"`
}

// GetSeasons lists available seasons.
// @Summary List seasons
// @Description Returns the available seasons in ascending order and the latest one.
// @Tags seasons
// @Produce json
// @Success 200 {object} SeasonsResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /seasons [get]
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "seasons", cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		latest, _ := ds.Yearly.Latest()
		return SeasonsResponse{Years: ds.Years(), Latest: latest}, nil
	})
}

// GetSeason returns a year's enriched records.
// @Summary Season records
// @Description Returns every team record of a season in source order. An unknown year returns an empty list.
// @Tags seasons
// @Produce json
// @Param year path int true "Season year"
// @Success 200 {object} SeasonResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /seasons/{year} [get]
func (h *Handler) GetSeason(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	h.serveCached(w, r, fmt.Sprintf("season:%d", year), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		recs, _ := ds.Season(year)
		return SeasonResponse{Year: year, Count: len(recs), Records: recs}, nil
	})
}

// GetSeasonPayrolls returns a season's highest payrolls.
// @Summary Top payrolls
// @Description Returns a season's records sorted by payroll, highest first.
// @Tags seasons
// @Produce json
// @Param year path int true "Season year"
// @Param limit query int false "Number of teams (default 15)"
// @Success 200 {object} SeasonResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /seasons/{year}/payrolls [get]
func (h *Handler) GetSeasonPayrolls(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	limit, err := limitParam(r, DefaultTopPayrolls, 100)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	h.serveCached(w, r, fmt.Sprintf("payrolls:%d:%d", year, limit), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		recs, _ := ds.Season(year)
		top := payroll.TopPayrolls(recs, limit)
		return SeasonResponse{Year: year, Count: len(top), Records: top}, nil
	})
}

// GetSeasonOutcomes classifies a season's postseason outcomes.
// @Summary Season outcomes
// @Description Classifies every team of a season as World Series winner, pennant winner, division winner, wildcard or no playoffs. Outcomes derived from wins are flagged as inferred.
// @Tags seasons
// @Produce json
// @Param year path int true "Season year"
// @Success 200 {object} OutcomesResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /seasons/{year}/outcomes [get]
func (h *Handler) GetSeasonOutcomes(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	h.serveCached(w, r, fmt.Sprintf("outcomes:%d", year), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		recs, _ := ds.Season(year)
		outcomes := payroll.ClassifyOutcomes(recs)

		counts := make(map[payroll.Outcome]int, len(payroll.Outcomes))
		for _, o := range outcomes {
			counts[o.Outcome]++
		}
		totals := make([]OutcomeTotal, len(payroll.Outcomes))
		for i, o := range payroll.Outcomes {
			totals[i] = OutcomeTotal{Outcome: o, Count: counts[o]}
		}
		return OutcomesResponse{Year: year, Count: len(outcomes), Outcomes: outcomes, Totals: totals}, nil
	})
}

// GetSeasonDivisions compares divisions within a season.
// @Summary Division comparison
// @Description Returns average payroll (millions) and average wins per division.
// @Tags seasons
// @Produce json
// @Param year path int true "Season year"
// @Success 200 {object} DivisionsResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /seasons/{year}/divisions [get]
func (h *Handler) GetSeasonDivisions(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	h.serveCached(w, r, fmt.Sprintf("divisions:%d", year), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		recs, _ := ds.Season(year)
		divs := payroll.DivisionComparison(recs)
		return DivisionsResponse{Year: year, Count: len(divs), Divisions: divs}, nil
	})
}

// GetSeasonLeagues splits a season's payroll by league.
// @Summary League spending
// @Description Returns each league's total payroll (millions) and share of the season total.
// @Tags seasons
// @Produce json
// @Param year path int true "Season year"
// @Success 200 {object} LeaguesResponse
// @Failure 400 {object} respond.ErrorResponse
// @Router /seasons/{year}/leagues [get]
func (h *Handler) GetSeasonLeagues(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		writeAPIError(w, err)
		return
	}
	h.serveCached(w, r, fmt.Sprintf("leagues:%d", year), cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		recs, _ := ds.Season(year)
		leagues := payroll.LeagueSpending(recs)
		return LeaguesResponse{Year: year, Count: len(leagues), Leagues: leagues}, nil
	})
}

// GetRecords returns every enriched record.
// @Summary All records
// @Description Returns every enriched season record in source order.
// @Tags seasons
// @Produce json
// @Success 200 {object} RecordsResponse
// @Failure 503 {object} respond.ErrorResponse
// @Router /records [get]
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	h.serveCached(w, r, "records", cache.TTLDerived, func(ds *payroll.Dataset) (any, error) {
		return RecordsResponse{Count: len(ds.Records), Records: ds.Records}, nil
	})
}
