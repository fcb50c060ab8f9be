package payroll

import (
	"encoding/json"
	"slices"
	"strconv"
)

// YearlyIndex maps a season to its enriched records. Within a season the
// records keep their source order.
type YearlyIndex struct {
	years  []int
	byYear map[int][]EnrichedRecord
}

// GroupByYear partitions records by season. No record is dropped or
// duplicated.
func GroupByYear(records []EnrichedRecord) YearlyIndex {
	idx := YearlyIndex{byYear: make(map[int][]EnrichedRecord)}
	for _, r := range records {
		if _, ok := idx.byYear[r.Year]; !ok {
			idx.years = append(idx.years, r.Year)
		}
		idx.byYear[r.Year] = append(idx.byYear[r.Year], r)
	}
	slices.Sort(idx.years)
	return idx
}

// Years returns the available seasons in ascending order.
func (y YearlyIndex) Years() []int {
	return slices.Clone(y.years)
}

// Latest returns the most recent season, or false for an empty index.
func (y YearlyIndex) Latest() (int, bool) {
	if len(y.years) == 0 {
		return 0, false
	}
	return y.years[len(y.years)-1], true
}

// Season returns a copy of the records for year. The boolean is false when
// the year has no data; the slice is then empty, not nil.
func (y YearlyIndex) Season(year int) ([]EnrichedRecord, bool) {
	recs, ok := y.byYear[year]
	if !ok {
		return []EnrichedRecord{}, false
	}
	return slices.Clone(recs), true
}

// Len is the total number of records across all seasons.
func (y YearlyIndex) Len() int {
	n := 0
	for _, recs := range y.byYear {
		n += len(recs)
	}
	return n
}

// MarshalJSON encodes the index as an object keyed by year.
func (y YearlyIndex) MarshalJSON() ([]byte, error) {
	out := make(map[string][]EnrichedRecord, len(y.byYear))
	for year, recs := range y.byYear {
		out[strconv.Itoa(year)] = recs
	}
	return json.Marshal(out)
}
