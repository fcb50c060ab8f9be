package payroll

// EnrichedRecord is a SeasonRecord plus the fields derived from it.
//
// CostPerWin is nil for a zero-win season. Every consumer treats a nil value
// as missing: it is left out of means, ranks and plotted series.
type EnrichedRecord struct {
	SeasonRecord

	CostPerWin         *float64 `json:"costPerWin"`
	PayrollMillions    float64  `json:"payrollMillions"`
	CostPerWinMillions *float64 `json:"costPerWinMillions"`
}

// Enrich returns one EnrichedRecord per input record, in input order.
func Enrich(records []SeasonRecord) []EnrichedRecord {
	out := make([]EnrichedRecord, len(records))
	for i, r := range records {
		out[i] = enrich(r)
	}
	return out
}

func enrich(r SeasonRecord) EnrichedRecord {
	e := EnrichedRecord{
		SeasonRecord:    r,
		PayrollMillions: r.TotalPayroll / Million,
	}
	if r.Wins > 0 {
		cpw := r.TotalPayroll / float64(r.Wins)
		cpwm := cpw / Million
		e.CostPerWin = &cpw
		e.CostPerWinMillions = &cpwm
	}
	return e
}
