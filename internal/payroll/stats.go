package payroll

import "gonum.org/v1/gonum/stat"

// mean returns the arithmetic mean, or 0 for no data.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}

// optionalMean returns nil when there is nothing to average, so a missing
// value can never masquerade as zero.
func optionalMean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	m := stat.Mean(xs, nil)
	return &m
}

func scaled(v *float64, div float64) *float64 {
	if v == nil {
		return nil
	}
	s := *v / div
	return &s
}
