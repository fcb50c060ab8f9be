// Package seed provides database upsert orchestration for season records.
package seed

import "fmt"

// SeedResult tracks counts and errors from a seeding operation.
type SeedResult struct {
	RecordsUpserted int
	SeasonsSeeded   int
	Errors          []string
}

// Add merges another SeedResult into this one.
func (r *SeedResult) Add(other SeedResult) {
	r.RecordsUpserted += other.RecordsUpserted
	r.SeasonsSeeded += other.SeasonsSeeded
	r.Errors = append(r.Errors, other.Errors...)
}

// AddError records an error message.
func (r *SeedResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *SeedResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *SeedResult) Summary() string {
	return fmt.Sprintf(
		"seasons=%d records=%d errors=%d",
		r.SeasonsSeeded, r.RecordsUpserted, len(r.Errors),
	)
}
