package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// ErrMalformedRow wraps every row-level parse failure.
var ErrMalformedRow = errors.New("malformed row")

// Row is one spreadsheet row keyed by header name. Values are strings,
// json.Number, float64, int or bool depending on where the row came from.
type Row map[string]any

// DecodeJSON reads a JSON array of rows and maps it onto season records.
func DecodeJSON(r io.Reader) ([]payroll.SeasonRecord, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode json rows: %w", err)
	}
	return ParseRows(rows)
}

// ParseRows converts every row, reporting all malformed rows together.
// Nothing is returned unless every row parses.
func ParseRows(rows []Row) ([]payroll.SeasonRecord, error) {
	out := make([]payroll.SeasonRecord, 0, len(rows))
	var errs []error
	for i, row := range rows {
		rec, err := parseRow(row)
		if err != nil {
			// Row numbers are 1-based and skip the header, like a spreadsheet.
			errs = append(errs, fmt.Errorf("row %d: %w", i+2, err))
			continue
		}
		out = append(out, rec)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

func parseRow(row Row) (payroll.SeasonRecord, error) {
	var (
		rec  payroll.SeasonRecord
		errs []error
	)
	fail := func(col string, err error) {
		errs = append(errs, fmt.Errorf("%w: column %q: %v", ErrMalformedRow, col, err))
	}

	if year, err := requiredInt(row, ColYear); err != nil {
		fail(ColYear, err)
	} else {
		rec.Year = year
	}

	if code, err := requiredString(row, ColTeamCode); err != nil {
		fail(ColTeamCode, err)
	} else {
		rec.TeamCode = strings.ToUpper(code)
	}

	if name, err := requiredString(row, ColTeamName); err != nil {
		fail(ColTeamName, err)
	} else {
		rec.TeamName = name
	}

	if raw, err := requiredString(row, ColLeague); err != nil {
		fail(ColLeague, err)
	} else if league, err := payroll.ParseLeague(raw); err != nil || league == payroll.LeagueAll {
		fail(ColLeague, fmt.Errorf("want AL or NL, got %q", raw))
	} else {
		rec.League = league
	}

	divCol := ColDivision
	if _, ok := row[divCol]; !ok {
		divCol = ColDivisionAlt
	}
	if div, err := requiredString(row, divCol); err != nil {
		fail(ColDivision, err)
	} else {
		rec.Division = div
	}

	if d, ok, err := number(row[ColPayroll]); err != nil {
		fail(ColPayroll, err)
	} else if !ok {
		fail(ColPayroll, errMissing)
	} else {
		rec.TotalPayroll = d.InexactFloat64()
	}

	if wins, err := requiredInt(row, ColWins); err != nil {
		fail(ColWins, err)
	} else {
		rec.Wins = wins
	}

	if v, ok, err := flag(row[ColPostseason]); err != nil || !ok {
		fail(ColPostseason, orMissing(err))
	} else {
		rec.MadePostseason = v
	}

	if v, ok, err := flag(row[ColWorldSeries]); err != nil || !ok {
		fail(ColWorldSeries, orMissing(err))
	} else {
		rec.WonWorldSeries = v
	}

	for _, opt := range []struct {
		col string
		dst **bool
	}{
		{ColWonLeague, &rec.WonLeague},
		{ColDivisionWinner, &rec.DivisionWinner},
		{ColWildcard, &rec.Wildcard},
	} {
		v, ok, err := flag(row[opt.col])
		switch {
		case err != nil:
			fail(opt.col, err)
		case ok:
			*opt.dst = &v
		}
	}

	for _, opt := range []struct {
		col string
		dst **float64
	}{
		{ColOPS, &rec.OPS},
		{ColERA, &rec.ERA},
	} {
		d, ok, err := number(row[opt.col])
		switch {
		case err != nil:
			fail(opt.col, err)
		case ok:
			f := d.InexactFloat64()
			*opt.dst = &f
		}
	}

	if len(errs) > 0 {
		return payroll.SeasonRecord{}, errors.Join(errs...)
	}
	return rec, nil
}

var errMissing = errors.New("missing value")

func orMissing(err error) error {
	if err != nil {
		return err
	}
	return errMissing
}

func requiredString(row Row, col string) (string, error) {
	v, ok := row[col]
	if !ok || v == nil {
		return "", errMissing
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "" {
		return "", errMissing
	}
	return s, nil
}

func requiredInt(row Row, col string) (int, error) {
	d, ok, err := number(row[col])
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errMissing
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("want a whole number, got %s", d)
	}
	return int(d.IntPart()), nil
}

// number parses a numeric cell. Strings may carry currency symbols and
// thousands separators. ok is false when the cell is absent or blank.
func number(v any) (d decimal.Decimal, ok bool, err error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, false, nil
	case json.Number:
		d, err = decimal.NewFromString(n.String())
	case float64:
		d = decimal.NewFromFloat(n)
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case string:
		s := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(n))
		if s == "" {
			return decimal.Zero, false, nil
		}
		d, err = decimal.NewFromString(s)
	default:
		return decimal.Zero, false, fmt.Errorf("unsupported numeric value %v (%T)", v, v)
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("not a number: %v", v)
	}
	return d, true, nil
}

// flag parses a Y/N cell. ok is false when the cell is absent or blank.
func flag(v any) (val, ok bool, err error) {
	switch f := v.(type) {
	case nil:
		return false, false, nil
	case bool:
		return f, true, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "":
			return false, false, nil
		case "y", "yes", "true":
			return true, true, nil
		case "n", "no", "false":
			return false, true, nil
		}
	}
	return false, false, fmt.Errorf("want Y or N, got %v", v)
}
