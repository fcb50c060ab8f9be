package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/albapepper/mlb-payroll/internal/payroll"
)

// ReadCSV reads a spreadsheet CSV export into rows keyed by the header line.
// Blank cells are left out of the row so optional columns read as absent.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := []Row{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		row := make(Row, len(header))
		blank := true
		for i, cell := range rec {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			blank = false
			row[header[i]] = cell
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// DecodeCSV reads a CSV export and maps it onto season records.
func DecodeCSV(r io.Reader) ([]payroll.SeasonRecord, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return nil, err
	}
	return ParseRows(rows)
}

// ConvertCSV rewrites a CSV export as the flat JSON row array the file
// source reads. Plain numeric cells become JSON numbers in canonical form
// (".750" is written as 0.75); everything else, including
// currency-formatted payrolls, stays a string.
func ConvertCSV(r io.Reader, w io.Writer) (int, error) {
	rows, err := ReadCSV(r)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		for k, v := range row {
			s, ok := v.(string)
			if !ok {
				continue
			}
			if d, err := decimal.NewFromString(s); err == nil {
				row[k] = json.Number(d.String())
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return 0, fmt.Errorf("encode json rows: %w", err)
	}
	return len(rows), nil
}
