package dataset

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffYear,Team,Team Name,League (National or American),Divison,Total Payroll Allocation,Wins,Postseason (Yes/No),Won World Series (Yes/No),Earned Run Average\n" +
	`2023,TEX,Texas Rangers,AL,AL West,"$191,245,000",90,Y,Y,4.28` + "\n" +
	`2023,OAK,Oakland Athletics,AL,AL West,56781000,50,N,N,` + "\n" +
	",,,,,,,,,\n"

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2, "blank lines dropped")

	assert.Equal(t, "2023", rows[0][ColYear], "byte order mark stripped from first header")
	assert.Equal(t, "$191,245,000", rows[0][ColPayroll])
	_, ok := rows[1][ColERA]
	assert.False(t, ok, "blank cell is absent")
}

func TestReadCSV_Empty(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDecodeCSV(t *testing.T) {
	recs, err := DecodeCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.InDelta(t, 191_245_000.0, recs[0].TotalPayroll, 1e-6)
	require.NotNil(t, recs[0].ERA)
	assert.Nil(t, recs[1].ERA)
}

func TestConvertCSV(t *testing.T) {
	var buf bytes.Buffer
	n, err := ConvertCSV(strings.NewReader(sampleCSV), &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, 2023.0, rows[0][ColYear], "numeric cells become numbers")
	assert.Equal(t, "$191,245,000", rows[0][ColPayroll], "formatted money stays a string")
	assert.Equal(t, 56781000.0, rows[1][ColPayroll])

	recs, err := DecodeJSON(&buf)
	require.NoError(t, err, "converted output reads back through the JSON decoder")
	assert.Len(t, recs, 2)
}

func TestConvertCSV_BaseballNumberFormats(t *testing.T) {
	in := strings.Join([]string{
		"Year,Team,Team Name,League (National or American),Divison,Total Payroll Allocation,Wins,Postseason (Yes/No),Won World Series (Yes/No),On-Base+Slugging Percentage,Earned Run Average",
		"2024,NYY,New York Yankees,AL,AL East,\"$300,000,000\",094,Y,N,.750,+3.50",
	}, "\n") + "\n"

	var buf bytes.Buffer
	n, err := ConvertCSV(strings.NewReader(in), &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 0.75, rows[0][ColOPS])
	assert.Equal(t, 3.5, rows[0][ColERA])
	assert.Equal(t, 94.0, rows[0][ColWins])

	recs, err := DecodeJSON(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].OPS)
	assert.InDelta(t, 0.75, *recs[0].OPS, 1e-9)
	require.NotNil(t, recs[0].ERA)
	assert.InDelta(t, 3.5, *recs[0].ERA, 1e-9)
	assert.Equal(t, 94, recs[0].Wins)

	direct, err := DecodeCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, recs, direct, "converted JSON and the CSV decoder agree")
}
