package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/mlb-payroll/internal/payroll"
)

func TestWriteSummary(t *testing.T) {
	ds, err := payroll.DeriveAll([]payroll.SeasonRecord{
		{Year: 2024, TeamCode: "NYY", TeamName: "New York Yankees", League: payroll.LeagueAmerican, Division: "AL East", TotalPayroll: 300 * payroll.Million, Wins: 94},
		{Year: 2024, TeamCode: "TB", TeamName: "Tampa Bay Rays", League: payroll.LeagueAmerican, Division: "AL East", TotalPayroll: 90 * payroll.Million, Wins: 80},
		{Year: 2024, TeamCode: "COL", TeamName: "Colorado Rockies", League: payroll.LeagueNational, Division: "NL West", TotalPayroll: 150 * payroll.Million, Wins: 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSummary(&buf, ds, payroll.LeagueAll))
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.True(t, strings.HasPrefix(lines[0], "RANK"))
	assert.Contains(t, lines[1], "Tampa Bay Rays")
	assert.Contains(t, lines[1], "$1,125,000")
	assert.Contains(t, lines[2], "New York Yankees")
	assert.Contains(t, lines[3], "Colorado Rockies")
	assert.Contains(t, lines[3], "n/a")
	assert.Contains(t, out, "3 teams (All)")

	buf.Reset()
	require.NoError(t, writeSummary(&buf, ds, payroll.LeagueNational))
	assert.NotContains(t, buf.String(), "Yankees")
	assert.Contains(t, buf.String(), "avg cost per win n/a")
}
