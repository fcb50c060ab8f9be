// Package dataset loads raw season rows from a spreadsheet export (JSON or
// CSV) held on disk, behind a URL, in S3 or in Postgres, and maps them onto
// payroll.SeasonRecord.
package dataset

// Spreadsheet header names. The division header is misspelled in the
// published export; the corrected spelling is accepted too.
const (
	ColYear           = "Year"
	ColTeamCode       = "Team"
	ColTeamName       = "Team Name"
	ColLeague         = "League (National or American)"
	ColDivision       = "Divison"
	ColDivisionAlt    = "Division"
	ColPayroll        = "Total Payroll Allocation"
	ColWins           = "Wins"
	ColPostseason     = "Postseason (Yes/No)"
	ColWorldSeries    = "Won World Series (Yes/No)"
	ColWonLeague      = "Won League (Yes/No)"
	ColDivisionWinner = "Division Winner (Yes/No)"
	ColWildcard       = "Wildcard (Yes/No)"
	ColOPS            = "On-Base+Slugging Percentage"
	ColERA            = "Earned Run Average"
)

// RequiredColumns must be present on every row.
var RequiredColumns = []string{
	ColYear, ColTeamCode, ColTeamName, ColLeague, ColDivision,
	ColPayroll, ColWins, ColPostseason, ColWorldSeries,
}
