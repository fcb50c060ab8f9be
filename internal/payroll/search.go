package payroll

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// teamSource implements fuzzy.Source over team names and codes.
type teamSource []TeamSummary

func (s teamSource) String(i int) string {
	return strings.ToLower(s[i].Team + " " + s[i].TeamCode)
}

func (s teamSource) Len() int {
	return len(s)
}

// SearchTeams fuzzy-matches query against team names and codes, best match
// first. An empty query matches nothing. limit <= 0 means no limit.
func SearchTeams(teams []TeamSummary, query string, limit int) []TeamSummary {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []TeamSummary{}
	}

	matches := fuzzy.FindFrom(query, teamSource(teams))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]TeamSummary, len(matches))
	for i, m := range matches {
		out[i] = teams[m.Index]
	}
	return out
}
