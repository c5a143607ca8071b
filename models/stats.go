package models

// StatsResponse is the envelope stats.nba.com returns from /scoreboardv2.
// Rows are positional arrays; the Headers slice names each column but the
// transform relies on fixed indices rather than header lookup (the upstream
// column order is a de-facto contract).
type StatsResponse struct {
	Resource   string      `json:"resource"`
	Parameters any         `json:"parameters"`
	ResultSets []ResultSet `json:"resultSets"`
}

// ResultSet is one named table within a stats API response.
type ResultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}
