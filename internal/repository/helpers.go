package repository

import (
	"time"
)

// timeLayout is the storage format for every timestamp column. UTC values
// in this layout sort lexicographically in both dialects.
const timeLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(timeLayout, s)
}

// boolToInt converts a Go bool to the 0/1 integer stored in the database.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

// limitClause appends a LIMIT placeholder when limit is positive.
func limitClause(query string, limit int, args []any) (string, []any) {
	if limit <= 0 {
		return query, args
	}
	return query + " LIMIT ?", append(args, limit)
}
