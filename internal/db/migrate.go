package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent, so
// the full set runs on each open.
func Migrate(db *sql.DB, dialect Dialect) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(dialect.Rebind(stmt)); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Timestamps are stored as RFC 3339 text in UTC so both dialects sort and
// compare them the same way.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS unanswered_questions (
		id       TEXT PRIMARY KEY,
		query    TEXT NOT NULL,
		asked_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_unanswered_query ON unanswered_questions(query)`,
	`CREATE INDEX IF NOT EXISTS idx_unanswered_asked_at ON unanswered_questions(asked_at)`,

	`CREATE TABLE IF NOT EXISTS feedback (
		id          TEXT PRIMARY KEY,
		question    TEXT NOT NULL,
		answer      TEXT NOT NULL,
		helpful     INTEGER NOT NULL CHECK(helpful IN (0, 1)),
		recorded_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_feedback_answer ON feedback(answer)`,
	`CREATE INDEX IF NOT EXISTS idx_feedback_recorded_at ON feedback(recorded_at)`,
}
