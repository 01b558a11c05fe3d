package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDialectFor(t *testing.T) {
	assert.Equal(t, Postgres, DialectFor("postgres://faqbot@localhost/faqbot?sslmode=disable"))
	assert.Equal(t, Postgres, DialectFor("PostgreSQL://db/faqbot"))
	assert.Equal(t, SQLite, DialectFor("faqbot.db"))
	assert.Equal(t, SQLite, DialectFor(":memory:"))
}

func TestRebind(t *testing.T) {
	q := `SELECT id FROM feedback WHERE answer = ? AND helpful = ? AND question <> '?'`

	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t,
		`SELECT id FROM feedback WHERE answer = $1 AND helpful = $2 AND question <> '?'`,
		Postgres.Rebind(q))
	assert.Equal(t, "SELECT 1", Postgres.Rebind("SELECT 1"))
}

func TestDialect_String(t *testing.T) {
	assert.Equal(t, "sqlite", SQLite.String())
	assert.Equal(t, "postgres", Postgres.String())
}
