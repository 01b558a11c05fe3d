package db

import (
	"context"
	"database/sql"
)

// DBTX is what the curation repositories query through. Report queries get
// the *sql.DB of a Store; the log import hands them the transaction inside
// a Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
	_ DBTX = Tx{}
)
