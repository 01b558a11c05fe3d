package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/faqbot/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const insertUnanswered = `INSERT INTO unanswered_questions (id, query, asked_at) VALUES (?, ?, ?)`

func openTestStore(t *testing.T) (*sql.DB, *db.Store) {
	t.Helper()
	store, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store.DB, store
}

func countUnanswered(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM unanswered_questions`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, store := openTestStore(t)

	err := store.WithinTx(context.Background(), func(ctx context.Context, tx db.Tx) error {
		if _, err := tx.ExecContext(ctx, insertUnanswered, "u1", "xyz", "2025-06-01T10:00:00Z"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertUnanswered, "u2", "abc", "2025-06-01T10:01:00Z")
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 2, countUnanswered(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, store := openTestStore(t)
	errDeliberate := errors.New("deliberate failure")

	err := store.WithinTx(context.Background(), func(ctx context.Context, tx db.Tx) error {
		if _, err := tx.ExecContext(ctx, insertUnanswered, "u1", "xyz", "2025-06-01T10:00:00Z"); err != nil {
			return err
		}
		return errDeliberate
	})
	require.ErrorIs(t, err, errDeliberate)

	assert.Equal(t, 0, countUnanswered(t, database), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, store := openTestStore(t)

	assert.Panics(t, func() {
		_ = store.WithinTx(context.Background(), func(ctx context.Context, tx db.Tx) error {
			_, _ = tx.ExecContext(ctx, insertUnanswered, "u1", "xyz", "2025-06-01T10:00:00Z")
			panic("boom")
		})
	})

	assert.Equal(t, 0, countUnanswered(t, database), "row should not exist after panic rollback")
}

func TestWithinTx_PassesDialect(t *testing.T) {
	_, store := openTestStore(t)

	var got db.Dialect = -1
	err := store.WithinTx(context.Background(), func(ctx context.Context, tx db.Tx) error {
		got = tx.Dialect
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, db.SQLite, got)
}

func TestWithinTx_RollbackOnStatementError(t *testing.T) {
	database, store := openTestStore(t)

	err := store.WithinTx(context.Background(), func(ctx context.Context, tx db.Tx) error {
		if _, err := tx.ExecContext(ctx, insertUnanswered, "u1", "xyz", "2025-06-01T10:00:00Z"); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, insertUnanswered, "u1", "dup", "2025-06-01T10:00:00Z")
		return err
	})
	require.Error(t, err, "second insert reuses the primary key")

	assert.Equal(t, 0, countUnanswered(t, database))
}
