package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/faqbot/internal/db"
	"github.com/alexanderramin/faqbot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUnansweredRepo(t *testing.T) *SQLUnansweredRepo {
	t.Helper()
	return NewSQLUnansweredRepo(testutil.NewTestDB(t), db.SQLite)
}

func TestUnansweredRepo_CreateAndGetByID(t *testing.T) {
	repo := newUnansweredRepo(t)
	ctx := context.Background()
	askedAt := time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC)

	q := testutil.NewTestUnanswered("xyz123 nonsense", testutil.WithAskedAt(askedAt))
	require.NoError(t, repo.Create(ctx, q))

	fetched, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "xyz123 nonsense", fetched.Query)
	assert.True(t, askedAt.Equal(fetched.AskedAt))
}

func TestUnansweredRepo_GetByID_NotFound(t *testing.T) {
	repo := newUnansweredRepo(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnansweredRepo_CreateDuplicateID(t *testing.T) {
	repo := newUnansweredRepo(t)
	ctx := context.Background()

	q := testutil.NewTestUnanswered("xyz")
	require.NoError(t, repo.Create(ctx, q))
	assert.Error(t, repo.Create(ctx, q))
}

func TestUnansweredRepo_ImportSkipsExisting(t *testing.T) {
	repo := newUnansweredRepo(t)
	ctx := context.Background()

	q := testutil.NewTestUnanswered("xyz", testutil.WithUnansweredID("fixed-id"))
	inserted, err := repo.Import(ctx, q)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Import(ctx, q)
	require.NoError(t, err)
	assert.False(t, inserted)

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUnansweredRepo_ListRecent(t *testing.T) {
	repo := newUnansweredRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for i, query := range []string{"first", "second", "third"} {
		q := testutil.NewTestUnanswered(query, testutil.WithAskedAt(base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, repo.Create(ctx, q))
	}

	all, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Query)
	assert.Equal(t, "first", all[2].Query)

	limited, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestUnansweredRepo_Summarize(t *testing.T) {
	repo := newUnansweredRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	records := []struct {
		query  string
		offset time.Duration
	}{
		{"do you sell shoes", 0},
		{"price of kente", time.Hour},
		{"do you sell shoes", 2 * time.Hour},
		{"do you sell shoes", 3 * time.Hour},
		{"gift cards", 4 * time.Hour},
	}
	for _, r := range records {
		require.NoError(t, repo.Create(ctx, testutil.NewTestUnanswered(r.query, testutil.WithAskedAt(base.Add(r.offset)))))
	}

	summary, err := repo.Summarize(ctx, 0)
	require.NoError(t, err)
	require.Len(t, summary, 3)

	assert.Equal(t, "do you sell shoes", summary[0].Query)
	assert.Equal(t, 3, summary[0].Count)
	assert.True(t, base.Equal(summary[0].FirstSeen))
	assert.True(t, base.Add(3*time.Hour).Equal(summary[0].LastSeen))

	// Equal counts: most recently seen first.
	assert.Equal(t, "gift cards", summary[1].Query)
	assert.Equal(t, "price of kente", summary[2].Query)

	top, err := repo.Summarize(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestUnansweredRepo_WithinTx(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.Tx) error {
		return NewSQLUnansweredRepo(tx, tx.Dialect).Create(ctx, testutil.NewTestUnanswered("inside tx"))
	})
	require.NoError(t, err)

	all, err := NewSQLUnansweredRepo(database, db.SQLite).ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "inside tx", all[0].Query)
}
