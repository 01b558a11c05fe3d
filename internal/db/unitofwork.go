package db

import (
	"context"
	"errors"
	"fmt"
)

// Tx is the handle passed to a unit of work: the open transaction and the
// dialect its queries are rebound for. Repositories built from it write
// into the same transaction.
type Tx struct {
	DBTX
	Dialect Dialect
}

// UnitOfWork runs fn in a single transaction. The log import relies on it
// to write both the unanswered and the feedback tables or neither: any
// error returned by fn, or a panic, rolls everything back.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

var _ UnitOfWork = (*Store)(nil)

// WithinTx implements UnitOfWork on the curation store.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) (err error) {
	sqlTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning %s transaction: %w", s.Dialect, err)
	}

	finished := false
	defer func() {
		if finished {
			return
		}
		// Also reached while panicking; the panic keeps unwinding.
		if rbErr := sqlTx.Rollback(); rbErr != nil && err != nil {
			err = errors.Join(err, fmt.Errorf("rolling back: %w", rbErr))
		}
	}()

	if err = fn(ctx, Tx{DBTX: sqlTx, Dialect: s.Dialect}); err != nil {
		return err
	}

	err = sqlTx.Commit()
	finished = true
	if err != nil {
		return fmt.Errorf("committing %s transaction: %w", s.Dialect, err)
	}
	return nil
}
