package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/faqbot/internal/db"
	"github.com/alexanderramin/faqbot/internal/domain"
)

// SQLUnansweredRepo implements UnansweredRepo for SQLite and PostgreSQL.
type SQLUnansweredRepo struct {
	db      db.DBTX
	dialect db.Dialect
}

func NewSQLUnansweredRepo(conn db.DBTX, dialect db.Dialect) *SQLUnansweredRepo {
	return &SQLUnansweredRepo{db: conn, dialect: dialect}
}

func (r *SQLUnansweredRepo) Create(ctx context.Context, q *domain.UnansweredQuestion) error {
	query := `INSERT INTO unanswered_questions (id, query, asked_at) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), q.ID, q.Query, formatTime(q.AskedAt))
	if err != nil {
		return fmt.Errorf("inserting unanswered question: %w", err)
	}
	return nil
}

func (r *SQLUnansweredRepo) Import(ctx context.Context, q *domain.UnansweredQuestion) (bool, error) {
	query := `INSERT INTO unanswered_questions (id, query, asked_at) VALUES (?, ?, ?)
		ON CONFLICT (id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query), q.ID, q.Query, formatTime(q.AskedAt))
	if err != nil {
		return false, fmt.Errorf("importing unanswered question: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *SQLUnansweredRepo) GetByID(ctx context.Context, id string) (*domain.UnansweredQuestion, error) {
	query := `SELECT id, query, asked_at FROM unanswered_questions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id)

	q, err := scanUnanswered(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("unanswered question: %w", ErrNotFound)
		}
		return nil, err
	}
	return q, nil
}

func (r *SQLUnansweredRepo) ListRecent(ctx context.Context, limit int) ([]*domain.UnansweredQuestion, error) {
	query, args := limitClause(
		`SELECT id, query, asked_at FROM unanswered_questions ORDER BY asked_at DESC, id`, limit, nil)
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("listing unanswered questions: %w", err)
	}
	defer rows.Close()

	var out []*domain.UnansweredQuestion
	for rows.Next() {
		q, err := scanUnanswered(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unanswered questions: %w", err)
	}
	return out, nil
}

func (r *SQLUnansweredRepo) Summarize(ctx context.Context, limit int) ([]domain.UnansweredSummary, error) {
	query, args := limitClause(`SELECT query, COUNT(*), MIN(asked_at), MAX(asked_at)
		FROM unanswered_questions
		GROUP BY query
		ORDER BY COUNT(*) DESC, MAX(asked_at) DESC, query`, limit, nil)
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("summarizing unanswered questions: %w", err)
	}
	defer rows.Close()

	var out []domain.UnansweredSummary
	for rows.Next() {
		var s domain.UnansweredSummary
		var first, last string
		if err := rows.Scan(&s.Query, &s.Count, &first, &last); err != nil {
			return nil, fmt.Errorf("scanning unanswered summary: %w", err)
		}
		if s.FirstSeen, err = parseTime(first); err != nil {
			return nil, fmt.Errorf("parsing first seen: %w", err)
		}
		if s.LastSeen, err = parseTime(last); err != nil {
			return nil, fmt.Errorf("parsing last seen: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating unanswered summary: %w", err)
	}
	return out, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnanswered(row rowScanner) (*domain.UnansweredQuestion, error) {
	var q domain.UnansweredQuestion
	var askedAt string
	if err := row.Scan(&q.ID, &q.Query, &askedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning unanswered question: %w", err)
	}
	t, err := parseTime(askedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing asked_at: %w", err)
	}
	q.AskedAt = t
	return &q, nil
}
