package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/faqbot/internal/db"
	"github.com/alexanderramin/faqbot/internal/domain"
)

// SQLFeedbackRepo implements FeedbackRepo for SQLite and PostgreSQL.
type SQLFeedbackRepo struct {
	db      db.DBTX
	dialect db.Dialect
}

func NewSQLFeedbackRepo(conn db.DBTX, dialect db.Dialect) *SQLFeedbackRepo {
	return &SQLFeedbackRepo{db: conn, dialect: dialect}
}

func (r *SQLFeedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (id, question, answer, helpful, recorded_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		f.ID, f.Question, f.Answer, boolToInt(f.Helpful), formatTime(f.RecordedAt))
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}

func (r *SQLFeedbackRepo) Import(ctx context.Context, f *domain.Feedback) (bool, error) {
	query := `INSERT INTO feedback (id, question, answer, helpful, recorded_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`
	res, err := r.db.ExecContext(ctx, r.dialect.Rebind(query),
		f.ID, f.Question, f.Answer, boolToInt(f.Helpful), formatTime(f.RecordedAt))
	if err != nil {
		return false, fmt.Errorf("importing feedback: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reading rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *SQLFeedbackRepo) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	query := `SELECT id, question, answer, helpful, recorded_at FROM feedback WHERE id = ?`
	row := r.db.QueryRowContext(ctx, r.dialect.Rebind(query), id)

	f, err := scanFeedback(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feedback: %w", ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

func (r *SQLFeedbackRepo) ListRecent(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	query, args := limitClause(
		`SELECT id, question, answer, helpful, recorded_at FROM feedback ORDER BY recorded_at DESC, id`, limit, nil)
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()

	var out []*domain.Feedback
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}
	return out, nil
}

func (r *SQLFeedbackRepo) Summarize(ctx context.Context) ([]domain.FeedbackSummary, error) {
	query := `SELECT answer,
			SUM(CASE WHEN helpful = 1 THEN 1 ELSE 0 END),
			SUM(CASE WHEN helpful = 0 THEN 1 ELSE 0 END)
		FROM feedback
		GROUP BY answer
		ORDER BY COUNT(*) DESC, answer`
	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query))
	if err != nil {
		return nil, fmt.Errorf("summarizing feedback: %w", err)
	}
	defer rows.Close()

	var out []domain.FeedbackSummary
	for rows.Next() {
		var s domain.FeedbackSummary
		if err := rows.Scan(&s.Answer, &s.Helpful, &s.NotHelpful); err != nil {
			return nil, fmt.Errorf("scanning feedback summary: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback summary: %w", err)
	}
	return out, nil
}

func scanFeedback(row rowScanner) (*domain.Feedback, error) {
	var f domain.Feedback
	var helpful int
	var recordedAt string
	if err := row.Scan(&f.ID, &f.Question, &f.Answer, &helpful, &recordedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning feedback: %w", err)
	}
	t, err := parseTime(recordedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing recorded_at: %w", err)
	}
	f.Helpful = intToBool(helpful)
	f.RecordedAt = t
	return &f, nil
}
