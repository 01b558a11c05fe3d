package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/faqbot/internal/domain"
)

var ErrNotFound = errors.New("not found")

// UnansweredRepo stores queries that resolved to a fallback.
type UnansweredRepo interface {
	Create(ctx context.Context, q *domain.UnansweredQuestion) error
	// Import inserts q unless a record with the same ID exists and reports
	// whether it was inserted.
	Import(ctx context.Context, q *domain.UnansweredQuestion) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.UnansweredQuestion, error)
	// ListRecent returns the newest records first. limit <= 0 means all.
	ListRecent(ctx context.Context, limit int) ([]*domain.UnansweredQuestion, error)
	// Summarize groups records by query, most frequent first.
	Summarize(ctx context.Context, limit int) ([]domain.UnansweredSummary, error)
}

// FeedbackRepo stores helpful/not-helpful votes on direct answers.
type FeedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) error
	Import(ctx context.Context, f *domain.Feedback) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Feedback, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Feedback, error)
	// Summarize aggregates votes per answer, most voted first.
	Summarize(ctx context.Context) ([]domain.FeedbackSummary, error)
}
