package testutil

import (
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/google/uuid"
)

// Unanswered question options
type UnansweredOption func(*domain.UnansweredQuestion)

func WithAskedAt(t time.Time) UnansweredOption {
	return func(q *domain.UnansweredQuestion) {
		q.AskedAt = t
	}
}

func WithUnansweredID(id string) UnansweredOption {
	return func(q *domain.UnansweredQuestion) {
		q.ID = id
	}
}

func NewTestUnanswered(query string, opts ...UnansweredOption) *domain.UnansweredQuestion {
	q := &domain.UnansweredQuestion{
		ID:      uuid.New().String(),
		Query:   query,
		AskedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Feedback options
type FeedbackOption func(*domain.Feedback)

func WithRecordedAt(t time.Time) FeedbackOption {
	return func(f *domain.Feedback) {
		f.RecordedAt = t
	}
}

func WithAnswer(a string) FeedbackOption {
	return func(f *domain.Feedback) {
		f.Answer = a
	}
}

func WithFeedbackID(id string) FeedbackOption {
	return func(f *domain.Feedback) {
		f.ID = id
	}
}

func NewTestFeedback(question string, helpful bool, opts ...FeedbackOption) *domain.Feedback {
	f := &domain.Feedback{
		ID:         uuid.New().String(),
		Question:   question,
		Answer:     HoursAnswer,
		Helpful:    helpful,
		RecordedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
