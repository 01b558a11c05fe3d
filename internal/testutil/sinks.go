package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/faqbot/internal/domain"
)

// RecordingSink keeps every record it receives in memory. Err, when set,
// is returned from every write after the record is kept.
type RecordingSink struct {
	mu         sync.Mutex
	unanswered []domain.UnansweredQuestion
	feedback   []domain.Feedback
	Err        error
}

func (s *RecordingSink) RecordUnanswered(_ context.Context, q domain.UnansweredQuestion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unanswered = append(s.unanswered, q)
	return s.Err
}

func (s *RecordingSink) RecordFeedback(_ context.Context, f domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, f)
	return s.Err
}

// Unanswered returns a copy of the recorded unanswered questions.
func (s *RecordingSink) Unanswered() []domain.UnansweredQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.UnansweredQuestion(nil), s.unanswered...)
}

// Feedback returns a copy of the recorded feedback.
func (s *RecordingSink) Feedback() []domain.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Feedback(nil), s.feedback...)
}
