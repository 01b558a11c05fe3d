package sink

import (
	"context"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/repository"
)

// StoreSink writes records into the curation store.
type StoreSink struct {
	unanswered repository.UnansweredRepo
	feedback   repository.FeedbackRepo
}

func NewStoreSink(unanswered repository.UnansweredRepo, feedback repository.FeedbackRepo) *StoreSink {
	return &StoreSink{unanswered: unanswered, feedback: feedback}
}

func (s *StoreSink) RecordUnanswered(ctx context.Context, q domain.UnansweredQuestion) error {
	return s.unanswered.Create(ctx, &q)
}

func (s *StoreSink) RecordFeedback(ctx context.Context, f domain.Feedback) error {
	return s.feedback.Create(ctx, &f)
}
