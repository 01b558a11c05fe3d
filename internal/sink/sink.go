// Package sink holds the append-only destinations for unanswered questions
// and feedback. Nothing in the conversation path ever reads a sink back.
package sink

import (
	"context"
	"errors"

	"github.com/alexanderramin/faqbot/internal/domain"
)

// UnansweredSink receives queries that resolved to a fallback.
type UnansweredSink interface {
	RecordUnanswered(ctx context.Context, q domain.UnansweredQuestion) error
}

// FeedbackSink receives helpful/not-helpful votes on direct answers.
type FeedbackSink interface {
	RecordFeedback(ctx context.Context, f domain.Feedback) error
}

// Sink receives both kinds of record.
type Sink interface {
	UnansweredSink
	FeedbackSink
}

// Multi fans every record out to all of its sinks. A failing sink does not
// stop the others; all failures are returned joined.
type Multi []Sink

func (m Multi) RecordUnanswered(ctx context.Context, q domain.UnansweredQuestion) error {
	var errs []error
	for _, s := range m {
		if err := s.RecordUnanswered(ctx, q); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) RecordFeedback(ctx context.Context, f domain.Feedback) error {
	var errs []error
	for _, s := range m {
		if err := s.RecordFeedback(ctx, f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Discard drops every record.
type Discard struct{}

func (Discard) RecordUnanswered(context.Context, domain.UnansweredQuestion) error { return nil }
func (Discard) RecordFeedback(context.Context, domain.Feedback) error             { return nil }
