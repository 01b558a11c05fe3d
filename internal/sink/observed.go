package sink

import (
	"context"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/observability"
)

// Observed counts and logs the failures of the sink it wraps. Errors are
// still returned to the caller.
type Observed struct {
	name    string
	next    Sink
	metrics *observability.Metrics
	logger  *observability.Logger
}

func NewObserved(name string, next Sink, metrics *observability.Metrics, logger *observability.Logger) *Observed {
	if logger == nil {
		logger = observability.NopLogger()
	}
	return &Observed{name: name, next: next, metrics: metrics, logger: logger}
}

func (o *Observed) RecordUnanswered(ctx context.Context, q domain.UnansweredQuestion) error {
	err := o.next.RecordUnanswered(ctx, q)
	if err != nil {
		o.fail("unanswered", err)
	}
	return err
}

func (o *Observed) RecordFeedback(ctx context.Context, f domain.Feedback) error {
	err := o.next.RecordFeedback(ctx, f)
	if err != nil {
		o.fail("feedback", err)
	}
	return err
}

func (o *Observed) fail(record string, err error) {
	if o.metrics != nil {
		o.metrics.ObserveSinkError(o.name, record)
	}
	o.logger.Warn().Err(err).Str("sink", o.name).Str("record", record).Msg("sink write failed")
}
