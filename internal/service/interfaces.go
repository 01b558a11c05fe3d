package service

import (
	"context"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/resolver"
)

// ReplyKind extends the resolution kinds with the exit keyword.
type ReplyKind string

const (
	ReplyAnswer        ReplyKind = ReplyKind(domain.ResolutionAnswer)
	ReplyClarification ReplyKind = ReplyKind(domain.ResolutionClarification)
	ReplyFallback      ReplyKind = ReplyKind(domain.ResolutionFallback)
	ReplyFarewell      ReplyKind = "farewell"
)

// Reply is what the bot says to one line of user input.
type Reply struct {
	Kind    ReplyKind
	Text    string
	Options []string
	// Question is the raw input and Query its normalized form.
	Question string
	Query    string
}

// WantsFeedback reports whether the user should be asked if the reply
// helped. Only direct answers qualify.
func (r Reply) WantsFeedback() bool {
	return r.Kind == ReplyAnswer
}

// Ends reports whether the conversation is over.
func (r Reply) Ends() bool {
	return r.Kind == ReplyFarewell
}

// Explanation is a side-effect free trace of how a question would resolve.
type Explanation struct {
	Question   string
	Query      string
	Scores     []domain.ScoredEntry
	BestScore  int
	Contenders int
	Resolution domain.Resolution
	// Thresholds are the resolver settings the decision was made with.
	Thresholds resolver.Config
}

type ConversationService interface {
	Greeting() []string
	Farewell() string
	Ask(ctx context.Context, question string) Reply
	// RecordFeedback logs a vote on a direct answer. The answer must be one
	// of the knowledge base's answers. Sink failures are logged and not
	// returned.
	RecordFeedback(ctx context.Context, question, answer string, helpful bool) error
	Explain(question string) Explanation
}

// ImportResult holds the outcome of a log import.
type ImportResult struct {
	UnansweredImported int
	UnansweredSkipped  int
	FeedbackImported   int
	FeedbackSkipped    int
	// MissingFiles lists log files that did not exist.
	MissingFiles []string
}

type ImportService interface {
	ImportLogs(ctx context.Context, unansweredPath, feedbackPath string) (*ImportResult, error)
}

type ReportService interface {
	UnansweredSummary(ctx context.Context, limit int) ([]domain.UnansweredSummary, error)
	RecentUnanswered(ctx context.Context, limit int) ([]*domain.UnansweredQuestion, error)
	FeedbackSummary(ctx context.Context) ([]domain.FeedbackSummary, error)
	RecentFeedback(ctx context.Context, limit int) ([]*domain.Feedback, error)
}
