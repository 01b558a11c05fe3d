package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/matcher"
	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/alexanderramin/faqbot/internal/resolver"
	"github.com/alexanderramin/faqbot/internal/sink"
	"github.com/google/uuid"
)

// ExitKeyword ends a conversation when it is the whole normalized input.
const ExitKeyword = "bye"

var (
	ErrEmptyFeedback = errors.New("feedback needs both a question and an answer")
	// ErrInvalidFeedback rejects votes that could not have followed a direct
	// answer: multi-line questions and answers the knowledge base never gave.
	ErrInvalidFeedback = errors.New("invalid feedback")
)

type conversationService struct {
	kb           domain.KnowledgeBase
	resolver     *resolver.Resolver
	feedback     sink.FeedbackSink
	metrics      *observability.Metrics
	logger       *observability.Logger
	businessName string
	now          func() time.Time
	observer     UseCaseObserver
}

// ConversationOption configures the conversation service.
type ConversationOption func(*conversationService)

func WithClock(now func() time.Time) ConversationOption {
	return func(s *conversationService) {
		s.now = now
	}
}

func WithMetrics(m *observability.Metrics) ConversationOption {
	return func(s *conversationService) {
		s.metrics = m
	}
}

func WithObserver(o UseCaseObserver) ConversationOption {
	return func(s *conversationService) {
		s.observer = useCaseObserverOrNoop([]UseCaseObserver{o})
	}
}

// NewConversationService answers questions from kb. The resolver owns the
// unanswered sink; feedback goes to the given sink.
func NewConversationService(
	kb domain.KnowledgeBase,
	r *resolver.Resolver,
	feedback sink.FeedbackSink,
	businessName string,
	logger *observability.Logger,
	opts ...ConversationOption,
) ConversationService {
	if logger == nil {
		logger = observability.NopLogger()
	}
	if feedback == nil {
		feedback = sink.Discard{}
	}
	s := &conversationService{
		kb:           kb,
		resolver:     r,
		feedback:     feedback,
		logger:       logger.WithOperation("conversation"),
		businessName: businessName,
		now:          time.Now,
		observer:     NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *conversationService) Greeting() []string {
	return []string{
		fmt.Sprintf("Hello! Welcome to %s.", s.businessName),
		fmt.Sprintf("I can answer common questions. Type '%s' to exit.", ExitKeyword),
	}
}

func (s *conversationService) Farewell() string {
	return fmt.Sprintf("Thank you for visiting %s. Goodbye!", s.businessName)
}

func (s *conversationService) Ask(ctx context.Context, question string) Reply {
	started := s.now()
	query := matcher.Normalize(question)
	s.logger.Debug().Str("query", query).Msg("input normalized")

	if query == ExitKeyword {
		return Reply{Kind: ReplyFarewell, Text: s.Farewell(), Question: question, Query: query}
	}

	res := s.resolver.Resolve(ctx, query, s.kb)
	elapsed := s.now().Sub(started)
	if s.metrics != nil {
		s.metrics.ObserveResolution(string(res.Kind), elapsed)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "ask",
		Duration:  elapsed,
		Success:   true,
		StartedAt: started,
		Fields:    map[string]any{"kind": string(res.Kind)},
	})

	return Reply{
		Kind:     ReplyKind(res.Kind),
		Text:     res.Text,
		Options:  res.Options,
		Question: question,
		Query:    query,
	}
}

func (s *conversationService) RecordFeedback(ctx context.Context, question, answer string, helpful bool) error {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" {
		return ErrEmptyFeedback
	}
	if strings.ContainsAny(question, "\r\n") {
		return fmt.Errorf("%w: question must be a single line", ErrInvalidFeedback)
	}
	if !s.kb.HasAnswer(answer) {
		return fmt.Errorf("%w: answer is not in the knowledge base", ErrInvalidFeedback)
	}

	f := domain.Feedback{
		ID:         uuid.NewString(),
		Question:   question,
		Answer:     answer,
		Helpful:    helpful,
		RecordedAt: s.now(),
	}
	if s.metrics != nil {
		s.metrics.ObserveFeedback(helpful)
	}
	err := s.feedback.RecordFeedback(ctx, f)
	if err != nil {
		s.logger.Warn().Err(err).Msg("recording feedback failed")
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "feedback",
		Success:   err == nil,
		Err:       err,
		StartedAt: f.RecordedAt,
		Fields:    map[string]any{"helpful": helpful},
	})
	return nil
}

func (s *conversationService) Explain(question string) Explanation {
	query := matcher.Normalize(question)
	scored := s.resolver.Score(query, s.kb)
	return Explanation{
		Question:   question,
		Query:      query,
		Scores:     scored,
		BestScore:  resolver.GlobalBest(scored),
		Contenders: len(s.resolver.Contenders(scored)),
		Resolution: s.resolver.Decide(scored),
		Thresholds: s.resolver.Config(),
	}
}

// ParseVote reads a y/n answer to "Was this helpful?". ok is false for any
// other input, which is thanked but not recorded.
func ParseVote(input string) (helpful bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y":
		return true, true
	case "n":
		return false, true
	default:
		return false, false
	}
}
