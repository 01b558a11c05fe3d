// Package resolver turns fuzzy keyword scores into a single decision:
// answer, ask the user to clarify, or fall back.
package resolver

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/matcher"
	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/google/uuid"
)

const (
	DefaultMatchThreshold         = 80
	DefaultClarificationThreshold = 10
	DefaultFallbackTopics         = "hours, designs, fabric types, location, or contact"
)

// UnansweredRecorder receives queries that produced no answer. It is a
// one-way effect: the resolver never reads anything back.
type UnansweredRecorder interface {
	RecordUnanswered(ctx context.Context, q domain.UnansweredQuestion) error
}

// Config holds the decision thresholds and the fallback wording.
type Config struct {
	// MatchThreshold is the score an entry needs to be considered at all.
	MatchThreshold int
	// ClarificationThreshold is how far below the best score an entry may
	// fall and still compete for the answer.
	ClarificationThreshold int
	// FallbackTopics is listed in the fallback message as a hint.
	FallbackTopics string
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MatchThreshold:         DefaultMatchThreshold,
		ClarificationThreshold: DefaultClarificationThreshold,
		FallbackTopics:         DefaultFallbackTopics,
	}
}

// Resolver is stateless across calls and safe for concurrent use.
type Resolver struct {
	cfg      Config
	recorder UnansweredRecorder
	logger   *observability.Logger
	now      func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithClock overrides the clock used to timestamp unanswered questions.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// New creates a Resolver. A nil recorder disables unanswered reporting and
// a nil logger discards log output.
func New(cfg Config, recorder UnansweredRecorder, logger *observability.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = observability.NopLogger()
	}
	r := &Resolver{
		cfg:      cfg,
		recorder: recorder,
		logger:   logger.WithOperation("resolve"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Config returns the resolver's configuration.
func (r *Resolver) Config() Config {
	return r.cfg
}

// Resolve scores query against every entry of kb and decides what to say.
// A Fallback is reported to the recorder exactly once; recorder failures
// are logged and never change the result.
func (r *Resolver) Resolve(ctx context.Context, query string, kb domain.KnowledgeBase) domain.Resolution {
	res := r.Decide(r.Score(query, kb))
	if res.Kind == domain.ResolutionFallback {
		r.reportUnanswered(ctx, query)
	}
	return res
}

// Score returns one ScoredEntry per knowledge base entry, in knowledge base
// order. It has no side effects.
func (r *Resolver) Score(query string, kb domain.KnowledgeBase) []domain.ScoredEntry {
	scored := make([]domain.ScoredEntry, 0, kb.Len())
	debug := r.logger.DebugEnabled()

	for i := 0; i < kb.Len(); i++ {
		entry := kb.Entry(i)
		se := domain.ScoredEntry{Entry: entry, Index: i}
		for _, keyword := range entry.Keywords {
			score := matcher.PartialRatio(keyword, query)
			if debug {
				r.logger.Debug().
					Str("keyword", keyword).
					Str("query", query).
					Int("score", score).
					Msg("keyword compared")
			}
			if score > se.MaxScore || se.BestKeyword == "" {
				se.MaxScore = score
				se.BestKeyword = keyword
			}
		}
		scored = append(scored, se)
	}
	return scored
}

// Decide applies the threshold and clarification policy to scored entries.
// It has no side effects.
func (r *Resolver) Decide(scored []domain.ScoredEntry) domain.Resolution {
	contenders := r.Contenders(scored)

	switch len(contenders) {
	case 0:
		return domain.Fallback(r.fallbackText())
	case 1:
		return domain.Answer(contenders[0].Entry.Answer)
	default:
		options := make([]string, len(contenders))
		for i, c := range contenders {
			options[i] = TopicLabel(c.Entry.PrimaryKeyword())
		}
		return domain.Clarification(ClarificationPrompt(options), options)
	}
}

// Contenders returns the entries that clear the match threshold and sit
// within the clarification threshold of the best score, in knowledge base
// order.
func (r *Resolver) Contenders(scored []domain.ScoredEntry) []domain.ScoredEntry {
	best := GlobalBest(scored)

	var contenders []domain.ScoredEntry
	for _, se := range scored {
		if se.MaxScore < r.cfg.MatchThreshold {
			continue
		}
		if se.MaxScore < best-r.cfg.ClarificationThreshold {
			continue
		}
		contenders = append(contenders, se)
	}

	r.logger.Debug().
		Int("best_score", best).
		Int("match_threshold", r.cfg.MatchThreshold).
		Int("contenders", len(contenders)).
		Msg("scores aggregated")
	return contenders
}

// GlobalBest returns the highest MaxScore, or 0 for no entries.
func GlobalBest(scored []domain.ScoredEntry) int {
	best := 0
	for _, se := range scored {
		if se.MaxScore > best {
			best = se.MaxScore
		}
	}
	return best
}

func (r *Resolver) fallbackText() string {
	return fmt.Sprintf("I'm sorry, I don't understand your question. Could you please rephrase or ask about common topics like %s?", r.cfg.FallbackTopics)
}

func (r *Resolver) reportUnanswered(ctx context.Context, query string) {
	if r.recorder == nil {
		return
	}
	q := domain.UnansweredQuestion{
		ID:      uuid.NewString(),
		Query:   query,
		AskedAt: r.now(),
	}
	if err := r.recorder.RecordUnanswered(ctx, q); err != nil {
		r.logger.Warn().Err(err).Str("query", query).Msg("recording unanswered question failed")
	}
}
