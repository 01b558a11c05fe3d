package domain

type ResolutionKind string

const (
	ResolutionAnswer        ResolutionKind = "answer"
	ResolutionClarification ResolutionKind = "clarification"
	ResolutionFallback      ResolutionKind = "fallback"
)

// Resolution is the outcome of resolving one query. Exactly one of the
// three kinds is produced per query; Options is only set for
// clarifications and lists topic labels in knowledge base order.
type Resolution struct {
	Kind    ResolutionKind
	Text    string
	Options []string
}

func Answer(text string) Resolution {
	return Resolution{Kind: ResolutionAnswer, Text: text}
}

func Clarification(prompt string, options []string) Resolution {
	return Resolution{Kind: ResolutionClarification, Text: prompt, Options: options}
}

func Fallback(text string) Resolution {
	return Resolution{Kind: ResolutionFallback, Text: text}
}

// IsAnswer reports whether the resolution is a direct answer. Only direct
// answers are eligible for feedback.
func (r Resolution) IsAnswer() bool {
	return r.Kind == ResolutionAnswer
}

// ScoredEntry pairs an entry with the best score any of its keywords
// achieved against a single query.
type ScoredEntry struct {
	Entry       KnowledgeEntry
	Index       int
	MaxScore    int
	BestKeyword string
}
