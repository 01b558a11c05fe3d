package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyKnowledgeBase = errors.New("knowledge base has no entries")
	ErrInvalidEntry       = errors.New("invalid knowledge entry")
)

// KnowledgeEntry is one FAQ topic: the keywords that identify it and the
// answer given when it wins.
type KnowledgeEntry struct {
	Keywords []string
	Answer   string
}

// Validate checks that the entry has a single-line answer and at least one
// keyword, and that no keyword is blank. Answers are written to line-based
// logs, so they may not contain line breaks.
func (e KnowledgeEntry) Validate() error {
	if len(e.Keywords) == 0 {
		return fmt.Errorf("%w: at least one keyword is required", ErrInvalidEntry)
	}
	for i, k := range e.Keywords {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: keywords[%d] is empty", ErrInvalidEntry, i)
		}
	}
	if strings.TrimSpace(e.Answer) == "" {
		return fmt.Errorf("%w: answer is required", ErrInvalidEntry)
	}
	if strings.ContainsAny(e.Answer, "\r\n") {
		return fmt.Errorf("%w: answer must be a single line", ErrInvalidEntry)
	}
	return nil
}

// PrimaryKeyword returns the first keyword, which names the topic in
// clarification prompts.
func (e KnowledgeEntry) PrimaryKeyword() string {
	if len(e.Keywords) == 0 {
		return ""
	}
	return e.Keywords[0]
}

// KnowledgeBase is an ordered, read-only set of entries. Order is
// significant: it decides the order of options in clarification prompts.
type KnowledgeBase struct {
	entries []KnowledgeEntry
}

// NewKnowledgeBase validates the entries and returns a KnowledgeBase that
// owns its own copy of them. All invalid entries are reported together.
func NewKnowledgeBase(entries []KnowledgeEntry) (KnowledgeBase, error) {
	if len(entries) == 0 {
		return KnowledgeBase{}, ErrEmptyKnowledgeBase
	}

	var errs []error
	owned := make([]KnowledgeEntry, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("entries[%d]: %w", i, err))
			continue
		}
		owned[i] = KnowledgeEntry{
			Keywords: append([]string(nil), e.Keywords...),
			Answer:   e.Answer,
		}
	}
	if len(errs) > 0 {
		return KnowledgeBase{}, errors.Join(errs...)
	}
	return KnowledgeBase{entries: owned}, nil
}

// Len returns the number of entries.
func (kb KnowledgeBase) Len() int {
	return len(kb.entries)
}

// Entry returns the i-th entry in knowledge base order.
func (kb KnowledgeBase) Entry(i int) KnowledgeEntry {
	return kb.entries[i]
}

// Entries returns a copy of the entries in knowledge base order.
func (kb KnowledgeBase) Entries() []KnowledgeEntry {
	return append([]KnowledgeEntry(nil), kb.entries...)
}

// HasAnswer reports whether answer is, verbatim, one of the entries'
// answers.
func (kb KnowledgeBase) HasAnswer(answer string) bool {
	for _, e := range kb.entries {
		if e.Answer == answer {
			return true
		}
	}
	return false
}

// KeywordCount returns the total number of keywords across all entries.
func (kb KnowledgeBase) KeywordCount() int {
	n := 0
	for _, e := range kb.entries {
		n += len(e.Keywords)
	}
	return n
}
