package knowledge

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/spf13/afero"
)

// ErrInvalid wraps every validation failure reported by Convert.
var ErrInvalid = errors.New("invalid knowledge base")

// Convert validates src and builds the immutable knowledge base from it,
// preserving entry and keyword order.
func Convert(src Source) (domain.KnowledgeBase, error) {
	if errs := ValidateSource(src); len(errs) > 0 {
		return domain.KnowledgeBase{}, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}

	entries := make([]domain.KnowledgeEntry, len(src))
	for i, e := range src {
		entries[i] = domain.KnowledgeEntry{
			Keywords: e.Keywords,
			Answer:   e.Answer,
		}
	}

	kb, err := domain.NewKnowledgeBase(entries)
	if err != nil {
		return domain.KnowledgeBase{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return kb, nil
}

// Load reads, validates and converts the knowledge base at path.
func Load(fs afero.Fs, path string) (domain.KnowledgeBase, error) {
	src, err := LoadSource(fs, path)
	if err != nil {
		return domain.KnowledgeBase{}, err
	}
	kb, err := Convert(src)
	if err != nil {
		return domain.KnowledgeBase{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return kb, nil
}
