package knowledge

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/faqbot/internal/matcher"
)

// ValidateSource checks the source for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSource(src Source) []error {
	if len(src) == 0 {
		return []error{fmt.Errorf("knowledge base has no entries")}
	}

	var errs []error
	for i, e := range src {
		errs = append(errs, validateEntry(i, e)...)
	}
	return errs
}

func validateEntry(i int, e EntrySource) []error {
	var errs []error

	if len(e.Keywords) == 0 {
		errs = append(errs, fmt.Errorf("entries[%d].keywords: at least one keyword is required", i))
	}
	for j, k := range e.Keywords {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, fmt.Errorf("entries[%d].keywords[%d]: keyword is empty", i, j))
		}
	}
	if strings.TrimSpace(e.Answer) == "" {
		errs = append(errs, fmt.Errorf("entries[%d].answer is required", i))
	} else if strings.ContainsAny(e.Answer, "\r\n") {
		errs = append(errs, fmt.Errorf("entries[%d].answer: must be a single line", i))
	}

	return errs
}

// Warnings reports entries that are valid but unlikely to match as the
// author intended. Queries are normalized before scoring, so a keyword with
// capitals or punctuation can never score a perfect match, and a keyword
// shared by two entries will always end in a clarification.
func Warnings(src Source) []string {
	var warnings []string
	owner := make(map[string]int)

	for i, e := range src {
		for j, k := range e.Keywords {
			if k == "" {
				continue
			}
			if n := matcher.Normalize(k); n != k {
				warnings = append(warnings, fmt.Sprintf("entries[%d].keywords[%d]: %q is not normalized (queries are compared as %q)", i, j, k, n))
			}
			if prev, ok := owner[k]; ok && prev != i {
				warnings = append(warnings, fmt.Sprintf("entries[%d].keywords[%d]: %q is also a keyword of entries[%d]", i, j, k, prev))
				continue
			}
			owner[k] = i
		}
	}
	return warnings
}
