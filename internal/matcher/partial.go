// Package matcher scores how well a knowledge base keyword matches a
// user query.
package matcher

import "math"

// perfectRatio is the window ratio treated as an exact match.
const perfectRatio = 0.995

// PartialRatio returns the partial-ratio similarity of keyword and query
// in [0,100]: the best ratio between the shorter string and any
// equal-length window of the longer string that starts at a matching
// block. When the lengths are equal the keyword is the shorter string.
//
// Inputs are compared as given; callers normalize case and punctuation.
func PartialRatio(keyword, query string) int {
	if keyword == "" || query == "" {
		return 0
	}
	if keyword == query {
		return 100
	}

	shorter, longer := []rune(keyword), []rune(query)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	best := 0.0
	for _, m := range newSequencePair(shorter, longer).matchingBlocks() {
		start := m.j - m.i
		if start < 0 {
			start = 0
		}
		end := start + len(shorter)
		if end > len(longer) {
			end = len(longer)
		}

		r := ratio(shorter, longer[start:end])
		if r > perfectRatio {
			return 100
		}
		if r > best {
			best = r
		}
	}
	return int(math.RoundToEven(100 * best))
}
