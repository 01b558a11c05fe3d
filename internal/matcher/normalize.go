package matcher

import "strings"

// asciiPunctuation is every printable ASCII character that is neither a
// letter, a digit nor a space.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var punctuationStripper = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(asciiPunctuation))
	for _, c := range asciiPunctuation {
		pairs = append(pairs, string(c), "")
	}
	return strings.NewReplacer(pairs...)
}()

// Normalize lowercases s, removes ASCII punctuation and collapses runs of
// whitespace into single spaces. Queries are normalized before scoring;
// the scorer itself never normalizes.
func Normalize(s string) string {
	s = punctuationStripper.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}
