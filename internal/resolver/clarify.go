package resolver

import (
	"strings"
	"unicode"
)

const typesOfPrefix = "types of "

// TopicLabel turns a primary keyword into the short label shown in a
// clarification prompt: "types of fabric" becomes "Fabric".
func TopicLabel(keyword string) string {
	return titleCase(strings.TrimPrefix(keyword, typesOfPrefix))
}

// ClarificationPrompt asks the user to choose between options, which must
// hold at least two labels.
func ClarificationPrompt(options []string) string {
	return "It sounds like you might be asking about " + joinOptions(options) + "? Could you please clarify?"
}

// joinOptions renders "A or B" and "A, B or C".
func joinOptions(options []string) string {
	switch len(options) {
	case 0:
		return ""
	case 1:
		return options[0]
	}
	last := len(options) - 1
	return strings.Join(options[:last], ", ") + " or " + options[last]
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest, so "3d prints" becomes "3D Prints".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
