package formatter

import (
	"fmt"
	"strings"
)

// FormatValidation reports a knowledge base check. problems are fatal,
// warnings are not.
func FormatValidation(path string, entries, keywords int, problems []error, warnings []string) string {
	var b strings.Builder
	if len(problems) > 0 {
		fmt.Fprintf(&b, "%s %s\n", StyleRed.Render("✖ invalid:"), path)
		for _, p := range problems {
			fmt.Fprintf(&b, "  %s %v\n", StyleRed.Render("-"), p)
		}
	} else {
		fmt.Fprintf(&b, "%s %s: %d entries, %d keywords\n",
			StyleGreen.Render("✔ valid:"), path, entries, keywords)
	}
	for _, w := range warnings {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("warning:"), w)
	}
	return b.String()
}
