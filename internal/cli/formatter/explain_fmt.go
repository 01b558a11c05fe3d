package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/faqbot/internal/resolver"
	"github.com/alexanderramin/faqbot/internal/service"
)

// FormatExplanation renders the per-entry scores behind a question and the
// decision they lead to. Contenders are marked with an arrow.
func FormatExplanation(e service.Explanation) string {
	var b strings.Builder
	match := e.Thresholds.MatchThreshold
	floor := e.BestScore - e.Thresholds.ClarificationThreshold

	b.WriteString(Header("Explain"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Dim("Question:"), e.Question)
	fmt.Fprintf(&b, "%s %q\n\n", Dim("Normalized:"), e.Query)

	headers := []string{"", "#", "TOPIC", "BEST KEYWORD", "SCORE"}
	rows := make([][]string, 0, len(e.Scores))
	for _, s := range e.Scores {
		marker := " "
		if s.MaxScore >= match && s.MaxScore >= floor {
			marker = StyleGreen.Render("→")
		}
		rows = append(rows, []string{
			marker,
			fmt.Sprintf("%d", s.Index+1),
			resolver.TopicLabel(s.Entry.PrimaryKeyword()),
			s.BestKeyword,
			ScoreStyled(s.MaxScore, match),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %d  %s %d  %s %d  %s %d\n",
		Dim("Best:"), e.BestScore,
		Dim("Match at:"), match,
		Dim("Clarify within:"), e.Thresholds.ClarificationThreshold,
		Dim("Contenders:"), e.Contenders)
	fmt.Fprintf(&b, "%s %s\n", Dim("Decision:"), KindBadge(service.ReplyKind(e.Resolution.Kind)))
	b.WriteString(e.Resolution.Text)
	b.WriteString("\n")
	return b.String()
}
