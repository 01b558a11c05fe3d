package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/service"
)

const answerWidth = 60

// FormatUnansweredSummary lists repeated unanswered questions, most
// frequent first.
func FormatUnansweredSummary(rows []domain.UnansweredSummary, now time.Time) string {
	if len(rows) == 0 {
		return Dim("No unanswered questions recorded.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.Query,
			fmt.Sprintf("%d", r.Count),
			HumanTimestampFrom(r.FirstSeen, now),
			HumanTimestampFrom(r.LastSeen, now),
		})
	}
	return Header("Unanswered questions") + "\n" +
		RenderTable([]string{"QUERY", "COUNT", "FIRST", "LAST"}, table)
}

// FormatFeedbackSummary lists votes per answer with the helpful rate.
func FormatFeedbackSummary(rows []domain.FeedbackSummary) string {
	if len(rows) == 0 {
		return Dim("No feedback recorded.") + "\n"
	}
	var helpful, total int
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		votes := r.Helpful + r.NotHelpful
		helpful += r.Helpful
		total += votes
		table = append(table, []string{
			Truncate(r.Answer, answerWidth),
			fmt.Sprintf("%d", votes),
			fmt.Sprintf("%d", r.Helpful),
			rateStyled(r.HelpfulRate()),
		})
	}

	var b strings.Builder
	b.WriteString(Header("Feedback"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"ANSWER", "VOTES", "HELPFUL", "RATE"}, table))
	overall := 0.0
	if total > 0 {
		overall = float64(helpful) / float64(total)
	}
	fmt.Fprintf(&b, "\n%s %d votes, %s helpful\n", Dim("Overall:"), total, Percent(overall))
	return b.String()
}

// FormatRecentUnanswered lists individual unanswered questions.
func FormatRecentUnanswered(rows []*domain.UnansweredQuestion, now time.Time) string {
	if len(rows) == 0 {
		return Dim("No unanswered questions recorded.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, q := range rows {
		table = append(table, []string{HumanTimestampFrom(q.AskedAt, now), q.Query})
	}
	return RenderTable([]string{"ASKED", "QUERY"}, table)
}

// FormatRecentFeedback lists individual votes.
func FormatRecentFeedback(rows []*domain.Feedback, now time.Time) string {
	if len(rows) == 0 {
		return Dim("No feedback recorded.") + "\n"
	}
	table := make([][]string, 0, len(rows))
	for _, f := range rows {
		vote := StyleGreen.Render("y")
		if !f.Helpful {
			vote = StyleRed.Render("n")
		}
		table = append(table, []string{
			HumanTimestampFrom(f.RecordedAt, now),
			vote,
			Truncate(f.Question, 40),
			Truncate(f.Answer, answerWidth),
		})
	}
	return RenderTable([]string{"RECORDED", "HELPFUL", "QUESTION", "ANSWER"}, table)
}

// FormatImportResult summarizes a log import.
func FormatImportResult(r *service.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d imported, %d already present\n",
		Bold("Unanswered:"), r.UnansweredImported, r.UnansweredSkipped)
	fmt.Fprintf(&b, "%s %d imported, %d already present\n",
		Bold("Feedback:"), r.FeedbackImported, r.FeedbackSkipped)
	for _, p := range r.MissingFiles {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("missing:"), p)
	}
	return b.String()
}

func rateStyled(rate float64) string {
	text := Percent(rate)
	switch {
	case rate >= 0.75:
		return StyleGreen.Render(text)
	case rate >= 0.5:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}
