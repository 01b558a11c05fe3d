package formatter

import (
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

func TestFormatUnansweredSummary(t *testing.T) {
	out := stripANSI(FormatUnansweredSummary([]domain.UnansweredSummary{
		{Query: "do you sell buttons", Count: 3, FirstSeen: now.Add(-2 * time.Hour), LastSeen: now.Add(-5 * time.Minute)},
		{Query: "gift cards", Count: 1, FirstSeen: now.Add(-time.Hour), LastSeen: now.Add(-time.Hour)},
	}, now))

	assert.Contains(t, out, "UNANSWERED QUESTIONS")
	assert.Contains(t, out, "do you sell buttons  3      2h ago  5m ago")
	assert.Contains(t, out, "gift cards")
}

func TestFormatUnansweredSummary_Empty(t *testing.T) {
	assert.Contains(t, FormatUnansweredSummary(nil, now), "No unanswered questions recorded.")
}

func TestFormatFeedbackSummary(t *testing.T) {
	out := stripANSI(FormatFeedbackSummary([]domain.FeedbackSummary{
		{Answer: "We open at 9.", Helpful: 3, NotHelpful: 1},
		{Answer: "Call us.", Helpful: 0, NotHelpful: 2},
	}))

	assert.Contains(t, out, "We open at 9.  4      3        75%")
	assert.Contains(t, out, "Call us.       2      0        0%")
	assert.Contains(t, out, "Overall: 6 votes, 50% helpful")
}

func TestFormatRecent(t *testing.T) {
	out := stripANSI(FormatRecentUnanswered([]*domain.UnansweredQuestion{
		{Query: "gift cards", AskedAt: now.Add(-time.Minute)},
	}, now))
	assert.Contains(t, out, "1m ago  gift cards")

	out = stripANSI(FormatRecentFeedback([]*domain.Feedback{
		{Question: "hours?", Answer: "9 to 6", Helpful: false, RecordedAt: now.Add(-2 * time.Hour)},
	}, now))
	assert.Contains(t, out, "2h ago    n        hours?    9 to 6")

	assert.Contains(t, FormatRecentFeedback(nil, now), "No feedback recorded.")
}

func TestFormatImportResult(t *testing.T) {
	out := stripANSI(FormatImportResult(&service.ImportResult{
		UnansweredImported: 4,
		UnansweredSkipped:  1,
		FeedbackImported:   2,
		MissingFiles:       []string{"feedback.log"},
	}))

	assert.Contains(t, out, "Unanswered: 4 imported, 1 already present")
	assert.Contains(t, out, "Feedback: 2 imported, 0 already present")
	assert.Contains(t, out, "missing: feedback.log")
}

func TestFormatValidation(t *testing.T) {
	ok := stripANSI(FormatValidation("data/faqs.json", 6, 33, nil, []string{`keyword "Hours" is not normalized`}))
	assert.Contains(t, ok, "✔ valid: data/faqs.json: 6 entries, 33 keywords")
	assert.Contains(t, ok, "warning:")

	bad := stripANSI(FormatValidation("kb.yaml", 0, 0, []error{errors.New("entries[0].answer is required")}, nil))
	assert.Contains(t, bad, "✖ invalid: kb.yaml")
	assert.Contains(t, bad, "- entries[0].answer is required")
}
