package formatter

import (
	"strings"

	"github.com/alexanderramin/faqbot/internal/service"
)

// BotPrefix and UserPrefix label the two sides of the conversation.
const (
	BotPrefix  = "Bot: "
	UserPrefix = "You: "
)

// FeedbackPrompt asks whether a direct answer helped.
const FeedbackPrompt = "Was this helpful? (y/n): "

// FeedbackThanks acknowledges a vote that was not y or n.
const FeedbackThanks = "Thanks for the feedback!"

// FormatBanner frames the greeting lines between rules.
func FormatBanner(lines []string) string {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	rule := strings.Repeat("-", width)

	var b strings.Builder
	b.WriteString(rule + "\n")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
	b.WriteString(rule + "\n")
	return b.String()
}

// FormatReply renders one bot turn for the line REPL.
func FormatReply(r service.Reply) string {
	return BotPrefix + r.Text + "\n"
}

// FormatAskReply renders a one-shot answer with its kind, and the options
// of a clarification on their own lines.
func FormatAskReply(r service.Reply) string {
	var b strings.Builder
	b.WriteString(KindBadge(r.Kind))
	b.WriteString("\n")
	b.WriteString(r.Text)
	b.WriteString("\n")
	for _, opt := range r.Options {
		b.WriteString(Dim("  - ") + opt + "\n")
	}
	return b.String()
}
