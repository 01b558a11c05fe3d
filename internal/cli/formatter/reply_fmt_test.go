package formatter

import (
	"testing"

	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatBanner(t *testing.T) {
	out := FormatBanner([]string{"Hello!", "Type 'bye'."})
	assert.Equal(t, "-----------\nHello!\nType 'bye'.\n-----------\n", out)
}

func TestFormatReply(t *testing.T) {
	assert.Equal(t, "Bot: We open at 9.\n", FormatReply(service.Reply{Kind: service.ReplyAnswer, Text: "We open at 9."}))
}

func TestFormatAskReply_ListsOptions(t *testing.T) {
	out := stripANSI(FormatAskReply(service.Reply{
		Kind:    service.ReplyClarification,
		Text:    "Which one?",
		Options: []string{"Fabric Types", "Custom Designs"},
	}))

	assert.Equal(t, "● CLARIFICATION\nWhich one?\n  - Fabric Types\n  - Custom Designs\n", out)
}

func TestKindBadge(t *testing.T) {
	assert.Equal(t, "● ANSWER", stripANSI(KindBadge(service.ReplyAnswer)))
	assert.Equal(t, "● FAREWELL", stripANSI(KindBadge(service.ReplyFarewell)))
}
