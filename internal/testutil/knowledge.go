package testutil

import (
	"testing"

	"github.com/alexanderramin/faqbot/internal/domain"
)

// Sample answers, shared with data/faqs.json.
const (
	HoursAnswer    = "We are open Monday to Saturday from 9:00 AM to 6:00 PM. We are closed on Sundays and public holidays."
	FabricsAnswer  = "We stock Ankara prints, Kente, Adire, Aso Oke, Kitenge and plain cotton and linen in a range of colours."
	DesignsAnswer  = "Yes! Our in-house designers create custom outfits. Bring your own fabric or choose from ours, and allow 2-3 weeks for tailoring."
	LocationAnswer = "Our shop is at 12 Market Street, Accra Central, opposite the main post office."
	ContactAnswer  = "Call or WhatsApp us on +233 24 000 0000, or email hello@amazeafricafabrics.com."
	DeliveryAnswer = "We deliver nationwide within 3-5 working days and ship internationally via DHL. Delivery fees depend on your location."
)

// Entry builds a knowledge entry.
func Entry(answer string, keywords ...string) domain.KnowledgeEntry {
	return domain.KnowledgeEntry{Keywords: keywords, Answer: answer}
}

// SampleEntries returns the six-topic sample knowledge base in file order.
func SampleEntries() []domain.KnowledgeEntry {
	return []domain.KnowledgeEntry{
		Entry(HoursAnswer, "opening hours", "what time", "when are you open", "business hours", "closing time"),
		Entry(FabricsAnswer, "fabric types", "types of fabric", "what fabrics", "fabrics", "kente", "ankara", "adire"),
		Entry(DesignsAnswer, "custom designs", "custom made", "designs", "tailoring", "bespoke", "your designs"),
		Entry(LocationAnswer, "location", "where are you", "address", "find you", "directions"),
		Entry(ContactAnswer, "contact", "phone number", "email", "call you", "whatsapp"),
		Entry(DeliveryAnswer, "delivery", "shipping", "do you deliver", "send to", "courier"),
	}
}

// SampleKnowledgeBase returns the validated sample knowledge base.
func SampleKnowledgeBase(t *testing.T) domain.KnowledgeBase {
	t.Helper()
	return NewTestKnowledgeBase(t, SampleEntries()...)
}

// NewTestKnowledgeBase validates entries and fails the test on error.
func NewTestKnowledgeBase(t *testing.T, entries ...domain.KnowledgeEntry) domain.KnowledgeBase {
	t.Helper()
	kb, err := domain.NewKnowledgeBase(entries)
	if err != nil {
		t.Fatalf("invalid test knowledge base: %v", err)
	}
	return kb
}
