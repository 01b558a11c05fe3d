package domain

import "time"

// UnansweredQuestion records a normalized query that produced no answer.
type UnansweredQuestion struct {
	ID      string
	Query   string
	AskedAt time.Time
}

// Feedback records whether a direct answer helped. Question is the raw
// text the user typed, before normalization.
type Feedback struct {
	ID         string
	Question   string
	Answer     string
	Helpful    bool
	RecordedAt time.Time
}

// HelpfulFlag renders the helpful bit the way the feedback log stores it.
func (f Feedback) HelpfulFlag() string {
	if f.Helpful {
		return "y"
	}
	return "n"
}

// UnansweredSummary groups repeated unanswered queries for curation.
type UnansweredSummary struct {
	Query     string
	Count     int
	FirstSeen time.Time
	LastSeen  time.Time
}

// FeedbackSummary aggregates feedback for one answer text.
type FeedbackSummary struct {
	Answer     string
	Helpful    int
	NotHelpful int
}

// HelpfulRate returns the share of helpful votes in [0,1], or 0 when there
// are no votes.
func (s FeedbackSummary) HelpfulRate() float64 {
	total := s.Helpful + s.NotHelpful
	if total == 0 {
		return 0
	}
	return float64(s.Helpful) / float64(total)
}
