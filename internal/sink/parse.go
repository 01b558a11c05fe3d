package sink

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/google/uuid"
)

var ErrMalformedLine = errors.New("malformed log line")

// importNamespace seeds LineID.
var importNamespace = uuid.MustParse("6f1c54a2-3b8e-4d0a-9c27-5e8f1a9d4b63")

const (
	questionMarker = "Q: '"
	answerMarker   = "' | A: '"
	helpfulMarker  = "' | Helpful: "
)

// ParseUnansweredLine parses a line written by FileSink. Timestamps are
// read in loc. The returned record has no ID; see LineID.
func ParseUnansweredLine(line string, loc *time.Location) (domain.UnansweredQuestion, error) {
	ts, rest, err := splitTimestamp(line, loc)
	if err != nil {
		return domain.UnansweredQuestion{}, err
	}
	return domain.UnansweredQuestion{
		Query:   rest,
		AskedAt: ts,
	}, nil
}

// ParseFeedbackLine parses a feedback line written by FileSink. The raw
// question is free text, so the answer and helpful markers are located from
// the end of the line.
func ParseFeedbackLine(line string, loc *time.Location) (domain.Feedback, error) {
	ts, rest, err := splitTimestamp(line, loc)
	if err != nil {
		return domain.Feedback{}, err
	}
	if !strings.HasPrefix(rest, questionMarker) {
		return domain.Feedback{}, fmt.Errorf("%w: missing question", ErrMalformedLine)
	}
	rest = strings.TrimPrefix(rest, questionMarker)

	h := strings.LastIndex(rest, helpfulMarker)
	if h < 0 {
		return domain.Feedback{}, fmt.Errorf("%w: missing helpful flag", ErrMalformedLine)
	}
	flag := rest[h+len(helpfulMarker):]
	rest = rest[:h]

	a := strings.LastIndex(rest, answerMarker)
	if a < 0 {
		return domain.Feedback{}, fmt.Errorf("%w: missing answer", ErrMalformedLine)
	}

	var helpful bool
	switch flag {
	case "y":
		helpful = true
	case "n":
	default:
		return domain.Feedback{}, fmt.Errorf("%w: helpful flag %q", ErrMalformedLine, flag)
	}

	return domain.Feedback{
		Question:   rest[:a],
		Answer:     rest[a+len(answerMarker):],
		Helpful:    helpful,
		RecordedAt: ts,
	}, nil
}

func splitTimestamp(line string, loc *time.Location) (time.Time, string, error) {
	if !strings.HasPrefix(line, "[") {
		return time.Time{}, "", fmt.Errorf("%w: missing timestamp", ErrMalformedLine)
	}
	end := strings.Index(line, "] ")
	if end < 0 {
		return time.Time{}, "", fmt.Errorf("%w: unterminated timestamp", ErrMalformedLine)
	}
	ts, err := time.ParseInLocation(TimestampLayout, line[1:end], loc)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return ts, line[end+2:], nil
}

// LineID derives a stable record ID from a log line and its position in
// the file. Importing the same file twice yields the same IDs, while two
// identical lines logged in the same second stay distinct records.
func LineID(kind string, lineNo int, line string) string {
	return uuid.NewSHA1(importNamespace, []byte(fmt.Sprintf("%s:%d:%s", kind, lineNo, line))).String()
}
