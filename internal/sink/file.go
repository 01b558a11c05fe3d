package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/spf13/afero"
)

// TimestampLayout is the bracketed timestamp at the start of every log
// line, in local time.
const TimestampLayout = "2006-01-02 15:04:05"

// FileSink appends one line per record to two plain text logs. Writes are
// serialized, so concurrent sessions never interleave partial lines.
type FileSink struct {
	fs             afero.Fs
	unansweredPath string
	feedbackPath   string

	mu sync.Mutex
}

func NewFileSink(fs afero.Fs, unansweredPath, feedbackPath string) *FileSink {
	return &FileSink{fs: fs, unansweredPath: unansweredPath, feedbackPath: feedbackPath}
}

func (s *FileSink) RecordUnanswered(_ context.Context, q domain.UnansweredQuestion) error {
	return s.appendLine(s.unansweredPath, FormatUnansweredLine(q))
}

func (s *FileSink) RecordFeedback(_ context.Context, f domain.Feedback) error {
	return s.appendLine(s.feedbackPath, FormatFeedbackLine(f))
}

// UnansweredPath and FeedbackPath name the files written to.
func (s *FileSink) UnansweredPath() string { return s.unansweredPath }
func (s *FileSink) FeedbackPath() string   { return s.feedbackPath }

func (s *FileSink) appendLine(path, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	f, err := s.fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	if _, err := f.Write([]byte(line + "\n")); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// FormatUnansweredLine renders "[2006-01-02 15:04:05] query".
func FormatUnansweredLine(q domain.UnansweredQuestion) string {
	return fmt.Sprintf("[%s] %s", q.AskedAt.Format(TimestampLayout), q.Query)
}

// FormatFeedbackLine renders "[ts] Q: 'question' | A: 'answer' | Helpful: y".
func FormatFeedbackLine(f domain.Feedback) string {
	return fmt.Sprintf("[%s] Q: '%s' | A: '%s' | Helpful: %s",
		f.RecordedAt.Format(TimestampLayout), f.Question, f.Answer, f.HelpfulFlag())
}
