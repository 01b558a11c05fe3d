package service

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/alexanderramin/faqbot/internal/db"
	"github.com/alexanderramin/faqbot/internal/repository"
	"github.com/alexanderramin/faqbot/internal/sink"
	"github.com/spf13/afero"
)

type importService struct {
	fs       afero.Fs
	uow      db.UnitOfWork
	loc      *time.Location
	observer UseCaseObserver
}

// NewImportService imports text logs into the curation store. Everything
// is written in one transaction: a malformed line or a failed insert leaves
// the store unchanged.
func NewImportService(fsys afero.Fs, uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		fs:       fsys,
		uow:      uow,
		loc:      time.Local,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportLogs(ctx context.Context, unansweredPath, feedbackPath string) (result *ImportResult, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import_logs",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
		})
	}()

	result = &ImportResult{}
	unansweredLines, err := s.readLines(unansweredPath, result)
	if err != nil {
		return nil, err
	}
	feedbackLines, err := s.readLines(feedbackPath, result)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.Tx) error {
		unanswered := repository.NewSQLUnansweredRepo(tx, tx.Dialect)
		feedback := repository.NewSQLFeedbackRepo(tx, tx.Dialect)

		for _, l := range unansweredLines {
			q, err := sink.ParseUnansweredLine(l.text, s.loc)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", unansweredPath, l.no, err)
			}
			q.ID = sink.LineID("unanswered", l.no, l.text)
			inserted, err := unanswered.Import(ctx, &q)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", unansweredPath, l.no, err)
			}
			if inserted {
				result.UnansweredImported++
			} else {
				result.UnansweredSkipped++
			}
		}

		for _, l := range feedbackLines {
			f, err := sink.ParseFeedbackLine(l.text, s.loc)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", feedbackPath, l.no, err)
			}
			f.ID = sink.LineID("feedback", l.no, l.text)
			inserted, err := feedback.Import(ctx, &f)
			if err != nil {
				return fmt.Errorf("%s:%d: %w", feedbackPath, l.no, err)
			}
			if inserted {
				result.FeedbackImported++
			} else {
				result.FeedbackSkipped++
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing logs: %w", err)
	}
	return result, nil
}

type numberedLine struct {
	no   int
	text string
}

// readLines returns the non-blank lines of path with 1-based line numbers.
// A missing file is recorded in result and yields no lines.
func (s *importService) readLines(path string, result *ImportResult) ([]numberedLine, error) {
	if path == "" {
		return nil, nil
	}
	f, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.MissingFiles = append(result.MissingFiles, path)
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []numberedLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	no := 0
	for scanner.Scan() {
		no++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, numberedLine{no: no, text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
