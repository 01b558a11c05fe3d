package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/repository"
)

type reportService struct {
	unanswered repository.UnansweredRepo
	feedback   repository.FeedbackRepo
}

func NewReportService(unanswered repository.UnansweredRepo, feedback repository.FeedbackRepo) ReportService {
	return &reportService{unanswered: unanswered, feedback: feedback}
}

func (s *reportService) UnansweredSummary(ctx context.Context, limit int) ([]domain.UnansweredSummary, error) {
	out, err := s.unanswered.Summarize(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("summarizing unanswered questions: %w", err)
	}
	return out, nil
}

func (s *reportService) RecentUnanswered(ctx context.Context, limit int) ([]*domain.UnansweredQuestion, error) {
	out, err := s.unanswered.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing unanswered questions: %w", err)
	}
	return out, nil
}

func (s *reportService) FeedbackSummary(ctx context.Context) ([]domain.FeedbackSummary, error) {
	out, err := s.feedback.Summarize(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarizing feedback: %w", err)
	}
	return out, nil
}

func (s *reportService) RecentFeedback(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	out, err := s.feedback.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	return out, nil
}
