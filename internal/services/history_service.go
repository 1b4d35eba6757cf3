package services

import (
	"context"

	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/logger"
	"github.com/lucasv/prepdeck/internal/models"
	"github.com/lucasv/prepdeck/internal/repository"
)

// HistoryService fetches quiz and interview history from the backend and
// mirrors it into the local cache. When the backend is unreachable the
// cached copy is served instead.
type HistoryService interface {
	QuizHistory(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error)
	InterviewHistory(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error)
	RefreshQuizHistory(ctx context.Context, userID string) error
	RefreshInterviewHistory(ctx context.Context, userID string) error
}

type historyService struct {
	quizGW      gateway.QuizGateway
	interviewGW gateway.InterviewGateway
	repo        repository.HistoryRepository
	pageSize    int
	log         *logger.Logger
}

// NewHistoryService creates a new HistoryService. pageSize is the default
// list length when a caller does not set an explicit limit.
func NewHistoryService(quizGW gateway.QuizGateway, interviewGW gateway.InterviewGateway, repo repository.HistoryRepository, pageSize int) HistoryService {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &historyService{
		quizGW:      quizGW,
		interviewGW: interviewGW,
		repo:        repo,
		pageSize:    pageSize,
		log:         logger.Default().WithPrefix("history"),
	}
}

func (s *historyService) QuizHistory(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error) {
	if f.Limit <= 0 {
		f.Limit = s.pageSize
	}
	results, err := s.quizGW.QuizHistory(ctx, userID, f)
	if err != nil {
		s.log.Warn("backend quiz history unavailable, serving cache: %v", err)
		return s.repo.ListQuizResults(ctx, userID, f)
	}

	for _, r := range results {
		if saveErr := s.repo.SaveQuizResult(ctx, userID, r); saveErr != nil {
			s.log.Warn("failed to cache quiz result %s: %v", r.SubmissionID, saveErr)
		}
	}
	return results, nil
}

func (s *historyService) InterviewHistory(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error) {
	if f.Limit <= 0 {
		f.Limit = s.pageSize
	}
	reports, err := s.interviewGW.InterviewHistory(ctx, userID, f)
	if err != nil {
		s.log.Warn("backend interview history unavailable, serving cache: %v", err)
		return s.repo.ListInterviewFeedback(ctx, userID, f)
	}

	for _, fb := range reports {
		if saveErr := s.repo.SaveInterviewFeedback(ctx, userID, fb); saveErr != nil {
			s.log.Warn("failed to cache interview feedback %s: %v", fb.SessionID, saveErr)
		}
	}
	return reports, nil
}

func (s *historyService) RefreshQuizHistory(ctx context.Context, userID string) error {
	results, err := s.quizGW.QuizHistory(ctx, userID, models.QuizHistoryFilter{})
	if err != nil {
		return err
	}
	for _, r := range results {
		if saveErr := s.repo.SaveQuizResult(ctx, userID, r); saveErr != nil {
			s.log.Warn("failed to cache quiz result %s: %v", r.SubmissionID, saveErr)
		}
	}
	s.log.Debug("refreshed quiz history for user %s: %d results", userID, len(results))
	return nil
}

func (s *historyService) RefreshInterviewHistory(ctx context.Context, userID string) error {
	reports, err := s.interviewGW.InterviewHistory(ctx, userID, models.InterviewHistoryFilter{})
	if err != nil {
		return err
	}
	for _, fb := range reports {
		if saveErr := s.repo.SaveInterviewFeedback(ctx, userID, fb); saveErr != nil {
			s.log.Warn("failed to cache interview feedback %s: %v", fb.SessionID, saveErr)
		}
	}
	s.log.Debug("refreshed interview history for user %s: %d reports", userID, len(reports))
	return nil
}
