package repository

import (
	"context"

	"github.com/lucasv/prepdeck/internal/models"
)

// HistoryRepository persists fetched quiz results and interview feedback so
// history stays viewable when the backend is unreachable.
type HistoryRepository interface {
	SaveQuizResult(ctx context.Context, userID string, r models.QuizResult) error
	ListQuizResults(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error)
	SaveInterviewFeedback(ctx context.Context, userID string, fb models.InterviewFeedback) error
	ListInterviewFeedback(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error)
}
