package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lucasv/prepdeck/internal/models"
)

// MockHistoryRepository is a mock implementation of repository.HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) SaveQuizResult(ctx context.Context, userID string, r models.QuizResult) error {
	args := m.Called(ctx, userID, r)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListQuizResults(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizResult), args.Error(1)
}

func (m *MockHistoryRepository) SaveInterviewFeedback(ctx context.Context, userID string, fb models.InterviewFeedback) error {
	args := m.Called(ctx, userID, fb)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListInterviewFeedback(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InterviewFeedback), args.Error(1)
}
