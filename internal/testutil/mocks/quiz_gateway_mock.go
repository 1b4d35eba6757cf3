package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lucasv/prepdeck/internal/models"
)

// MockQuizGateway is a mock implementation of gateway.QuizGateway
type MockQuizGateway struct {
	mock.Mock
}

func (m *MockQuizGateway) GenerateQuiz(ctx context.Context, cfg models.QuizConfig) (models.Quiz, error) {
	args := m.Called(ctx, cfg)
	return args.Get(0).(models.Quiz), args.Error(1)
}

func (m *MockQuizGateway) GetHint(ctx context.Context, quizID, questionID string) (string, error) {
	args := m.Called(ctx, quizID, questionID)
	return args.String(0), args.Error(1)
}

func (m *MockQuizGateway) SubmitQuiz(ctx context.Context, quizID string, responses []models.QuizResponse, timeTaken int) (models.QuizResult, error) {
	args := m.Called(ctx, quizID, responses, timeTaken)
	return args.Get(0).(models.QuizResult), args.Error(1)
}

func (m *MockQuizGateway) QuizHistory(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.QuizResult), args.Error(1)
}

func (m *MockQuizGateway) ReAttemptQuiz(ctx context.Context, quizID string) (models.Quiz, error) {
	args := m.Called(ctx, quizID)
	return args.Get(0).(models.Quiz), args.Error(1)
}

func (m *MockQuizGateway) QuizReview(ctx context.Context, quizID, submissionID string) (models.QuizReview, error) {
	args := m.Called(ctx, quizID, submissionID)
	return args.Get(0).(models.QuizReview), args.Error(1)
}
