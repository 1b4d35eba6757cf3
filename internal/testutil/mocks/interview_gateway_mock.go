package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lucasv/prepdeck/internal/gateway"
	"github.com/lucasv/prepdeck/internal/models"
)

// MockInterviewGateway is a mock implementation of gateway.InterviewGateway
type MockInterviewGateway struct {
	mock.Mock
}

func (m *MockInterviewGateway) StartInterview(ctx context.Context, params gateway.StartInterviewParams) (gateway.StartInterviewResult, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(gateway.StartInterviewResult), args.Error(1)
}

func (m *MockInterviewGateway) SendInterviewMessage(ctx context.Context, sessionID, text string) (gateway.MessageResult, error) {
	args := m.Called(ctx, sessionID, text)
	return args.Get(0).(gateway.MessageResult), args.Error(1)
}

func (m *MockInterviewGateway) TranscribeAudio(ctx context.Context, sessionID string, audio []byte) (gateway.TranscriptionResult, error) {
	args := m.Called(ctx, sessionID, audio)
	return args.Get(0).(gateway.TranscriptionResult), args.Error(1)
}

func (m *MockInterviewGateway) CompleteInterview(ctx context.Context, sessionID, format string) (models.InterviewFeedback, error) {
	args := m.Called(ctx, sessionID, format)
	return args.Get(0).(models.InterviewFeedback), args.Error(1)
}

func (m *MockInterviewGateway) CancelInterview(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockInterviewGateway) InterviewHistory(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InterviewFeedback), args.Error(1)
}
