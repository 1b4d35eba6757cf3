package gateway

import (
	"context"

	"github.com/lucasv/prepdeck/internal/models"
)

// QuizGateway is the quiz-facing slice of the backend API.
// Split per workflow so controllers depend only on what they use, and so
// tests can mock each area independently.
type QuizGateway interface {
	GenerateQuiz(ctx context.Context, cfg models.QuizConfig) (models.Quiz, error)
	GetHint(ctx context.Context, quizID, questionID string) (string, error)
	SubmitQuiz(ctx context.Context, quizID string, responses []models.QuizResponse, timeTaken int) (models.QuizResult, error)
	QuizHistory(ctx context.Context, userID string, f models.QuizHistoryFilter) ([]models.QuizResult, error)
	ReAttemptQuiz(ctx context.Context, quizID string) (models.Quiz, error)
	QuizReview(ctx context.Context, quizID, submissionID string) (models.QuizReview, error)
}

// InterviewGateway is the interview-facing slice of the backend API.
type InterviewGateway interface {
	StartInterview(ctx context.Context, params StartInterviewParams) (StartInterviewResult, error)
	SendInterviewMessage(ctx context.Context, sessionID, text string) (MessageResult, error)
	TranscribeAudio(ctx context.Context, sessionID string, audio []byte) (TranscriptionResult, error)
	CompleteInterview(ctx context.Context, sessionID, format string) (models.InterviewFeedback, error)
	CancelInterview(ctx context.Context, sessionID string) error
	InterviewHistory(ctx context.Context, userID string, f models.InterviewHistoryFilter) ([]models.InterviewFeedback, error)
}

// AdminGateway is the moderation-facing slice of the backend API.
type AdminGateway interface {
	ListResources(ctx context.Context) ([]models.ResourceRecord, error)
	PendingAnalysis(ctx context.Context) ([]models.ResourceRecord, error)
	AnalyzeResource(ctx context.Context, id string) (models.ResourceRecord, error)
	ApproveResource(ctx context.Context, id, feedback string) error
	RejectResource(ctx context.Context, id, feedback string) error
	DeleteResource(ctx context.Context, id string) error
	BulkDeleteResources(ctx context.Context, ids []string) error
	ModerationAnalytics(ctx context.Context, timeframe string) (models.ModerationAnalytics, error)
	Dashboard(ctx context.Context) (models.DashboardSummary, error)
	ListUsers(ctx context.Context) ([]models.AdminUser, error)
	Activities(ctx context.Context) ([]models.ActivityEntry, error)
}

// Ensure Client implements all gateway interfaces
var (
	_ QuizGateway      = (*Client)(nil)
	_ InterviewGateway = (*Client)(nil)
	_ AdminGateway     = (*Client)(nil)
)
