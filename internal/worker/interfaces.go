package worker

import (
	"context"

	"github.com/lucasv/prepdeck/internal/moderation"
)

// BatchAnalyzerInterface defines the interface for resource batch analysis
type BatchAnalyzerInterface interface {
	BatchAnalyze(ctx context.Context, ids []string) []moderation.BatchResult
}

// HistoryRefresherInterface defines the interface for history cache refresh
// This avoids import cycles by not importing the services package
type HistoryRefresherInterface interface {
	RefreshQuizHistory(ctx context.Context, userID string) error
	RefreshInterviewHistory(ctx context.Context, userID string) error
}
