package worker

import (
	"context"

	"github.com/lucasv/prepdeck/internal/logger"
)

// BatchAnalyzeJob runs AI analysis for a set of resources in the background.
// Per-resource failures are logged by the analyzer; the job itself only fails
// when the whole run is cancelled.
type BatchAnalyzeJob struct {
	Analyzer BatchAnalyzerInterface
	IDs      []string
}

func (j *BatchAnalyzeJob) Name() string { return "batch_analyze" }

func (j *BatchAnalyzeJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("resources", len(j.IDs))
	log.Info("starting background batch analysis")

	results := j.Analyzer.BatchAnalyze(ctx, j.IDs)

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		}
	}
	log.Info("batch analysis done: %d succeeded, %d failed, %d skipped", ok, len(results)-ok, len(j.IDs)-len(results))
	return ctx.Err()
}

// HistoryRefreshJob re-fetches a user's quiz and interview history into the
// local cache after a submission or completed interview.
type HistoryRefreshJob struct {
	History HistoryRefresherInterface
	UserID  string
}

func (j *HistoryRefreshJob) Name() string { return "history_refresh" }

func (j *HistoryRefreshJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("user_id", j.UserID)

	if err := j.History.RefreshQuizHistory(ctx, j.UserID); err != nil {
		log.Warn("quiz history refresh failed: %v", err)
	}
	if err := j.History.RefreshInterviewHistory(ctx, j.UserID); err != nil {
		log.Warn("interview history refresh failed: %v", err)
	}
	return ctx.Err()
}
