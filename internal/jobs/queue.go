package jobs

// JobQueue provides an abstraction for enqueueing background jobs
type JobQueue interface {
	EnqueueBatchAnalyze(ids []string) error
	EnqueueHistoryRefresh(userID string) error
}
