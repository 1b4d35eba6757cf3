package jobs

import (
	"github.com/lucasv/prepdeck/internal/worker"
)

// WorkerQueue implements JobQueue using a worker pool
type WorkerQueue struct {
	pool     *worker.Pool
	analyzer worker.BatchAnalyzerInterface
	history  worker.HistoryRefresherInterface
}

// NewWorkerQueue creates a new WorkerQueue implementation
func NewWorkerQueue(pool *worker.Pool, analyzer worker.BatchAnalyzerInterface, history worker.HistoryRefresherInterface) JobQueue {
	return &WorkerQueue{
		pool:     pool,
		analyzer: analyzer,
		history:  history,
	}
}

func (q *WorkerQueue) EnqueueBatchAnalyze(ids []string) error {
	return q.pool.Submit(&worker.BatchAnalyzeJob{
		Analyzer: q.analyzer,
		IDs:      ids,
	})
}

func (q *WorkerQueue) EnqueueHistoryRefresh(userID string) error {
	return q.pool.Submit(&worker.HistoryRefreshJob{
		History: q.history,
		UserID:  userID,
	})
}
