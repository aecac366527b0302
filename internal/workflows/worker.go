package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"

	"github.com/coinfolio/coinfolio-sync/internal/jobs"
)

// WorkerSync defines the workflows of the sync worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_sync.go -package=mocks -mock_names=WorkerSync=MockSyncWorker
type WorkerSync interface {
	// SyncJob runs one job through the RunJob activity.
	// A run skipped because another one holds the lease completes with a nil result.
	SyncJob(ctx workflow.Context, req JobRequest) (*jobs.RunResult, error)
}

type WorkerSyncConfig struct {
	// JobTimeout bounds a single job run; it should match the job lease TTL
	JobTimeout time.Duration
}

// workerSync is the concrete implementation of WorkerSync
type workerSync struct {
	config   WorkerSyncConfig
	executor Executor
}

// NewWorkerSync creates a new sync worker instance
func NewWorkerSync(executor Executor, config WorkerSyncConfig) WorkerSync {
	if config.JobTimeout <= 0 {
		config.JobTimeout = 2 * time.Hour
	}
	return &workerSync{
		executor: executor,
		config:   config,
	}
}
