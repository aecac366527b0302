package workflows

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

const (
	// ERROR_TYPE_JOB_ALREADY_RUNNING marks the activity error returned while another run holds the job lease
	ERROR_TYPE_JOB_ALREADY_RUNNING = "JobAlreadyRunning"
	// ERROR_TYPE_INVALID_JOB marks the activity error returned for an unknown job or chart duration
	ERROR_TYPE_INVALID_JOB = "InvalidJob"
)

// JobRequest is the input of the SyncJob workflow
type JobRequest struct {
	Job    domain.JobName   `json:"job"`
	Params domain.JobParams `json:"params"`
}

// Executor defines the interface for executing activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_sync.go -package=mocks -mock_names=Executor=MockSyncExecutor
type Executor interface {
	// RunJob runs a synchronization job once through the job runner.
	// Lease conflicts and invalid jobs are returned as non-retryable application errors.
	RunJob(ctx context.Context, req JobRequest) (*jobs.RunResult, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	runner           jobs.Runner
	temporalActivity adapter.Activity
}

// NewExecutor creates a new executor instance
func NewExecutor(runner jobs.Runner, temporalActivity adapter.Activity) Executor {
	return &executor{
		runner:           runner,
		temporalActivity: temporalActivity,
	}
}

func (e *executor) RunJob(ctx context.Context, req JobRequest) (*jobs.RunResult, error) {
	info := e.temporalActivity.GetInfo(ctx)
	logger.InfoCtx(ctx, "Running job activity",
		zap.String("job", req.Job.LockKey(req.Params)),
		zap.String("workflowID", info.WorkflowExecution.ID),
		zap.Int32("attempt", info.Attempt),
	)

	result, err := e.runner.Run(ctx, req.Job, req.Params, jobs.TRIGGER_TEMPORAL)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrJobAlreadyRunning):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ERROR_TYPE_JOB_ALREADY_RUNNING, err)
		case errors.Is(err, domain.ErrUnknownJob), errors.Is(err, domain.ErrUnknownChartDuration):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ERROR_TYPE_INVALID_JOB, err)
		default:
			return nil, err
		}
	}

	return result, nil
}
