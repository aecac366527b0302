package workflows

import (
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

// SyncJob runs a synchronization job. Job failures are reported, not retried: the next
// scheduled run starts from the cached state anyway.
func (w *workerSync) SyncJob(ctx workflow.Context, req JobRequest) (*jobs.RunResult, error) {
	jobKey := req.Job.LockKey(req.Params)
	logger.InfoWf(ctx, "Starting sync job", zap.String("job", jobKey))

	// Configure activity options
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.JobTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var result jobs.RunResult
	err := workflow.ExecuteActivity(ctx, w.executor.RunJob, req).Get(ctx, &result)
	if err != nil {
		var appErr *temporal.ApplicationError
		if errors.As(err, &appErr) && appErr.Type() == ERROR_TYPE_JOB_ALREADY_RUNNING {
			logger.InfoWf(ctx, "Sync job skipped, another run holds the lease", zap.String("job", jobKey))
			return nil, nil
		}

		logger.ErrorWf(ctx,
			fmt.Errorf("failed to run sync job"),
			zap.Error(err),
			zap.String("job", jobKey),
		)
		return nil, err
	}

	logger.InfoWf(ctx, "Sync job completed",
		zap.String("job", jobKey),
		zap.String("runID", result.RunID),
		zap.Int("success", result.Stats.Success),
		zap.Int("skipped", result.Stats.Skipped),
		zap.Int("errors", result.Stats.Errors),
	)

	return &result, nil
}
