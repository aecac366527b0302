package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/messaging"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

const (
	defaultLockTTL = 2 * time.Hour

	TRIGGER_HTTP     = "http"
	TRIGGER_SWEEPER  = "sweeper"
	TRIGGER_TEMPORAL = "temporal"
)

// ErrLeaseExpired is returned when a run is stopped because it outlived its job lease
var ErrLeaseExpired = errors.New("job lease expired")

// RunResult is the outcome of a successful job run
type RunResult struct {
	RunID string           `json:"run_id"`
	Stats domain.SyncStats `json:"stats"`
}

// Runner executes registered jobs behind a per-job lease, recording every run in the ledger
//
//go:generate mockgen -source=runner.go -destination=../mocks/runner.go -package=mocks -mock_names=Runner=MockRunner
type Runner interface {
	// Run executes a job once. It returns domain.ErrJobAlreadyRunning when another run holds the lease,
	// domain.ErrUnknownJob for an unregistered name and domain.ErrUnknownChartDuration for a bad bucket.
	// The job runs under a deadline equal to the lease TTL and fails with ErrLeaseExpired when it hits it.
	Run(ctx context.Context, name domain.JobName, params domain.JobParams, triggeredBy string) (*RunResult, error)
	// Jobs returns the registered job names
	Jobs() []domain.JobName
}

type runner struct {
	jobs      map[domain.JobName]Job
	order     []domain.JobName
	store     store.Store
	publisher messaging.Publisher
	clock     adapter.Clock
	lockTTL   time.Duration
}

// NewRunner creates a runner over the given jobs. A nil publisher drops completion events.
func NewRunner(st store.Store, publisher messaging.Publisher, clock adapter.Clock, lockTTL time.Duration, jobs ...Job) Runner {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}

	r := &runner{
		jobs:      make(map[domain.JobName]Job, len(jobs)),
		store:     st,
		publisher: publisher,
		clock:     clock,
		lockTTL:   lockTTL,
	}
	for _, job := range jobs {
		if _, ok := r.jobs[job.Name()]; !ok {
			r.order = append(r.order, job.Name())
		}
		r.jobs[job.Name()] = job
	}
	return r
}

func (r *runner) Jobs() []domain.JobName {
	return append([]domain.JobName(nil), r.order...)
}

func (r *runner) Run(ctx context.Context, name domain.JobName, params domain.JobParams, triggeredBy string) (*RunResult, error) {
	job, ok := r.jobs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownJob, name)
	}
	if name == domain.JobMarketChart && !params.Days.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownChartDuration, params.Days)
	}

	lockKey := name.LockKey(params)
	owner := uuid.NewString()

	// The deadline starts before the lease so the run always ends before the lease can be taken over
	runCtx, cancel := context.WithTimeout(ctx, r.lockTTL)
	defer cancel()

	acquired, err := r.store.AcquireJobLock(ctx, lockKey, owner, r.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire job lock %s: %w", lockKey, err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", domain.ErrJobAlreadyRunning, lockKey)
	}
	defer func() {
		// Release even when the caller's context is gone, otherwise the lease blocks until it expires
		if err := r.store.ReleaseJobLock(context.WithoutCancel(ctx), lockKey, owner); err != nil {
			logger.WarnCtx(ctx, "Failed to release job lock", zap.String("lock_key", lockKey), zap.Error(err))
		}
	}()

	startedAt := r.clock.Now()
	run := &schema.JobRun{
		ID:          ulid.MustNew(ulid.Timestamp(startedAt), ulid.DefaultEntropy()).String(),
		JobName:     string(name),
		LockKey:     lockKey,
		TriggeredBy: triggeredBy,
		Status:      schema.JobRunStatusRunning,
		StartedAt:   startedAt,
	}
	if err := r.store.CreateJobRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record job run: %w", err)
	}

	logger.InfoCtx(ctx, "Job started",
		zap.String("job", lockKey),
		zap.String("run_id", run.ID),
		zap.String("triggered_by", triggeredBy),
	)

	stats, runErr := job.Run(runCtx, params)
	finishedAt := r.clock.Now()
	if runErr != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
		runErr = fmt.Errorf("%w: %s ran longer than its %s lease: %w", ErrLeaseExpired, lockKey, r.lockTTL, runErr)
	}

	finish := store.FinishJobRunInput{
		ID:         run.ID,
		Status:     schema.JobRunStatusSucceeded,
		Stats:      stats,
		FinishedAt: finishedAt,
	}
	event := &domain.JobCompletedEvent{
		RunID:       run.ID,
		Job:         name,
		LockKey:     lockKey,
		TriggeredBy: triggeredBy,
		Succeeded:   runErr == nil,
		Stats:       stats,
		StartedAt:   startedAt,
		FinishedAt:  finishedAt,
	}
	if runErr != nil {
		msg := runErr.Error()
		finish.Status = schema.JobRunStatusFailed
		finish.Error = &msg
		event.Error = msg
	}

	// The ledger and event must be written even if the job was cancelled
	ledgerCtx := context.WithoutCancel(ctx)
	if err := r.store.FinishJobRun(ledgerCtx, finish); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to record job run outcome: %w", err), zap.String("run_id", run.ID))
	}
	if err := r.publisher.PublishJobCompleted(ledgerCtx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish job completion", zap.String("run_id", run.ID), zap.Error(err))
	}

	fields := []zap.Field{
		zap.String("job", lockKey),
		zap.String("run_id", run.ID),
		zap.Duration("duration", finishedAt.Sub(startedAt)),
		zap.Int("success", stats.Success),
		zap.Int("skipped", stats.Skipped),
		zap.Int("errors", stats.Errors),
		zap.Int("requests", stats.Requests),
	}
	if runErr != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("job %s failed: %w", lockKey, runErr), fields...)
		return nil, runErr
	}

	logger.InfoCtx(ctx, "Job finished", fields...)
	return &RunResult{RunID: run.ID, Stats: stats}, nil
}
