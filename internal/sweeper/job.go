package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

// JobSweeperConfig holds configuration for a job sweeper
type JobSweeperConfig struct {
	Job      domain.JobName
	Params   domain.JobParams
	Interval time.Duration // Time to sleep between runs
}

// jobSweeper implements the Sweeper interface by running one job on a fixed interval
type jobSweeper struct {
	config    JobSweeperConfig
	runner    jobs.Runner
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewJobSweeper creates a sweeper that runs a job right away and then once every interval
func NewJobSweeper(config JobSweeperConfig, runner jobs.Runner, clock adapter.Clock) Sweeper {
	return &jobSweeper{
		config:    config,
		runner:    runner,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *jobSweeper) Name() string {
	return "job-sweeper:" + s.config.Job.LockKey(s.config.Params)
}

// Start runs the job until the context is canceled or Stop is called
func (s *jobSweeper) Start(ctx context.Context) error {
	if s.config.Interval <= 0 {
		return fmt.Errorf("%s: interval must be positive", s.Name())
	}
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting job sweeper",
		zap.String("sweeper", s.Name()),
		zap.Duration("interval", s.config.Interval),
	)

	for {
		s.runOnce(ctx)

		if !s.sleep(ctx, s.config.Interval) {
			logger.InfoCtx(ctx, "Job sweeper stopping", zap.String("sweeper", s.Name()))
			return nil
		}
	}
}

// Stop gracefully stops the sweeper, waiting for an in-progress run to finish
func (s *jobSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping job sweeper", zap.String("sweeper", s.Name()))

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Job sweeper stopped gracefully", zap.String("sweeper", s.Name()))
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Job sweeper stop interrupted by context timeout", zap.String("sweeper", s.Name()))
		return ctx.Err()
	}
}

// runOnce runs the job and logs its outcome. Failures wait for the next interval.
func (s *jobSweeper) runOnce(ctx context.Context) {
	result, err := s.runner.Run(ctx, s.config.Job, s.config.Params, jobs.TRIGGER_SWEEPER)
	switch {
	case errors.Is(err, domain.ErrJobAlreadyRunning):
		logger.InfoCtx(ctx, "Job already running elsewhere, skipping",
			zap.String("sweeper", s.Name()),
		)
	case err != nil:
		if !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, fmt.Errorf("%s: %w", s.Name(), err))
		}
	default:
		logger.InfoCtx(ctx, "Job run completed",
			zap.String("sweeper", s.Name()),
			zap.String("run_id", result.RunID),
			zap.Int("success", result.Stats.Success),
			zap.Int("skipped", result.Stats.Skipped),
			zap.Int("errors", result.Stats.Errors),
		)
	}
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted by context
func (s *jobSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}
