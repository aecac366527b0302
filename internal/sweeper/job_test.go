package sweeper_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
	"github.com/coinfolio/coinfolio-sync/internal/sweeper"
)

const testTimeout = 2 * time.Second

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type sweeperMocks struct {
	ctrl   *gomock.Controller
	runner *mocks.MockRunner
	clock  *mocks.MockClock
	ticks  chan time.Time
	runs   chan struct{}
}

func setupSweeper(t *testing.T, cfg sweeper.JobSweeperConfig) (*sweeperMocks, sweeper.Sweeper) {
	ctrl := gomock.NewController(t)
	m := &sweeperMocks{
		ctrl:   ctrl,
		runner: mocks.NewMockRunner(ctrl),
		clock:  mocks.NewMockClock(ctrl),
		ticks:  make(chan time.Time),
		runs:   make(chan struct{}, 10),
	}

	// Every wait blocks until the test sends a tick
	m.clock.EXPECT().After(cfg.Interval).Return((<-chan time.Time)(m.ticks)).AnyTimes()

	return m, sweeper.NewJobSweeper(cfg, m.runner, m.clock)
}

func (m *sweeperMocks) waitRun(t *testing.T) {
	t.Helper()
	select {
	case <-m.runs:
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for a job run")
	}
}

func startSweeper(ctx context.Context, s sweeper.Sweeper) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Start(ctx)
	}()
	return done
}

func TestJobSweeper_RunsOncePerInterval(t *testing.T) {
	cfg := sweeper.JobSweeperConfig{
		Job:      domain.JobMarketChart,
		Params:   domain.JobParams{Days: domain.ChartDays7},
		Interval: 2 * time.Hour,
	}
	m, s := setupSweeper(t, cfg)
	defer m.ctrl.Finish()

	assert.Equal(t, "job-sweeper:market-chart:7", s.Name())

	m.runner.EXPECT().
		Run(gomock.Any(), domain.JobMarketChart, cfg.Params, jobs.TRIGGER_SWEEPER).
		DoAndReturn(func(ctx context.Context, name domain.JobName, params domain.JobParams, triggeredBy string) (*jobs.RunResult, error) {
			m.runs <- struct{}{}
			return &jobs.RunResult{RunID: "run", Stats: domain.SyncStats{Success: 1}}, nil
		}).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := startSweeper(ctx, s)

	// First run happens immediately
	m.waitRun(t)

	// Second run only after the interval elapsed
	m.ticks <- time.Time{}
	m.waitRun(t)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(testTimeout):
		t.Fatal("sweeper did not stop")
	}
}

func TestJobSweeper_KeepsRunningAfterFailures(t *testing.T) {
	cfg := sweeper.JobSweeperConfig{Job: domain.JobTrending, Interval: 30 * time.Minute}
	m, s := setupSweeper(t, cfg)
	defer m.ctrl.Finish()

	gomock.InOrder(
		m.runner.EXPECT().
			Run(gomock.Any(), domain.JobTrending, domain.JobParams{}, jobs.TRIGGER_SWEEPER).
			DoAndReturn(func(ctx context.Context, name domain.JobName, params domain.JobParams, triggeredBy string) (*jobs.RunResult, error) {
				m.runs <- struct{}{}
				return nil, domain.ErrJobAlreadyRunning
			}),
		m.runner.EXPECT().
			Run(gomock.Any(), domain.JobTrending, domain.JobParams{}, jobs.TRIGGER_SWEEPER).
			DoAndReturn(func(ctx context.Context, name domain.JobName, params domain.JobParams, triggeredBy string) (*jobs.RunResult, error) {
				m.runs <- struct{}{}
				return nil, errors.New("database unavailable")
			}),
		m.runner.EXPECT().
			Run(gomock.Any(), domain.JobTrending, domain.JobParams{}, jobs.TRIGGER_SWEEPER).
			DoAndReturn(func(ctx context.Context, name domain.JobName, params domain.JobParams, triggeredBy string) (*jobs.RunResult, error) {
				m.runs <- struct{}{}
				return &jobs.RunResult{RunID: "run"}, nil
			}),
	)

	ctx := context.Background()
	done := startSweeper(ctx, s)

	m.waitRun(t)
	m.ticks <- time.Time{}
	m.waitRun(t)
	m.ticks <- time.Time{}
	m.waitRun(t)

	stopCtx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()
	require.NoError(t, s.Stop(stopCtx))
	require.NoError(t, <-done)
}

func TestJobSweeper_StopWhenNotRunning(t *testing.T) {
	m, s := setupSweeper(t, sweeper.JobSweeperConfig{Job: domain.JobTrending, Interval: time.Minute})
	defer m.ctrl.Finish()

	assert.NoError(t, s.Stop(context.Background()))
}

func TestJobSweeper_RejectsNonPositiveInterval(t *testing.T) {
	m, s := setupSweeper(t, sweeper.JobSweeperConfig{Job: domain.JobTrending})
	defer m.ctrl.Finish()

	assert.Error(t, s.Start(context.Background()))
}
