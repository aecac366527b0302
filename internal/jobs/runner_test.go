package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// stubJob returns fixed stats and error, recording the params it ran with
type stubJob struct {
	name   domain.JobName
	stats  domain.SyncStats
	err    error
	params []domain.JobParams
}

func (j *stubJob) Name() domain.JobName { return j.name }

func (j *stubJob) Run(_ context.Context, params domain.JobParams) (domain.SyncStats, error) {
	j.params = append(j.params, params)
	return j.stats, j.err
}

const testLockTTL = 30 * time.Minute

type runnerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
}

func setupRunner(t *testing.T, jobList ...jobs.Job) (*runnerMocks, jobs.Runner) {
	ctrl := gomock.NewController(t)
	m := &runnerMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	var waits []time.Duration
	return m, jobs.NewRunner(m.store, m.publisher, recordingClock(ctrl, &waits), testLockTTL, jobList...)
}

func TestRunner_Success(t *testing.T) {
	job := &stubJob{name: domain.JobMarketChart, stats: domain.SyncStats{Success: 4, Skipped: 1, Requests: 5}}
	m, runner := setupRunner(t, job)
	defer m.ctrl.Finish()

	ctx := context.Background()
	var owner, runID string

	gomock.InOrder(
		m.store.EXPECT().
			AcquireJobLock(ctx, "market-chart:7", gomock.Any(), testLockTTL).
			DoAndReturn(func(ctx context.Context, name, o string, ttl time.Duration) (bool, error) {
				owner = o
				return true, nil
			}),
		m.store.EXPECT().
			CreateJobRun(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, run *schema.JobRun) error {
				runID = run.ID
				assert.Len(t, run.ID, 26)
				assert.Equal(t, "market-chart", run.JobName)
				assert.Equal(t, "market-chart:7", run.LockKey)
				assert.Equal(t, jobs.TRIGGER_HTTP, run.TriggeredBy)
				assert.Equal(t, schema.JobRunStatusRunning, run.Status)
				assert.Equal(t, testNow, run.StartedAt)
				return nil
			}),
		m.store.EXPECT().
			FinishJobRun(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, input store.FinishJobRunInput) error {
				assert.Equal(t, runID, input.ID)
				assert.Equal(t, schema.JobRunStatusSucceeded, input.Status)
				assert.Equal(t, job.stats, input.Stats)
				assert.Nil(t, input.Error)
				return nil
			}),
		m.publisher.EXPECT().
			PublishJobCompleted(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, event *domain.JobCompletedEvent) error {
				assert.Equal(t, runID, event.RunID)
				assert.True(t, event.Succeeded)
				assert.Equal(t, domain.JobMarketChart, event.Job)
				return nil
			}),
		m.store.EXPECT().
			ReleaseJobLock(gomock.Any(), "market-chart:7", gomock.Any()).
			DoAndReturn(func(ctx context.Context, name, o string) error {
				assert.Equal(t, owner, o)
				return nil
			}),
	)

	result, err := runner.Run(ctx, domain.JobMarketChart, domain.JobParams{Days: domain.ChartDays7}, jobs.TRIGGER_HTTP)
	require.NoError(t, err)
	assert.Equal(t, runID, result.RunID)
	assert.Equal(t, job.stats, result.Stats)
	require.Len(t, job.params, 1)
	assert.Equal(t, domain.ChartDays7, job.params[0].Days)
}

func TestRunner_LockHeld(t *testing.T) {
	job := &stubJob{name: domain.JobCoinsList}
	m, runner := setupRunner(t, job)
	defer m.ctrl.Finish()

	m.store.EXPECT().AcquireJobLock(gomock.Any(), "coins-list", gomock.Any(), testLockTTL).Return(false, nil)

	result, err := runner.Run(context.Background(), domain.JobCoinsList, domain.JobParams{}, jobs.TRIGGER_SWEEPER)
	assert.ErrorIs(t, err, domain.ErrJobAlreadyRunning)
	assert.Nil(t, result)
	assert.Empty(t, job.params)
}

func TestRunner_JobFailureIsRecorded(t *testing.T) {
	jobErr := errors.New("failed to store market chart of bitcoin: connection reset")
	job := &stubJob{name: domain.JobTrending, stats: domain.SyncStats{Errors: 1, Requests: 1}, err: jobErr}
	m, runner := setupRunner(t, job)
	defer m.ctrl.Finish()

	m.store.EXPECT().AcquireJobLock(gomock.Any(), "trending", gomock.Any(), testLockTTL).Return(true, nil)
	m.store.EXPECT().CreateJobRun(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().
		FinishJobRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.FinishJobRunInput) error {
			assert.Equal(t, schema.JobRunStatusFailed, input.Status)
			require.NotNil(t, input.Error)
			assert.Equal(t, jobErr.Error(), *input.Error)
			return nil
		})
	// Publish and release failures are only logged
	m.publisher.EXPECT().
		PublishJobCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *domain.JobCompletedEvent) error {
			assert.False(t, event.Succeeded)
			assert.Equal(t, jobErr.Error(), event.Error)
			return errors.New("nats: no responders available")
		})
	m.store.EXPECT().ReleaseJobLock(gomock.Any(), "trending", gomock.Any()).Return(errors.New("conn closed"))

	result, err := runner.Run(context.Background(), domain.JobTrending, domain.JobParams{}, jobs.TRIGGER_TEMPORAL)
	assert.ErrorIs(t, err, jobErr)
	assert.Nil(t, result)
}

func TestRunner_CancelledContextStillWritesLedger(t *testing.T) {
	job := &stubJob{name: domain.JobCategories, err: context.Canceled}
	m, runner := setupRunner(t, job)
	defer m.ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	m.store.EXPECT().AcquireJobLock(ctx, "categories", gomock.Any(), testLockTTL).Return(true, nil)
	m.store.EXPECT().
		CreateJobRun(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *schema.JobRun) error {
			cancel()
			return nil
		})
	m.store.EXPECT().
		FinishJobRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ store.FinishJobRunInput) error {
			assert.NoError(t, ctx.Err())
			return nil
		})
	m.publisher.EXPECT().PublishJobCompleted(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().
		ReleaseJobLock(gomock.Any(), "categories", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _, _ string) error {
			assert.NoError(t, ctx.Err())
			return nil
		})

	_, err := runner.Run(ctx, domain.JobCategories, domain.JobParams{}, jobs.TRIGGER_HTTP)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_RejectsBeforeLocking(t *testing.T) {
	m, runner := setupRunner(t, &stubJob{name: domain.JobMarketChart})
	defer m.ctrl.Finish()

	ctx := context.Background()

	_, err := runner.Run(ctx, domain.JobExchangeRate, domain.JobParams{}, jobs.TRIGGER_HTTP)
	assert.ErrorIs(t, err, domain.ErrUnknownJob)

	_, err = runner.Run(ctx, domain.JobMarketChart, domain.JobParams{Days: domain.ChartDays(14)}, jobs.TRIGGER_HTTP)
	assert.ErrorIs(t, err, domain.ErrUnknownChartDuration)
}

func TestRunner_Jobs(t *testing.T) {
	m, runner := setupRunner(t,
		&stubJob{name: domain.JobCoinsList},
		&stubJob{name: domain.JobMarketChart},
		&stubJob{name: domain.JobCoinsList},
	)
	defer m.ctrl.Finish()

	assert.Equal(t, []domain.JobName{domain.JobCoinsList, domain.JobMarketChart}, runner.Jobs())
}

// blockingJob waits for its context and records the deadline it was given
type blockingJob struct {
	name     domain.JobName
	deadline time.Time
	bounded  bool
}

func (j *blockingJob) Name() domain.JobName { return j.name }

func (j *blockingJob) Run(ctx context.Context, _ domain.JobParams) (domain.SyncStats, error) {
	j.deadline, j.bounded = ctx.Deadline()
	<-ctx.Done()
	return domain.SyncStats{Success: 12, Requests: 12}, ctx.Err()
}

func TestRunner_RunStopsBeforeLeaseExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	var waits []time.Duration
	leaseTTL := 50 * time.Millisecond
	job := &blockingJob{name: domain.JobMarketChart}
	runner := jobs.NewRunner(mockStore, mockPublisher, recordingClock(ctrl, &waits), leaseTTL, job)

	mockStore.EXPECT().AcquireJobLock(gomock.Any(), "market-chart:365", gomock.Any(), leaseTTL).Return(true, nil)
	mockStore.EXPECT().CreateJobRun(gomock.Any(), gomock.Any()).Return(nil)
	mockStore.EXPECT().
		FinishJobRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.FinishJobRunInput) error {
			assert.NoError(t, ctx.Err())
			assert.Equal(t, schema.JobRunStatusFailed, input.Status)
			assert.Equal(t, 12, input.Stats.Success)
			require.NotNil(t, input.Error)
			assert.Contains(t, *input.Error, "lease")
			return nil
		})
	mockPublisher.EXPECT().PublishJobCompleted(gomock.Any(), gomock.Any()).Return(nil)
	mockStore.EXPECT().ReleaseJobLock(gomock.Any(), "market-chart:365", gomock.Any()).Return(nil)

	started := time.Now()
	result, err := runner.Run(context.Background(), domain.JobMarketChart, domain.JobParams{Days: domain.ChartDays365}, jobs.TRIGGER_SWEEPER)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, jobs.ErrLeaseExpired)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.True(t, job.bounded)
	assert.WithinDuration(t, started.Add(leaseTTL), job.deadline, time.Second)
}

func TestRunner_CallerCancellationIsNotALeaseExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	var waits []time.Duration
	job := &blockingJob{name: domain.JobTrending}
	runner := jobs.NewRunner(mockStore, nil, recordingClock(ctrl, &waits), testLockTTL, job)

	ctx, cancel := context.WithCancel(context.Background())
	mockStore.EXPECT().AcquireJobLock(ctx, "trending", gomock.Any(), testLockTTL).Return(true, nil)
	mockStore.EXPECT().
		CreateJobRun(ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *schema.JobRun) error {
			cancel()
			return nil
		})
	mockStore.EXPECT().FinishJobRun(gomock.Any(), gomock.Any()).Return(nil)
	mockStore.EXPECT().ReleaseJobLock(gomock.Any(), "trending", gomock.Any()).Return(nil)

	_, err := runner.Run(ctx, domain.JobTrending, domain.JobParams{}, jobs.TRIGGER_HTTP)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, jobs.ErrLeaseExpired)
	require.True(t, job.bounded)
}
