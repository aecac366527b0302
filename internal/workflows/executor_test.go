package workflows_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
	"github.com/coinfolio/coinfolio-sync/internal/workflows"
)

type executorMocks struct {
	ctrl             *gomock.Controller
	runner           *mocks.MockRunner
	temporalActivity *mocks.MockActivity
}

func setupExecutor(t *testing.T) (*executorMocks, workflows.Executor) {
	ctrl := gomock.NewController(t)
	m := &executorMocks{
		ctrl:             ctrl,
		runner:           mocks.NewMockRunner(ctrl),
		temporalActivity: mocks.NewMockActivity(ctrl),
	}
	m.temporalActivity.EXPECT().
		GetInfo(gomock.Any()).
		Return(activity.Info{
			Attempt:           1,
			WorkflowExecution: workflow.Execution{ID: "sync-job-trending"},
		}).
		AnyTimes()
	return m, workflows.NewExecutor(m.runner, m.temporalActivity)
}

func TestExecutor_RunJob(t *testing.T) {
	m, exec := setupExecutor(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	want := &jobs.RunResult{RunID: "run-1", Stats: domain.SyncStats{Success: 1, Requests: 1}}

	m.runner.EXPECT().
		Run(ctx, domain.JobTrending, domain.JobParams{}, jobs.TRIGGER_TEMPORAL).
		Return(want, nil)

	got, err := exec.RunJob(ctx, workflows.JobRequest{Job: domain.JobTrending})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutor_RunJob_Errors(t *testing.T) {
	tests := []struct {
		name         string
		runErr       error
		expectedType string
	}{
		{
			name:         "lease held",
			runErr:       domain.ErrJobAlreadyRunning,
			expectedType: workflows.ERROR_TYPE_JOB_ALREADY_RUNNING,
		},
		{
			name:         "unknown chart duration",
			runErr:       fmt.Errorf("%w: 14", domain.ErrUnknownChartDuration),
			expectedType: workflows.ERROR_TYPE_INVALID_JOB,
		},
		{
			name:   "job failure",
			runErr: errors.New("failed to replace trending coins"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, exec := setupExecutor(t)
			defer m.ctrl.Finish()

			ctx := context.Background()
			m.runner.EXPECT().
				Run(ctx, domain.JobTrending, domain.JobParams{}, jobs.TRIGGER_TEMPORAL).
				Return(nil, tt.runErr)

			result, err := exec.RunJob(ctx, workflows.JobRequest{Job: domain.JobTrending})
			require.Error(t, err)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.runErr)

			var appErr *temporal.ApplicationError
			if tt.expectedType == "" {
				assert.False(t, errors.As(err, &appErr))
				return
			}
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.expectedType, appErr.Type())
			assert.True(t, appErr.NonRetryable())
		})
	}
}
