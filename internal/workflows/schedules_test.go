package workflows_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/workflows"
)

func TestBuildSchedules(t *testing.T) {
	worker := workflows.NewWorkerSync(nil, workflows.WorkerSyncConfig{})

	options, err := workflows.BuildSchedules(map[string]time.Duration{
		"trending":       30 * time.Minute,
		"market-chart:7": 2 * time.Hour,
		"categories":     0,
	}, "coinfolio-sync", worker.SyncJob)
	require.NoError(t, err)

	// Sorted by key, disabled jobs left out
	require.Len(t, options, 2)
	assert.Equal(t, "sync-job-market-chart-7", options[0].ID)
	assert.Equal(t, "sync-job-trending", options[1].ID)

	chart := options[0]
	assert.Equal(t, enums.SCHEDULE_OVERLAP_POLICY_SKIP, chart.Overlap)
	require.Len(t, chart.Spec.Intervals, 1)
	assert.Equal(t, 2*time.Hour, chart.Spec.Intervals[0].Every)

	action, ok := chart.Action.(*client.ScheduleWorkflowAction)
	require.True(t, ok)
	assert.Equal(t, "coinfolio-sync", action.TaskQueue)
	assert.Equal(t, []interface{}{workflows.JobRequest{
		Job:    domain.JobMarketChart,
		Params: domain.JobParams{Days: domain.ChartDays7},
	}}, action.Args)
}

func TestBuildSchedules_InvalidKey(t *testing.T) {
	_, err := workflows.BuildSchedules(map[string]time.Duration{
		"market-chart:14": time.Hour,
	}, "coinfolio-sync", nil)

	assert.ErrorIs(t, err, domain.ErrUnknownChartDuration)
}
