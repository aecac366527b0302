package workflows

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
)

const SCHEDULE_ID_PREFIX = "sync-job-"

// ScheduleID returns the schedule id of a job key, e.g. "sync-job-market-chart-7"
func ScheduleID(jobKey string) string {
	return SCHEDULE_ID_PREFIX + strings.ReplaceAll(jobKey, ":", "-")
}

// BuildSchedules builds one Temporal schedule per job key. A zero interval disables the job.
// Overlapping runs are skipped so a slow run never queues a second one behind it.
func BuildSchedules(schedules map[string]time.Duration, taskQueue string, workflow interface{}) ([]client.ScheduleOptions, error) {
	keys := make([]string, 0, len(schedules))
	for key := range schedules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	options := make([]client.ScheduleOptions, 0, len(keys))
	for _, key := range keys {
		interval := schedules[key]
		if interval <= 0 {
			continue
		}

		name, params, err := domain.ParseJobKey(key)
		if err != nil {
			return nil, fmt.Errorf("invalid schedule %s: %w", key, err)
		}

		id := ScheduleID(key)
		options = append(options, client.ScheduleOptions{
			ID: id,
			Spec: client.ScheduleSpec{
				Intervals: []client.ScheduleIntervalSpec{{Every: interval}},
			},
			Action: &client.ScheduleWorkflowAction{
				ID:        id,
				Workflow:  workflow,
				Args:      []interface{}{JobRequest{Job: name, Params: params}},
				TaskQueue: taskQueue,
			},
			Overlap:       enums.SCHEDULE_OVERLAP_POLICY_SKIP,
			CatchupWindow: interval,
		})
	}

	return options, nil
}
