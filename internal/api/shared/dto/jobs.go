package dto

import (
	"time"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// JobSuccessResponse is the body of a finished job endpoint call
type JobSuccessResponse struct {
	Success bool             `json:"success"`
	RunID   string           `json:"run_id"`
	Stats   domain.SyncStats `json:"stats"`
}

// JobErrorResponse is the body of a failed job endpoint call
type JobErrorResponse struct {
	Error string `json:"error"`
}

// JobRunResponse represents one run of the job ledger
type JobRunResponse struct {
	ID          string           `json:"id"`
	JobName     string           `json:"job_name"`
	LockKey     string           `json:"lock_key"`
	TriggeredBy string           `json:"triggered_by"`
	Status      string           `json:"status"`
	Stats       domain.SyncStats `json:"stats"`
	Error       *string          `json:"error,omitempty"`
	StartedAt   time.Time        `json:"started_at"`
	FinishedAt  *time.Time       `json:"finished_at,omitempty"`
}

// MapJobRunsToDTO maps ledger rows to their response
func MapJobRunsToDTO(runs []schema.JobRun) []JobRunResponse {
	items := make([]JobRunResponse, 0, len(runs))
	for _, run := range runs {
		items = append(items, JobRunResponse{
			ID:          run.ID,
			JobName:     run.JobName,
			LockKey:     run.LockKey,
			TriggeredBy: run.TriggeredBy,
			Status:      string(run.Status),
			Stats: domain.SyncStats{
				Success:  run.Success,
				Skipped:  run.Skipped,
				Errors:   run.Errors,
				Requests: run.Requests,
			},
			Error:      run.Error,
			StartedAt:  run.StartedAt,
			FinishedAt: run.FinishedAt,
		})
	}
	return items
}
