package schema

import "time"

// JobRunStatus is the lifecycle state of a job run
type JobRunStatus string

const (
	JobRunStatusRunning   JobRunStatus = "running"
	JobRunStatusSucceeded JobRunStatus = "succeeded"
	JobRunStatusFailed    JobRunStatus = "failed"
)

// JobLock represents the job_locks table - a lease that keeps two runs of the same job from overlapping
type JobLock struct {
	// Name is the job lock key, e.g. "market-chart:7"
	Name  string `gorm:"column:name;primaryKey;type:text"`
	Owner string `gorm:"column:owner;not null;type:text"`
	// LockedUntil is when the lease expires if the owner never releases it
	LockedUntil time.Time `gorm:"column:locked_until;not null;type:timestamptz"`
	AcquiredAt  time.Time `gorm:"column:acquired_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the JobLock model
func (JobLock) TableName() string {
	return "job_locks"
}

// JobRun represents the job_runs table - the ledger of every job invocation
type JobRun struct {
	// ID is a ULID
	ID          string       `gorm:"column:id;primaryKey;type:text"`
	JobName     string       `gorm:"column:job_name;not null;type:text;index:idx_job_runs_job_started,priority:1"`
	LockKey     string       `gorm:"column:lock_key;not null;type:text"`
	TriggeredBy string       `gorm:"column:triggered_by;not null;type:text"`
	Status      JobRunStatus `gorm:"column:status;not null;type:text"`
	// Counters of the bulk loops
	Success    int        `gorm:"column:success;not null;default:0"`
	Skipped    int        `gorm:"column:skipped;not null;default:0"`
	Errors     int        `gorm:"column:errors;not null;default:0"`
	Requests   int        `gorm:"column:requests;not null;default:0"`
	Error      *string    `gorm:"column:error;type:text"`
	StartedAt  time.Time  `gorm:"column:started_at;not null;type:timestamptz;index:idx_job_runs_job_started,priority:2"`
	FinishedAt *time.Time `gorm:"column:finished_at;type:timestamptz"`
}

// TableName specifies the table name for the JobRun model
func (JobRun) TableName() string {
	return "job_runs"
}
