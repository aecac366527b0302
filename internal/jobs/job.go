package jobs

import (
	"context"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
)

// Job is one synchronization job. Implementations are stateless between runs.
type Job interface {
	// Name returns the registered job name
	Name() domain.JobName
	// Run executes the job once. Per-item failures are counted in the returned stats;
	// an error means the run as a whole failed.
	Run(ctx context.Context, params domain.JobParams) (domain.SyncStats, error)
}
