package temporal

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

// ScheduleOrchestrator creates and updates Temporal schedules
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=ScheduleOrchestrator=MockScheduleOrchestrator
type ScheduleOrchestrator interface {
	// CreateSchedule registers a new schedule. It returns temporal.ErrScheduleAlreadyRunning if the id is taken.
	CreateSchedule(ctx context.Context, options client.ScheduleOptions) error
	// UpdateSchedule replaces the spec, action and policies of an existing schedule
	UpdateSchedule(ctx context.Context, options client.ScheduleOptions) error
}

type scheduleOrchestrator struct {
	client client.ScheduleClient
}

// NewScheduleOrchestrator wraps the schedule client of a Temporal client
func NewScheduleOrchestrator(c client.Client) ScheduleOrchestrator {
	return &scheduleOrchestrator{client: c.ScheduleClient()}
}

func (o *scheduleOrchestrator) CreateSchedule(ctx context.Context, options client.ScheduleOptions) error {
	_, err := o.client.Create(ctx, options)
	return err
}

func (o *scheduleOrchestrator) UpdateSchedule(ctx context.Context, options client.ScheduleOptions) error {
	handle := o.client.GetHandle(ctx, options.ID)
	return handle.Update(ctx, client.ScheduleUpdateOptions{
		DoUpdate: func(input client.ScheduleUpdateInput) (*client.ScheduleUpdate, error) {
			schedule := input.Description.Schedule
			schedule.Spec = &options.Spec
			schedule.Action = options.Action
			schedule.Policy = &client.SchedulePolicies{
				Overlap:        options.Overlap,
				CatchupWindow:  options.CatchupWindow,
				PauseOnFailure: options.PauseOnFailure,
			}
			return &client.ScheduleUpdate{Schedule: &schedule}, nil
		},
	})
}

// EnsureSchedules creates every schedule, updating the ones that already exist.
// It stops at the first failure.
func EnsureSchedules(ctx context.Context, orchestrator ScheduleOrchestrator, schedules []client.ScheduleOptions) error {
	for _, options := range schedules {
		err := orchestrator.CreateSchedule(ctx, options)
		if err == nil {
			logger.InfoCtx(ctx, "Created schedule", zap.String("schedule_id", options.ID))
			continue
		}

		if !errors.Is(err, temporal.ErrScheduleAlreadyRunning) {
			return fmt.Errorf("failed to create schedule %s: %w", options.ID, err)
		}

		if err := orchestrator.UpdateSchedule(ctx, options); err != nil {
			return fmt.Errorf("failed to update schedule %s: %w", options.ID, err)
		}
		logger.InfoCtx(ctx, "Updated schedule", zap.String("schedule_id", options.ID))
	}

	return nil
}
