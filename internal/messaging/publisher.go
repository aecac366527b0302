package messaging

import (
	"context"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishNotification publishes a user notification to the message broker
	PublishNotification(ctx context.Context, event *domain.NotificationEvent) error
	// PublishJobCompleted publishes the outcome of a job run to the message broker
	PublishJobCompleted(ctx context.Context, event *domain.JobCompletedEvent) error
	// Close closes the connection
	Close()
}

// noopPublisher drops every event. It is used when no broker is configured.
type noopPublisher struct{}

// NewNoopPublisher creates a publisher that discards events
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishNotification(context.Context, *domain.NotificationEvent) error {
	return nil
}

func (noopPublisher) PublishJobCompleted(context.Context, *domain.JobCompletedEvent) error {
	return nil
}

func (noopPublisher) Close() {}
