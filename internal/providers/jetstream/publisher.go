package jetstream

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/messaging"
)

const subjectPrefix = "coinfolio"

// Config holds the configuration for NATS JetStream connection
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher creates a new NATS JetStream publisher and makes sure the stream capturing
// the coinfolio subjects exists
func NewPublisher(ctx context.Context, cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	err = js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{subjectPrefix + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   7 * 24 * time.Hour,
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to create stream %s: %w", cfg.StreamName, err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishNotification publishes a notification to NATS JetStream
func (p *publisher) PublishNotification(ctx context.Context, event *domain.NotificationEvent) error {
	return p.publish(ctx, NotificationSubject(event.Kind), event.ID, event)
}

// PublishJobCompleted publishes a job run outcome to NATS JetStream
func (p *publisher) PublishJobCompleted(ctx context.Context, event *domain.JobCompletedEvent) error {
	return p.publish(ctx, JobCompletedSubject(event.Job), event.RunID, event)
}

func (p *publisher) publish(ctx context.Context, subject, msgID string, event interface{}) error {
	logger.DebugCtx(ctx, "Publishing Nats event", zap.String("subject", subject), zap.Any("event", event))

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// The message id lets the stream drop duplicates when a publish is retried
	_, err = p.js.Publish(ctx, subject, data, jetstream.WithMsgID(msgID))
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// NotificationSubject returns the subject of a notification kind
// e.g., coinfolio.notifications.price_target
func NotificationSubject(kind string) string {
	return fmt.Sprintf("%s.notifications.%s", subjectPrefix, kind)
}

// JobCompletedSubject returns the subject of a job completion
// e.g., coinfolio.jobs.market-chart.completed
func JobCompletedSubject(job domain.JobName) string {
	return fmt.Sprintf("%s.jobs.%s.completed", subjectPrefix, job)
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
