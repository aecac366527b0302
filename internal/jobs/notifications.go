package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/messaging"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
	"github.com/coinfolio/coinfolio-sync/internal/types"
)

const defaultNotificationRetention = 30 * 24 * time.Hour

// NotificationCleanup deletes notifications older than the retention window
type NotificationCleanup struct {
	store     store.Store
	clock     adapter.Clock
	retention time.Duration
}

// NewNotificationCleanup creates a new notification cleanup job
func NewNotificationCleanup(st store.Store, clock adapter.Clock, cfg config.NotificationsConfig) *NotificationCleanup {
	retention := cfg.Retention
	if retention <= 0 {
		retention = defaultNotificationRetention
	}
	return &NotificationCleanup{store: st, clock: clock, retention: retention}
}

func (j *NotificationCleanup) Name() domain.JobName {
	return domain.JobNotificationsCleanup
}

func (j *NotificationCleanup) Run(ctx context.Context, _ domain.JobParams) (domain.SyncStats, error) {
	cutoff := j.clock.Now().Add(-j.retention)

	deleted, err := j.store.DeleteNotificationsBefore(ctx, cutoff)
	if err != nil {
		return domain.SyncStats{}, fmt.Errorf("failed to delete expired notifications: %w", err)
	}

	logger.InfoCtx(ctx, "Expired notifications deleted", zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))

	return domain.SyncStats{Success: int(deleted)}, nil
}

// PriceTargetSweep notifies users whose held coins reached their desired sell price.
// Every user is handled independently: a failure for one user is logged and counted
// without stopping the sweep.
type PriceTargetSweep struct {
	store     store.Store
	mailer    adapter.Mailer
	publisher messaging.Publisher
	clock     adapter.Clock
	// cooldown suppresses a repeat alert for a coin notified within the window; 0 alerts on every sweep
	cooldown time.Duration
}

// NewPriceTargetSweep creates a new price target sweep job. A nil mailer disables email delivery.
func NewPriceTargetSweep(st store.Store, mailer adapter.Mailer, publisher messaging.Publisher, clock adapter.Clock, cfg config.NotificationsConfig) *PriceTargetSweep {
	if publisher == nil {
		publisher = messaging.NewNoopPublisher()
	}
	return &PriceTargetSweep{
		store:     st,
		mailer:    mailer,
		publisher: publisher,
		clock:     clock,
		cooldown:  cfg.Cooldown,
	}
}

func (j *PriceTargetSweep) Name() domain.JobName {
	return domain.JobPriceTargets
}

// reachedTarget is a holding whose coin trades at or above its price target
type reachedTarget struct {
	coinID string
	name   string
	symbol string
	price  decimal.Decimal
	target decimal.Decimal
}

// userTargets groups the reached targets of one user, in query order
type userTargets struct {
	userID  string
	email   string
	targets []reachedTarget
}

// Run sweeps every holding with a price target.
// Success counts notified users, Skipped users whose coins were all in cooldown, Errors failed users.
func (j *PriceTargetSweep) Run(ctx context.Context, _ domain.JobParams) (domain.SyncStats, error) {
	holdings, err := j.store.GetPriceTargetHoldings(ctx)
	if err != nil {
		return domain.SyncStats{}, fmt.Errorf("failed to load price target holdings: %w", err)
	}

	groups := groupReachedTargets(holdings)

	var stats domain.SyncStats
	for _, group := range groups {
		notified, err := j.notifyUser(ctx, group)
		switch {
		case err != nil:
			stats.Errors++
			logger.ErrorCtx(ctx, fmt.Errorf("price target notification failed: %w", err), zap.String("user_id", group.userID))
		case notified:
			stats.Success++
		default:
			stats.Skipped++
		}
	}

	logger.InfoCtx(ctx, "Price target sweep finished",
		zap.Int("holdings", len(holdings)),
		zap.Int("users", len(groups)),
		zap.Int("notified", stats.Success),
		zap.Int("skipped", stats.Skipped),
		zap.Int("errors", stats.Errors),
	)

	return stats, nil
}

// groupReachedTargets keeps the holdings whose price is at or above target, grouped by user
func groupReachedTargets(holdings []schema.UserCoin) []*userTargets {
	var groups []*userTargets
	byUser := make(map[string]*userTargets)

	for _, holding := range holdings {
		if holding.Coin == nil || !holding.Coin.CurrentPrice.Valid || !holding.DesiredSellPrice.Valid {
			continue
		}
		price := holding.Coin.CurrentPrice.Decimal
		target := holding.DesiredSellPrice.Decimal
		if !target.IsPositive() || price.LessThan(target) {
			continue
		}

		group, ok := byUser[holding.UserID]
		if !ok {
			group = &userTargets{userID: holding.UserID}
			if holding.User != nil {
				group.email = holding.User.Email
			}
			byUser[holding.UserID] = group
			groups = append(groups, group)
		}

		reached := reachedTarget{
			coinID: holding.CoinID,
			name:   holding.CoinID,
			symbol: holding.CoinID,
			price:  price,
			target: target,
		}
		if holding.Info != nil {
			reached.name = holding.Info.Name
			reached.symbol = strings.ToUpper(holding.Info.Symbol)
		}
		group.targets = append(group.targets, reached)
	}

	return groups
}

// notifyUser sends one email to a user, then stores and publishes their notifications.
// It reports false when every coin was still in cooldown.
func (j *PriceTargetSweep) notifyUser(ctx context.Context, group *userTargets) (bool, error) {
	now := j.clock.Now()

	targets := group.targets
	if j.cooldown > 0 {
		targets = targets[:0:0]
		for _, target := range group.targets {
			recent, err := j.store.HasRecentNotification(ctx, group.userID, target.coinID, schema.NotificationKindPriceTarget, now.Add(-j.cooldown))
			if err != nil {
				return false, fmt.Errorf("failed to check recent notifications: %w", err)
			}
			if !recent {
				targets = append(targets, target)
			}
		}
	}
	if len(targets) == 0 {
		return false, nil
	}

	notifications := make([]schema.Notification, 0, len(targets))
	for _, target := range targets {
		coinID := target.coinID
		notifications = append(notifications, schema.Notification{
			ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
			UserID:    group.userID,
			Kind:      schema.NotificationKindPriceTarget,
			CoinID:    &coinID,
			Title:     fmt.Sprintf("%s reached your target price", target.name),
			Message:   fmt.Sprintf("%s (%s) is trading at %s, at or above your target of %s.", target.name, target.symbol, types.FormatUSD(target.price), types.FormatUSD(target.target)),
			CreatedAt: now,
		})
	}

	// Email goes out before the notifications are stored: stored notifications start the cooldown,
	// so a failed send must leave nothing behind for the next sweep to retry
	if j.mailer != nil && group.email != "" {
		if err := j.mailer.Send(ctx, buildPriceTargetEmail(group.email, targets)); err != nil {
			return false, fmt.Errorf("failed to send price target email: %w", err)
		}
	}

	if err := j.store.CreateNotifications(ctx, notifications); err != nil {
		return false, fmt.Errorf("failed to create notifications: %w", err)
	}

	for _, n := range notifications {
		event := &domain.NotificationEvent{
			ID:        n.ID,
			UserID:    n.UserID,
			Kind:      string(n.Kind),
			CoinID:    types.SafeString(n.CoinID),
			Title:     n.Title,
			Message:   n.Message,
			CreatedAt: n.CreatedAt,
		}
		if err := j.publisher.PublishNotification(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish notification", zap.String("notification_id", n.ID), zap.Error(err))
		}
	}

	return true, nil
}

// buildPriceTargetEmail lists every reached target of a user in one message
func buildPriceTargetEmail(to string, targets []reachedTarget) adapter.MailMessage {
	subject := fmt.Sprintf("%s reached your target price", targets[0].name)
	if len(targets) > 1 {
		subject = fmt.Sprintf("%d coins reached your target price", len(targets))
	}

	var body strings.Builder
	body.WriteString("The following coins in your portfolio reached your desired sell price:\n\n")
	for _, target := range targets {
		fmt.Fprintf(&body, "- %s (%s): %s (target %s)\n", target.name, target.symbol, types.FormatUSD(target.price), types.FormatUSD(target.target))
	}
	body.WriteString("\nUpdate or clear the target in your portfolio to stop these alerts.\n")

	return adapter.MailMessage{
		To:      to,
		Subject: subject,
		Body:    body.String(),
	}
}
