package jobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

func TestNotificationCleanup_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var waits []time.Duration
	mockStore := mocks.NewMockStore(ctrl)
	job := jobs.NewNotificationCleanup(mockStore, recordingClock(ctrl, &waits), config.NotificationsConfig{Retention: 720 * time.Hour})

	ctx := context.Background()
	mockStore.EXPECT().DeleteNotificationsBefore(ctx, testNow.Add(-720*time.Hour)).Return(int64(3), nil)

	stats, err := job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Success: 3}, stats)
}

func holding(userID, email, coinID, symbol string, price, target string) schema.UserCoin {
	return schema.UserCoin{
		UserID:           userID,
		CoinID:           coinID,
		DesiredSellPrice: decimal.NewNullDecimal(decimal.RequireFromString(target)),
		User:             &schema.User{ID: userID, Email: email},
		Coin:             &schema.Coin{ID: coinID, CurrentPrice: decimal.NewNullDecimal(decimal.RequireFromString(price))},
		Info:             &schema.CoinsListIDMap{ID: coinID, Symbol: symbol, Name: coinID},
	}
}

type sweepMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	mailer    *mocks.MockMailer
	publisher *mocks.MockPublisher
	waits     []time.Duration
}

func setupSweep(t *testing.T, cooldown time.Duration) (*sweepMocks, *jobs.PriceTargetSweep) {
	ctrl := gomock.NewController(t)
	m := &sweepMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		mailer:    mocks.NewMockMailer(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
	}
	clock := recordingClock(ctrl, &m.waits)
	return m, jobs.NewPriceTargetSweep(m.store, m.mailer, m.publisher, clock, config.NotificationsConfig{Cooldown: cooldown})
}

func TestPriceTargetSweep_GroupsByUserAndIsolatesFailures(t *testing.T) {
	m, job := setupSweep(t, 0)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetPriceTargetHoldings(ctx).Return([]schema.UserCoin{
		holding("user-1", "one@example.com", "bitcoin", "btc", "70000", "65000"),
		holding("user-1", "one@example.com", "ethereum", "eth", "3000", "4000"),
		holding("user-2", "two@example.com", "solana", "sol", "150", "150"),
		holding("user-1", "one@example.com", "cardano", "ada", "1.2", "1"),
	}, nil)

	// user-1: bitcoin and cardano reached, ethereum did not; the email goes out before anything is stored
	gomock.InOrder(
		m.mailer.EXPECT().
			Send(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, msg adapter.MailMessage) error {
				assert.Equal(t, "one@example.com", msg.To)
				assert.Equal(t, "2 coins reached your target price", msg.Subject)
				assert.Contains(t, msg.Body, "bitcoin (BTC): $70000.00 (target $65000.00)")
				assert.Contains(t, msg.Body, "cardano (ADA)")
				assert.NotContains(t, msg.Body, "ethereum")
				return nil
			}),
		m.store.EXPECT().
			CreateNotifications(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, notifications []schema.Notification) error {
				require.Len(t, notifications, 2)
				assert.Equal(t, "user-1", notifications[0].UserID)
				assert.Equal(t, "bitcoin", *notifications[0].CoinID)
				assert.Equal(t, "cardano", *notifications[1].CoinID)
				assert.Equal(t, schema.NotificationKindPriceTarget, notifications[0].Kind)
				assert.Contains(t, notifications[0].Message, "$70000.00")
				assert.NotEqual(t, notifications[0].ID, notifications[1].ID)
				return nil
			}),
		// A failed publish does not fail the user
		m.publisher.EXPECT().PublishNotification(ctx, gomock.Any()).Return(errors.New("nats down")),
		m.publisher.EXPECT().PublishNotification(ctx, gomock.Any()).Return(nil),
	)

	// user-2: price equal to target qualifies, but the email fails so nothing is stored or published
	m.mailer.EXPECT().
		Send(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg adapter.MailMessage) error {
			assert.Equal(t, "two@example.com", msg.To)
			return errors.New("smtp 421")
		})

	stats, err := job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Success: 1, Errors: 1}, stats)
}

func TestPriceTargetSweep_RepeatsWithoutCooldown(t *testing.T) {
	m, job := setupSweep(t, 0)
	defer m.ctrl.Finish()

	ctx := context.Background()
	holdings := []schema.UserCoin{holding("user-1", "", "bitcoin", "btc", "70000", "65000")}

	// Two sweeps, two notifications: no email since the user has no address
	m.store.EXPECT().GetPriceTargetHoldings(ctx).Return(holdings, nil).Times(2)
	m.store.EXPECT().CreateNotifications(ctx, gomock.Len(1)).Return(nil).Times(2)
	m.publisher.EXPECT().PublishNotification(ctx, gomock.Any()).Return(nil).Times(2)

	for i := 0; i < 2; i++ {
		stats, err := job.Run(ctx, domain.JobParams{})
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStats{Success: 1}, stats)
	}
}

func TestPriceTargetSweep_CooldownSuppressesRepeat(t *testing.T) {
	m, job := setupSweep(t, 24*time.Hour)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetPriceTargetHoldings(ctx).Return([]schema.UserCoin{
		holding("user-1", "one@example.com", "bitcoin", "btc", "70000", "65000"),
		holding("user-2", "two@example.com", "ethereum", "eth", "5000", "4000"),
	}, nil)

	since := testNow.Add(-24 * time.Hour)
	m.store.EXPECT().HasRecentNotification(ctx, "user-1", "bitcoin", schema.NotificationKindPriceTarget, since).Return(true, nil)
	m.store.EXPECT().HasRecentNotification(ctx, "user-2", "ethereum", schema.NotificationKindPriceTarget, since).Return(false, nil)
	m.store.EXPECT().CreateNotifications(ctx, gomock.Len(1)).Return(nil)
	m.publisher.EXPECT().PublishNotification(ctx, gomock.Any()).Return(nil)
	m.mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, msg adapter.MailMessage) error {
		assert.Equal(t, "two@example.com", msg.To)
		assert.Equal(t, "ethereum reached your target price", msg.Subject)
		return nil
	})

	stats, err := job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Success: 1, Skipped: 1}, stats)
}

func TestPriceTargetSweep_LoadError(t *testing.T) {
	m, job := setupSweep(t, 0)
	defer m.ctrl.Finish()

	m.store.EXPECT().GetPriceTargetHoldings(gomock.Any()).Return(nil, errors.New("relation does not exist"))

	_, err := job.Run(context.Background(), domain.JobParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load price target holdings")
}

func TestPriceTargetSweep_FailedEmailIsRetriedDespiteCooldown(t *testing.T) {
	m, job := setupSweep(t, 24*time.Hour)
	defer m.ctrl.Finish()

	ctx := context.Background()
	holdings := []schema.UserCoin{holding("user-1", "one@example.com", "bitcoin", "btc", "70000", "65000")}
	since := testNow.Add(-24 * time.Hour)

	// First sweep: the relay rejects the email, so no notification starts the cooldown
	m.store.EXPECT().GetPriceTargetHoldings(ctx).Return(holdings, nil).Times(2)
	m.store.EXPECT().HasRecentNotification(ctx, "user-1", "bitcoin", schema.NotificationKindPriceTarget, since).Return(false, nil).Times(2)
	gomock.InOrder(
		m.mailer.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp 421")),
		m.mailer.EXPECT().Send(ctx, gomock.Any()).Return(nil),
		m.store.EXPECT().CreateNotifications(ctx, gomock.Len(1)).Return(nil),
		m.publisher.EXPECT().PublishNotification(ctx, gomock.Any()).Return(nil),
	)

	stats, err := job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Errors: 1}, stats)

	// Second sweep: the cooldown lookup finds nothing, so the email is retried
	stats, err = job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Success: 1}, stats)
}
