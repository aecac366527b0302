package jobs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
)

var testPacing = jobs.PacingConfig{
	RPMLimit:     30,
	SafetyMargin: 100 * time.Millisecond,
	CoolDown:     60 * time.Second,
}

type marketChartMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	coingecko *mocks.MockCoinGeckoClient
	clock     *mocks.MockClock
	waits     []time.Duration
}

func setupMarketChartSync(t *testing.T) (*marketChartMocks, *jobs.MarketChartSync) {
	ctrl := gomock.NewController(t)
	m := &marketChartMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		coingecko: mocks.NewMockCoinGeckoClient(ctrl),
	}
	m.clock = recordingClock(ctrl, &m.waits)
	return m, jobs.NewMarketChartSync(m.store, m.coingecko, m.clock, testPacing)
}

func chartFor(coinID string) *coingecko.MarketChart {
	return &coingecko.MarketChart{Prices: [][]float64{{1709294400000, float64(len(coinID))}}}
}

func TestMarketChartSync_UnknownDurationFailsBeforeFetching(t *testing.T) {
	m, job := setupMarketChartSync(t)
	defer m.ctrl.Finish()

	// No store or upstream expectations: any call fails the test
	stats, err := job.Run(context.Background(), domain.JobParams{Days: domain.ChartDays(14)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownChartDuration)
	assert.Equal(t, domain.SyncStats{}, stats)
}

func TestMarketChartSync_PacesRequests(t *testing.T) {
	m, job := setupMarketChartSync(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	coinIDs := []string{"bitcoin", "ethereum", "solana", "cardano"}

	m.store.EXPECT().GetCoinIDs(ctx).Return(coinIDs, nil)
	for _, id := range coinIDs {
		m.coingecko.EXPECT().GetMarketChart(ctx, id, domain.ChartDays1).Return(chartFor(id), nil)
		m.store.EXPECT().UpsertMarketChart(ctx, id, domain.ChartDays1, chartFor(id).Prices, testNow).Return(nil)
	}

	stats, err := job.Run(ctx, domain.JobParams{Days: domain.ChartDays1})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncStats{Success: 4, Requests: 4}, stats)

	n := len(coinIDs)
	delay := 2100 * time.Millisecond
	assert.GreaterOrEqual(t, sum(m.waits), time.Duration(n-1)*delay)
	for _, w := range m.waits {
		assert.Equal(t, delay, w)
	}
	// No wait before the first request, a wait before every later one and a top-up after each success
	assert.Len(t, m.waits, (n-1)+n)
}

func TestMarketChartSync_PartialFailureIsolation(t *testing.T) {
	m, job := setupMarketChartSync(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	coinIDs := []string{"coin-1", "coin-2", "coin-3", "coin-4", "coin-5"}

	m.store.EXPECT().GetCoinIDs(ctx).Return(coinIDs, nil)
	for _, id := range coinIDs {
		if id == "coin-3" {
			m.coingecko.EXPECT().GetMarketChart(ctx, id, domain.ChartDays7).
				Return(nil, fmt.Errorf("market chart %s: %w", id, domain.ErrMalformedPayload))
			continue
		}
		m.coingecko.EXPECT().GetMarketChart(ctx, id, domain.ChartDays7).Return(chartFor(id), nil)
		m.store.EXPECT().UpsertMarketChart(ctx, id, domain.ChartDays7, gomock.Any(), testNow).Return(nil)
	}

	stats, err := job.Run(ctx, domain.JobParams{Days: domain.ChartDays7})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Success)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 0, stats.Errors)
	assert.Equal(t, 5, stats.Requests)
}

func TestMarketChartSync_RateLimitCoolDown(t *testing.T) {
	m, job := setupMarketChartSync(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetCoinIDs(ctx).Return([]string{"bitcoin", "ethereum", "solana"}, nil)

	gomock.InOrder(
		m.coingecko.EXPECT().GetMarketChart(ctx, "bitcoin", domain.ChartDays30).Return(chartFor("bitcoin"), nil),
		m.store.EXPECT().UpsertMarketChart(ctx, "bitcoin", domain.ChartDays30, gomock.Any(), testNow).Return(nil),
		m.coingecko.EXPECT().GetMarketChart(ctx, "ethereum", domain.ChartDays30).
			Return(nil, fmt.Errorf("failed to call CoinGecko API: %w", &domain.UpstreamError{Provider: "coingecko", StatusCode: 429})),
		// ethereum is not retried; the loop moves on to the next coin
		m.coingecko.EXPECT().GetMarketChart(ctx, "solana", domain.ChartDays30).Return(chartFor("solana"), nil),
		m.store.EXPECT().UpsertMarketChart(ctx, "solana", domain.ChartDays30, gomock.Any(), testNow).Return(nil),
	)

	stats, err := job.Run(ctx, domain.JobParams{Days: domain.ChartDays30})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncStats{Success: 2, Errors: 1, Requests: 3}, stats)

	delay := 2100 * time.Millisecond
	// The request counter resets after the cool-down, so solana is issued right after it
	assert.Equal(t, []time.Duration{delay, delay, 60 * time.Second, delay}, m.waits)
}

func TestMarketChartSync_ServerErrorCoolsDownOtherErrorsDoNot(t *testing.T) {
	m, job := setupMarketChartSync(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetCoinIDs(ctx).Return([]string{"bitcoin", "ethereum"}, nil)
	m.coingecko.EXPECT().GetMarketChart(ctx, "bitcoin", domain.ChartDays365).
		Return(nil, &domain.UpstreamError{StatusCode: 404})
	m.coingecko.EXPECT().GetMarketChart(ctx, "ethereum", domain.ChartDays365).
		Return(nil, &domain.UpstreamError{StatusCode: 500})

	stats, err := job.Run(ctx, domain.JobParams{Days: domain.ChartDays365})
	require.NoError(t, err)

	assert.Equal(t, domain.SyncStats{Errors: 2, Requests: 2}, stats)
	assert.Equal(t, []time.Duration{2100 * time.Millisecond, 60 * time.Second}, m.waits)
}

func TestMarketChartSync_PersistenceErrorAborts(t *testing.T) {
	m, job := setupMarketChartSync(t)
	defer m.ctrl.Finish()

	ctx := context.Background()
	m.store.EXPECT().GetCoinIDs(ctx).Return([]string{"bitcoin", "ethereum"}, nil)
	m.coingecko.EXPECT().GetMarketChart(ctx, "bitcoin", domain.ChartDays1).Return(chartFor("bitcoin"), nil)
	m.store.EXPECT().UpsertMarketChart(ctx, "bitcoin", domain.ChartDays1, gomock.Any(), testNow).
		Return(errors.New("connection reset"))

	stats, err := job.Run(ctx, domain.JobParams{Days: domain.ChartDays1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to store market chart of bitcoin")
	assert.Equal(t, 1, stats.Requests)
}

func TestMarketChartSync_ContextCanceledDuringWait(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockStore(ctrl)
	mockCoinGecko := mocks.NewMockCoinGeckoClient(ctrl)
	mockClock := mocks.NewMockClock(ctrl)
	job := jobs.NewMarketChartSync(mockStore, mockCoinGecko, mockClock, testPacing)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockStore.EXPECT().GetCoinIDs(ctx).Return([]string{"bitcoin", "ethereum"}, nil)
	mockClock.EXPECT().Now().Return(testNow).AnyTimes()
	mockClock.EXPECT().Since(gomock.Any()).Return(time.Duration(0)).AnyTimes()
	mockCoinGecko.EXPECT().GetMarketChart(ctx, "bitcoin", domain.ChartDays1).Return(chartFor("bitcoin"), nil)
	mockStore.EXPECT().UpsertMarketChart(ctx, "bitcoin", domain.ChartDays1, gomock.Any(), testNow).Return(nil)

	// The wait never fires; cancelling the context ends the run
	mockClock.EXPECT().After(gomock.Any()).DoAndReturn(func(d time.Duration) <-chan time.Time {
		cancel()
		return make(chan time.Time)
	})

	stats, err := job.Run(ctx, domain.JobParams{Days: domain.ChartDays1})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, stats.Success)
}
