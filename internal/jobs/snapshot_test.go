package jobs_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

var trendingPayload = []coingecko.TrendingCoin{
	{ID: "pepe", Name: "Pepe", Symbol: "PEPE", Score: 0, Data: &coingecko.TrendingCoinData{Price: decimal.RequireFromString("0.0000123")}},
	{ID: "sui", Name: "Sui", Symbol: "SUI", Score: 1},
}

func TestTrendingSync_ReplacesThenSkipsUnchangedSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var waits []time.Duration
	mockStore := mocks.NewMockStore(ctrl)
	mockCoinGecko := mocks.NewMockCoinGeckoClient(ctrl)
	job := jobs.NewTrendingSync(mockStore, mockCoinGecko, recordingClock(ctrl, &waits), adapter.NewJSON())

	ctx := context.Background()
	var storedFingerprint string

	// First run: nothing stored yet
	mockCoinGecko.EXPECT().GetTrending(ctx).Return(trendingPayload, nil).Times(2)
	mockStore.EXPECT().GetKeyValue(ctx, jobs.KEY_TRENDING_FINGERPRINT).Return("", nil)
	mockStore.EXPECT().
		ReplaceTrendingCoins(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, rows []schema.TrendingCoin) error {
			require.Len(t, rows, 2)
			assert.Equal(t, "pepe", rows[0].CoinID)
			assert.Equal(t, testNow, rows[0].UpdatedAt)
			return nil
		})
	mockStore.EXPECT().
		SetKeyValue(ctx, jobs.KEY_TRENDING_FINGERPRINT, gomock.Any()).
		DoAndReturn(func(ctx context.Context, key, value string) error {
			storedFingerprint = value
			return nil
		})

	stats, err := job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Success: 2, Requests: 1}, stats)
	require.Len(t, storedFingerprint, 64)

	// Second run: same payload, the table is left alone
	mockStore.EXPECT().GetKeyValue(ctx, jobs.KEY_TRENDING_FINGERPRINT).DoAndReturn(func(ctx context.Context, key string) (string, error) {
		return storedFingerprint, nil
	})

	stats, err = job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Skipped: 2, Requests: 1}, stats)
}

func TestTrendingSync_EmptyPayloadFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCoinGecko := mocks.NewMockCoinGeckoClient(ctrl)
	job := jobs.NewTrendingSync(mocks.NewMockStore(ctrl), mockCoinGecko, mocks.NewMockClock(ctrl), adapter.NewJSON())

	mockCoinGecko.EXPECT().GetTrending(gomock.Any()).Return(nil, domain.ErrEmptyPayload)

	stats, err := job.Run(context.Background(), domain.JobParams{})
	assert.ErrorIs(t, err, domain.ErrEmptyPayload)
	assert.Equal(t, 1, stats.Errors)
}

func TestCategoriesSync_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var waits []time.Duration
	mockStore := mocks.NewMockStore(ctrl)
	mockCoinGecko := mocks.NewMockCoinGeckoClient(ctrl)
	job := jobs.NewCategoriesSync(mockStore, mockCoinGecko, recordingClock(ctrl, &waits), adapter.NewJSON())

	ctx := context.Background()
	mockCoinGecko.EXPECT().GetCategories(ctx).Return([]coingecko.Category{
		{ID: "layer-1", Name: "Layer 1", MarketCap: decimal.NewFromInt(2000), Top3Coins: []string{"https://img/btc.png"}},
		{ID: "", Name: "Broken"},
		{ID: "meme-token", Name: "Meme", MarketCap: decimal.NewFromInt(50)},
	}, nil)
	mockStore.EXPECT().GetKeyValue(ctx, jobs.KEY_CATEGORIES_FINGERPRINT).Return("stale-fingerprint", nil)
	mockStore.EXPECT().
		ReplaceCategories(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, rows []schema.Category) error {
			require.Len(t, rows, 2)
			assert.Equal(t, "layer-1", rows[0].ID)
			assert.JSONEq(t, `["https://img/btc.png"]`, string(rows[0].Top3Coins))
			assert.JSONEq(t, `null`, string(rows[1].Top3Coins))
			return nil
		})
	mockStore.EXPECT().SetKeyValue(ctx, jobs.KEY_CATEGORIES_FINGERPRINT, gomock.Not("stale-fingerprint")).Return(nil)

	stats, err := job.Run(ctx, domain.JobParams{})
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStats{Success: 2, Skipped: 1, Requests: 1}, stats)
}
