package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestCoin(id string, price string) UpsertCoinInput {
	lastUpdated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	rank := 1
	return UpsertCoinInput{
		ID:                       id,
		Symbol:                   id[:3],
		Name:                     "Coin " + id,
		Image:                    "https://img.example.com/" + id + ".png",
		CurrentPrice:             decimal.NewNullDecimal(decimal.RequireFromString(price)),
		MarketCap:                decimal.NewFromInt(1_000_000),
		MarketCapRank:            &rank,
		TotalVolume:              decimal.NewFromInt(5_000),
		High24h:                  decimal.RequireFromString(price).Add(decimal.NewFromInt(1)),
		Low24h:                   decimal.RequireFromString(price).Sub(decimal.NewFromInt(1)),
		CirculatingSupply:        decimal.NewFromInt(21_000_000),
		PriceChangePercentage24h: decimal.RequireFromString("1.5"),
		SparklineIn7d:            []float64{1, 2, 3},
		LastUpdated:              &lastUpdated,
	}
}

// sumRecompute is a minimal aggregate used to observe that the store replays transactions in order
func sumRecompute(txs []schema.UserCoinTransaction) HoldingTotals {
	totals := HoldingTotals{}
	for _, tx := range txs {
		totals.TotalQuantity = totals.TotalQuantity.Add(tx.Quantity)
		totals.TotalCost = totals.TotalCost.Add(tx.Quantity.Mul(tx.Price))
	}
	if totals.TotalQuantity.IsPositive() {
		totals.AveragePrice = totals.TotalCost.Div(totals.TotalQuantity)
	}
	return totals
}

// =============================================================================
// Test: Coins
// =============================================================================

func testUpsertCoins(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates metadata and market rows", func(t *testing.T) {
		require.NoError(t, store.UpsertCoins(ctx, []UpsertCoinInput{
			buildTestCoin("bitcoin", "65000.5"),
			buildTestCoin("ethereum", "3200"),
		}))

		coin, err := store.GetCoin(ctx, "bitcoin")
		require.NoError(t, err)
		require.NotNil(t, coin)
		require.NotNil(t, coin.Info)
		assert.Equal(t, "Coin bitcoin", coin.Info.Name)
		assert.Equal(t, "bit", coin.Info.Symbol)
		assert.True(t, coin.CurrentPrice.Valid)
		assert.True(t, decimal.RequireFromString("65000.5").Equal(coin.CurrentPrice.Decimal))
		assert.JSONEq(t, "[1,2,3]", string(coin.SparklineIn7d))

		ids, err := store.GetCoinIDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"bitcoin", "ethereum"}, ids)
	})

	t.Run("second run with the same payload is idempotent", func(t *testing.T) {
		input := buildTestCoin("solana", "150")
		require.NoError(t, store.UpsertCoins(ctx, []UpsertCoinInput{input}))
		first, err := store.GetCoin(ctx, "solana")
		require.NoError(t, err)

		require.NoError(t, store.UpsertCoins(ctx, []UpsertCoinInput{input}))
		second, err := store.GetCoin(ctx, "solana")
		require.NoError(t, err)

		ids, err := store.GetCoinIDs(ctx)
		require.NoError(t, err)
		count := 0
		for _, id := range ids {
			if id == "solana" {
				count++
			}
		}
		assert.Equal(t, 1, count)
		assert.True(t, first.CurrentPrice.Decimal.Equal(second.CurrentPrice.Decimal))
		assert.True(t, first.MarketCap.Equal(second.MarketCap))
		assert.Equal(t, first.Info.Name, second.Info.Name)
		assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	})

	t.Run("duplicate ids in one batch keep the last snapshot", func(t *testing.T) {
		require.NoError(t, store.UpsertCoins(ctx, []UpsertCoinInput{
			buildTestCoin("cardano", "0.40"),
			buildTestCoin("cardano", "0.45"),
		}))

		coin, err := store.GetCoin(ctx, "cardano")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.45").Equal(coin.CurrentPrice.Decimal))
	})

	t.Run("missing coin returns nil", func(t *testing.T) {
		coin, err := store.GetCoin(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, coin)

		info, err := store.GetCoinInfo(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, info)
	})
}

// =============================================================================
// Test: Market charts
// =============================================================================

func testMarketChart(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertCoins(ctx, []UpsertCoinInput{buildTestCoin("bitcoin", "1")}))

	at7 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	at30 := at7.Add(time.Hour)

	require.NoError(t, store.UpsertMarketChart(ctx, "bitcoin", domain.ChartDays7, [][]float64{{1, 10}, {2, 11}}, at7))
	require.NoError(t, store.UpsertMarketChart(ctx, "bitcoin", domain.ChartDays30, [][]float64{{1, 20}}, at30))

	chart, err := store.GetMarketChart(ctx, "bitcoin")
	require.NoError(t, err)
	require.NotNil(t, chart)

	series, updatedAt, err := chart.Bucket(domain.ChartDays7)
	require.NoError(t, err)
	assert.JSONEq(t, "[[1,10],[2,11]]", string(series))
	require.NotNil(t, updatedAt)
	assert.True(t, at7.Equal(*updatedAt))

	series, updatedAt, err = chart.Bucket(domain.ChartDays30)
	require.NoError(t, err)
	assert.JSONEq(t, "[[1,20]]", string(series))
	assert.True(t, at30.Equal(*updatedAt))

	series, updatedAt, err = chart.Bucket(domain.ChartDays1)
	require.NoError(t, err)
	assert.Empty(t, series)
	assert.Nil(t, updatedAt)

	// Replacing one bucket leaves the others untouched
	require.NoError(t, store.UpsertMarketChart(ctx, "bitcoin", domain.ChartDays7, [][]float64{{3, 12}}, at30))
	chart, err = store.GetMarketChart(ctx, "bitcoin")
	require.NoError(t, err)
	assert.JSONEq(t, "[[3,12]]", string(chart.Prices7d))
	assert.JSONEq(t, "[[1,20]]", string(chart.Prices30d))

	err = store.UpsertMarketChart(ctx, "bitcoin", domain.ChartDays(14), [][]float64{{1, 1}}, at7)
	assert.ErrorIs(t, err, domain.ErrUnknownChartDuration)

	missing, err := store.GetMarketChart(ctx, "ethereum")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

// =============================================================================
// Test: Snapshots
// =============================================================================

func testSnapshots(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("exchange rate is a singleton", func(t *testing.T) {
		rate, err := store.GetExchangeRate(ctx)
		require.NoError(t, err)
		assert.Nil(t, rate)

		require.NoError(t, store.SaveExchangeRate(ctx, decimal.RequireFromString("0.92"), decimal.RequireFromString("41.2")))
		require.NoError(t, store.SaveExchangeRate(ctx, decimal.RequireFromString("0.93"), decimal.RequireFromString("41.5")))

		rate, err = store.GetExchangeRate(ctx)
		require.NoError(t, err)
		require.NotNil(t, rate)
		assert.Equal(t, domain.EXCHANGE_RATE_ID, rate.ID)
		assert.True(t, decimal.RequireFromString("0.93").Equal(rate.EUR))
		assert.True(t, decimal.RequireFromString("41.5").Equal(rate.UAH))
	})

	t.Run("trending coins are replaced wholesale", func(t *testing.T) {
		require.NoError(t, store.ReplaceTrendingCoins(ctx, []schema.TrendingCoin{
			{CoinID: "pepe", Name: "Pepe", Symbol: "PEPE", Score: 0},
			{CoinID: "bonk", Name: "Bonk", Symbol: "BONK", Score: 1},
		}))
		require.NoError(t, store.ReplaceTrendingCoins(ctx, []schema.TrendingCoin{
			{CoinID: "wif", Name: "dogwifhat", Symbol: "WIF", Score: 0},
		}))

		coins, err := store.GetTrendingCoins(ctx)
		require.NoError(t, err)
		require.Len(t, coins, 1)
		assert.Equal(t, "wif", coins[0].CoinID)
	})

	t.Run("categories are replaced wholesale", func(t *testing.T) {
		top3, _ := json.Marshal([]string{"a.png", "b.png", "c.png"})
		require.NoError(t, store.ReplaceCategories(ctx, []schema.Category{
			{ID: "layer-1", Name: "Layer 1", MarketCap: decimal.NewFromInt(200), Top3Coins: top3},
			{ID: "meme", Name: "Meme", MarketCap: decimal.NewFromInt(100)},
		}))

		categories, err := store.GetCategories(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "layer-1", categories[0].ID)

		require.NoError(t, store.ReplaceCategories(ctx, nil))
		categories, err = store.GetCategories(ctx)
		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("news articles drop duplicate urls", func(t *testing.T) {
		older := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		newer := older.Add(time.Hour)
		require.NoError(t, store.ReplaceNewsArticles(ctx, []schema.NewsArticle{
			{URL: "https://news.example.com/1", Title: "First", PublishedAt: &older},
			{URL: "https://news.example.com/2", Title: "Second", PublishedAt: &newer},
			{URL: "https://news.example.com/1", Title: "First again", PublishedAt: &older},
		}))

		articles, err := store.GetNewsArticles(ctx, 10)
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, "Second", articles[0].Title)
	})

	t.Run("global metrics are a singleton", func(t *testing.T) {
		require.NoError(t, store.SaveGlobalMetrics(ctx, schema.GlobalMetrics{
			TotalMarketCap: decimal.NewFromInt(2_500_000_000_000),
			TotalVolume24h: decimal.NewFromInt(90_000_000_000),
			BTCDominance:   decimal.RequireFromString("52.1"),
			ETHDominance:   decimal.RequireFromString("16.8"),
		}))

		metrics, err := store.GetGlobalMetrics(ctx)
		require.NoError(t, err)
		require.NotNil(t, metrics)
		assert.Equal(t, domain.GLOBAL_METRICS_ID, metrics.ID)
		assert.True(t, decimal.RequireFromString("52.1").Equal(metrics.BTCDominance))
	})
}

// =============================================================================
// Test: KeyValueStore
// =============================================================================

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetKeyValue(ctx, "snapshot:trending")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.SetKeyValue(ctx, "snapshot:trending", "abc"))
	require.NoError(t, store.SetKeyValue(ctx, "snapshot:trending", "def"))

	value, err = store.GetKeyValue(ctx, "snapshot:trending")
	require.NoError(t, err)
	assert.Equal(t, "def", value)
}

// =============================================================================
// Test: Holdings
// =============================================================================

func testUserCoinTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertCoins(ctx, []UpsertCoinInput{buildTestCoin("bitcoin", "100")}))
	require.NoError(t, store.UpsertUser(ctx, UpsertUserInput{ID: "user-1", Email: "one@example.com"}))

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Inserted out of order, replayed by date
	holding, err := store.AddUserCoinTransaction(ctx, CreateTransactionInput{
		UserID:   "user-1",
		CoinID:   "bitcoin",
		Quantity: decimal.NewFromInt(3),
		Price:    decimal.NewFromInt(200),
		Date:     day.Add(48 * time.Hour),
	}, sumRecompute)
	require.NoError(t, err)
	require.NotNil(t, holding)
	assert.True(t, decimal.NewFromInt(3).Equal(holding.TotalQuantity))

	holding, err = store.AddUserCoinTransaction(ctx, CreateTransactionInput{
		UserID:   "user-1",
		CoinID:   "bitcoin",
		Quantity: decimal.NewFromInt(2),
		Price:    decimal.NewFromInt(100),
		Date:     day,
	}, sumRecompute)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5).Equal(holding.TotalQuantity))
	assert.True(t, decimal.NewFromInt(800).Equal(holding.TotalCost))
	assert.True(t, decimal.NewFromInt(160).Equal(holding.AveragePrice))

	txs, err := store.GetUserCoinTransactions(ctx, holding.ID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.True(t, decimal.NewFromInt(2).Equal(txs[0].Quantity))
	assert.True(t, decimal.NewFromInt(3).Equal(txs[1].Quantity))

	// The stored aggregate matches the returned one
	stored, err := store.GetUserCoin(ctx, "user-1", "bitcoin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, decimal.NewFromInt(800).Equal(stored.TotalCost))
	require.NotNil(t, stored.Info)
	assert.Equal(t, "Coin bitcoin", stored.Info.Name)

	t.Run("delete recomputes", func(t *testing.T) {
		holding, err := store.DeleteUserCoinTransaction(ctx, "user-1", txs[1].ID, sumRecompute)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(2).Equal(holding.TotalQuantity))
		assert.True(t, decimal.NewFromInt(200).Equal(holding.TotalCost))
	})

	t.Run("delete of another user's transaction is not found", func(t *testing.T) {
		require.NoError(t, store.UpsertUser(ctx, UpsertUserInput{ID: "user-2"}))
		_, err := store.DeleteUserCoinTransaction(ctx, "user-2", txs[0].ID, sumRecompute)
		assert.ErrorIs(t, err, domain.ErrTransactionNotFound)
	})

	t.Run("desired sell price", func(t *testing.T) {
		require.NoError(t, store.UpdateDesiredSellPrice(ctx, "user-1", "bitcoin", decimal.NewNullDecimal(decimal.NewFromInt(90))))

		err := store.UpdateDesiredSellPrice(ctx, "user-1", "ethereum", decimal.NewNullDecimal(decimal.NewFromInt(1)))
		assert.ErrorIs(t, err, domain.ErrCoinNotFound)
	})
}

func testPriceTargetHoldings(t *testing.T, store Store) {
	ctx := context.Background()

	unpriced := buildTestCoin("unpriced", "1")
	unpriced.CurrentPrice = decimal.NullDecimal{}
	require.NoError(t, store.UpsertCoins(ctx, []UpsertCoinInput{
		buildTestCoin("bitcoin", "100"),
		buildTestCoin("ethereum", "50"),
		unpriced,
	}))
	require.NoError(t, store.UpsertUser(ctx, UpsertUserInput{ID: "user-1", Email: "one@example.com"}))

	for _, coinID := range []string{"bitcoin", "ethereum", "unpriced"} {
		_, err := store.AddUserCoinTransaction(ctx, CreateTransactionInput{
			UserID:   "user-1",
			CoinID:   coinID,
			Quantity: decimal.NewFromInt(1),
			Price:    decimal.NewFromInt(1),
			Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}, sumRecompute)
		require.NoError(t, err)
	}

	require.NoError(t, store.UpdateDesiredSellPrice(ctx, "user-1", "bitcoin", decimal.NewNullDecimal(decimal.NewFromInt(90))))
	require.NoError(t, store.UpdateDesiredSellPrice(ctx, "user-1", "ethereum", decimal.NewNullDecimal(decimal.Zero)))
	require.NoError(t, store.UpdateDesiredSellPrice(ctx, "user-1", "unpriced", decimal.NewNullDecimal(decimal.NewFromInt(5))))

	holdings, err := store.GetPriceTargetHoldings(ctx)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "bitcoin", holdings[0].CoinID)
	require.NotNil(t, holdings[0].User)
	assert.Equal(t, "one@example.com", holdings[0].User.Email)
	require.NotNil(t, holdings[0].Coin)
	assert.True(t, holdings[0].Coin.CurrentPrice.Valid)
}

// =============================================================================
// Test: Notifications
// =============================================================================

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()
	require.NoError(t, store.UpsertUser(ctx, UpsertUserInput{ID: "user-1"}))

	old := time.Now().Add(-48 * time.Hour)
	recent := time.Now().Add(-time.Minute)
	coinID := "bitcoin"

	require.NoError(t, store.CreateNotifications(ctx, []schema.Notification{
		{ID: "01HX0000000000000000000001", UserID: "user-1", Kind: schema.NotificationKindPriceTarget, CoinID: &coinID, Title: "old", Message: "old", CreatedAt: old},
		{ID: "01HX0000000000000000000002", UserID: "user-1", Kind: schema.NotificationKindPriceTarget, CoinID: &coinID, Title: "recent", Message: "recent", CreatedAt: recent},
	}))

	notifications, err := store.GetNotifications(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "recent", notifications[0].Title)

	found, err := store.HasRecentNotification(ctx, "user-1", coinID, schema.NotificationKindPriceTarget, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.True(t, found)

	found, err = store.HasRecentNotification(ctx, "user-1", "ethereum", schema.NotificationKindPriceTarget, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := store.DeleteNotificationsBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	notifications, err = store.GetNotifications(ctx, "user-1", 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "recent", notifications[0].Title)
}

// =============================================================================
// Test: Job locks and runs
// =============================================================================

func testJobLocks(t *testing.T, store Store) {
	ctx := context.Background()

	acquired, err := store.AcquireJobLock(ctx, "market-chart:7", "owner-a", time.Hour)
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = store.AcquireJobLock(ctx, "market-chart:7", "owner-b", time.Hour)
	require.NoError(t, err)
	assert.False(t, acquired, "an unexpired lease blocks other owners")

	acquired, err = store.AcquireJobLock(ctx, "market-chart:30", "owner-b", time.Hour)
	require.NoError(t, err)
	assert.True(t, acquired, "locks are per key")

	// A release by a non-owner is a no-op
	require.NoError(t, store.ReleaseJobLock(ctx, "market-chart:7", "owner-b"))
	acquired, err = store.AcquireJobLock(ctx, "market-chart:7", "owner-c", time.Hour)
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, store.ReleaseJobLock(ctx, "market-chart:7", "owner-a"))
	acquired, err = store.AcquireJobLock(ctx, "market-chart:7", "owner-c", time.Hour)
	require.NoError(t, err)
	assert.True(t, acquired)

	t.Run("expired lease can be taken over", func(t *testing.T) {
		acquired, err := store.AcquireJobLock(ctx, "trending", "crashed", -time.Second)
		require.NoError(t, err)
		assert.True(t, acquired)

		acquired, err = store.AcquireJobLock(ctx, "trending", "owner-d", time.Hour)
		require.NoError(t, err)
		assert.True(t, acquired)
	})
}

func testJobRuns(t *testing.T, store Store) {
	ctx := context.Background()
	started := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"01HX00000000000000000000A1", "01HX00000000000000000000A2"} {
		require.NoError(t, store.CreateJobRun(ctx, &schema.JobRun{
			ID:          id,
			JobName:     string(domain.JobMarketChart),
			LockKey:     "market-chart:7",
			TriggeredBy: "http",
			Status:      schema.JobRunStatusRunning,
			StartedAt:   started.Add(time.Duration(i) * time.Minute),
		}))
	}

	message := "boom"
	require.NoError(t, store.FinishJobRun(ctx, FinishJobRunInput{
		ID:         "01HX00000000000000000000A2",
		Status:     schema.JobRunStatusFailed,
		Stats:      domain.SyncStats{Success: 3, Skipped: 1, Errors: 1, Requests: 5},
		Error:      &message,
		FinishedAt: started.Add(2 * time.Minute),
	}))

	runs, err := store.GetRecentJobRuns(ctx, string(domain.JobMarketChart), 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "01HX00000000000000000000A2", runs[0].ID)
	assert.Equal(t, schema.JobRunStatusFailed, runs[0].Status)
	assert.Equal(t, 3, runs[0].Success)
	assert.Equal(t, 1, runs[0].Skipped)
	assert.Equal(t, 5, runs[0].Requests)
	require.NotNil(t, runs[0].Error)
	assert.Equal(t, "boom", *runs[0].Error)
	assert.NotNil(t, runs[0].FinishedAt)
	assert.Equal(t, schema.JobRunStatusRunning, runs[1].Status)
	assert.Nil(t, runs[1].FinishedAt)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 10, open)
	assert.Equal(t, 5, idle)
	assert.Equal(t, 5*time.Minute, lifetime)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 8, time.Hour, time.Hour)
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, idle)
}

func TestCalculateSafeBatchSize(t *testing.T) {
	assert.Equal(t, 10, calculateSafeBatchSize(10, 15))
	assert.Equal(t, (65535-1000)/15, calculateSafeBatchSize(100_000, 15))
	assert.Equal(t, 1, calculateSafeBatchSize(5, 100_000))
}

// RunStoreTests runs every store test against the given implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertCoins", testUpsertCoins},
		{"MarketChart", testMarketChart},
		{"Snapshots", testSnapshots},
		{"KeyValueStore", testKeyValueStore},
		{"UserCoinTransactions", testUserCoinTransactions},
		{"PriceTargetHoldings", testPriceTargetHoldings},
		{"Notifications", testNotifications},
		{"JobLocks", testJobLocks},
		{"JobRuns", testJobRuns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			tt.fn(t, store)
		})
	}
}
