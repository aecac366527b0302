package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// UpsertCoinInput is one normalized coin snapshot. It is written to both coins_list_id_map and coins.
type UpsertCoinInput struct {
	ID                       string
	Symbol                   string
	Name                     string
	Image                    string
	CurrentPrice             decimal.NullDecimal
	MarketCap                decimal.Decimal
	MarketCapRank            *int
	TotalVolume              decimal.Decimal
	High24h                  decimal.Decimal
	Low24h                   decimal.Decimal
	CirculatingSupply        decimal.Decimal
	PriceChangePercentage24h decimal.Decimal
	PriceChangePercentage7d  decimal.Decimal
	PriceChangePercentage30d decimal.Decimal
	SparklineIn7d            []float64
	LastUpdated              *time.Time
}

// UpsertUserInput identifies a user seen in a verified token
type UpsertUserInput struct {
	ID    string
	Email string
}

// CreateTransactionInput is a buy (positive quantity) or sell (negative quantity) of a coin
type CreateTransactionInput struct {
	UserID   string
	CoinID   string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Date     time.Time
}

// HoldingTotals is the aggregate derived from a holding's transaction log
type HoldingTotals struct {
	TotalQuantity decimal.Decimal
	TotalCost     decimal.Decimal
	AveragePrice  decimal.Decimal
}

// RecomputeFunc derives the holding aggregate from the transactions ordered by date.
// It runs inside the transaction that changed the log.
type RecomputeFunc func(txs []schema.UserCoinTransaction) HoldingTotals

// FinishJobRunInput is the outcome of a job run
type FinishJobRunInput struct {
	ID         string
	Status     schema.JobRunStatus
	Stats      domain.SyncStats
	Error      *string
	FinishedAt time.Time
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// =============================================================================
	// Coins
	// =============================================================================

	// GetCoinIDs returns the ids of every coin with a market row, in insertion order
	GetCoinIDs(ctx context.Context) ([]string, error)
	// GetCoin returns a coin with its display metadata, or nil if it is not cached
	GetCoin(ctx context.Context, id string) (*schema.Coin, error)
	// GetCoinInfo returns the display metadata of a coin, or nil if it is unknown
	GetCoinInfo(ctx context.Context, id string) (*schema.CoinsListIDMap, error)
	// UpsertCoins writes the metadata map entries and market rows of the given coins in one transaction
	UpsertCoins(ctx context.Context, inputs []UpsertCoinInput) error

	// =============================================================================
	// Market charts
	// =============================================================================

	// GetMarketChart returns every bucket of a coin's chart, or nil if none was fetched yet
	GetMarketChart(ctx context.Context, coinID string) (*schema.MarketChart, error)
	// UpsertMarketChart replaces one bucket of a coin's chart and leaves the other buckets untouched
	UpsertMarketChart(ctx context.Context, coinID string, days domain.ChartDays, prices [][]float64, updatedAt time.Time) error

	// =============================================================================
	// Upstream snapshots
	// =============================================================================

	// GetExchangeRate returns the singleton exchange rate row, or nil if never synced
	GetExchangeRate(ctx context.Context) (*schema.ExchangeRate, error)
	// SaveExchangeRate overwrites the singleton exchange rate row
	SaveExchangeRate(ctx context.Context, eur, uah decimal.Decimal) error
	// GetTrendingCoins returns the trending snapshot ordered by score
	GetTrendingCoins(ctx context.Context) ([]schema.TrendingCoin, error)
	// ReplaceTrendingCoins deletes the trending snapshot and writes the given one in one transaction
	ReplaceTrendingCoins(ctx context.Context, coins []schema.TrendingCoin) error
	// GetCategories returns the category snapshot ordered by market cap
	GetCategories(ctx context.Context) ([]schema.Category, error)
	// ReplaceCategories deletes the category snapshot and writes the given one in one transaction
	ReplaceCategories(ctx context.Context, categories []schema.Category) error
	// GetNewsArticles returns the cached news feed, newest first
	GetNewsArticles(ctx context.Context, limit int) ([]schema.NewsArticle, error)
	// ReplaceNewsArticles deletes the cached news feed and writes the given one in one transaction
	ReplaceNewsArticles(ctx context.Context, articles []schema.NewsArticle) error
	// GetGlobalMetrics returns the singleton global metrics row, or nil if never synced
	GetGlobalMetrics(ctx context.Context) (*schema.GlobalMetrics, error)
	// SaveGlobalMetrics overwrites the singleton global metrics row
	SaveGlobalMetrics(ctx context.Context, metrics schema.GlobalMetrics) error

	// =============================================================================
	// Key-value store
	// =============================================================================

	// GetKeyValue returns the value of key, or "" if it is not set
	GetKeyValue(ctx context.Context, key string) (string, error)
	// SetKeyValue stores value under key
	SetKeyValue(ctx context.Context, key string, value string) error

	// =============================================================================
	// Users and holdings
	// =============================================================================

	// UpsertUser records a user id and email
	UpsertUser(ctx context.Context, input UpsertUserInput) error
	// GetUserCoins returns a user's holdings with their coin rows and display metadata
	GetUserCoins(ctx context.Context, userID string) ([]schema.UserCoin, error)
	// GetUserCoin returns one holding, or nil if the user does not hold the coin
	GetUserCoin(ctx context.Context, userID string, coinID string) (*schema.UserCoin, error)
	// GetUserCoinTransactions returns the transactions of a holding in ascending date order
	GetUserCoinTransactions(ctx context.Context, userCoinID int64) ([]schema.UserCoinTransaction, error)
	// AddUserCoinTransaction appends a transaction to a holding (created on demand)
	// and stores the recomputed aggregate in the same transaction
	AddUserCoinTransaction(ctx context.Context, input CreateTransactionInput, recompute RecomputeFunc) (*schema.UserCoin, error)
	// DeleteUserCoinTransaction removes a user's transaction and stores the recomputed aggregate in the same transaction.
	// Returns domain.ErrTransactionNotFound if the user owns no such transaction.
	DeleteUserCoinTransaction(ctx context.Context, userID string, transactionID int64, recompute RecomputeFunc) (*schema.UserCoin, error)
	// UpdateDesiredSellPrice sets or clears the price target of a holding.
	// Returns domain.ErrCoinNotFound if the user does not hold the coin.
	UpdateDesiredSellPrice(ctx context.Context, userID string, coinID string, price decimal.NullDecimal) error
	// GetPriceTargetHoldings returns every holding with a positive price target whose coin has a known price
	GetPriceTargetHoldings(ctx context.Context) ([]schema.UserCoin, error)

	// =============================================================================
	// Notifications
	// =============================================================================

	// CreateNotifications inserts the notifications in one transaction
	CreateNotifications(ctx context.Context, notifications []schema.Notification) error
	// HasRecentNotification reports whether a notification of kind for the user's coin was created at or after since
	HasRecentNotification(ctx context.Context, userID string, coinID string, kind schema.NotificationKind, since time.Time) (bool, error)
	// DeleteNotificationsBefore removes notifications created before the cutoff and returns how many were removed
	DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	// GetNotifications returns a user's notifications, newest first
	GetNotifications(ctx context.Context, userID string, limit int) ([]schema.Notification, error)

	// =============================================================================
	// Job locks and run ledger
	// =============================================================================

	// AcquireJobLock takes the lease on name for ttl. It returns false if another owner holds an unexpired lease.
	AcquireJobLock(ctx context.Context, name string, owner string, ttl time.Duration) (bool, error)
	// ReleaseJobLock drops the lease on name if owner still holds it
	ReleaseJobLock(ctx context.Context, name string, owner string) error
	// CreateJobRun records the start of a job run
	CreateJobRun(ctx context.Context, run *schema.JobRun) error
	// FinishJobRun records the outcome of a job run
	FinishJobRun(ctx context.Context, input FinishJobRunInput) error
	// GetRecentJobRuns returns the latest runs of a job, newest first
	GetRecentJobRuns(ctx context.Context, jobName string, limit int) ([]schema.JobRun, error)
}
