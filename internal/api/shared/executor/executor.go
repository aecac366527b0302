package executor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/api/shared/constants"
	"github.com/coinfolio/coinfolio-sync/internal/api/shared/dto"
	apierrors "github.com/coinfolio/coinfolio-sync/internal/api/shared/errors"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/marketdata"
	"github.com/coinfolio/coinfolio-sync/internal/portfolio"
	"github.com/coinfolio/coinfolio-sync/internal/store"
)

// User identifies the caller of a portfolio endpoint
type User struct {
	ID    string
	Email string
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetCoin retrieves a coin's market data, refreshing it when stale
	GetCoin(ctx context.Context, coinID string) (*dto.CoinResponse, error)
	// GetMarketChart retrieves one bucket of a coin's price history
	GetMarketChart(ctx context.Context, coinID string, days domain.ChartDays) (*dto.MarketChartResponse, error)
	// GetExchangeRate retrieves the cached USD exchange rates
	GetExchangeRate(ctx context.Context) (*dto.ExchangeRateResponse, error)
	// GetTrending retrieves the cached trending snapshot
	GetTrending(ctx context.Context) (*dto.ListResponse[dto.TrendingCoinResponse], error)
	// GetCategories retrieves the cached category snapshot
	GetCategories(ctx context.Context) (*dto.ListResponse[dto.CategoryResponse], error)
	// GetNews retrieves the news feed, refreshing it when stale
	GetNews(ctx context.Context) (*dto.ListResponse[dto.NewsArticleResponse], error)
	// GetGlobalMetrics retrieves the global market metrics, refreshing them when stale
	GetGlobalMetrics(ctx context.Context) (*dto.GlobalMetricsResponse, error)
	// GetJobRuns retrieves the latest runs of a job
	GetJobRuns(ctx context.Context, name domain.JobName, limit int) (*dto.ListResponse[dto.JobRunResponse], error)

	// ListHoldings retrieves the caller's valued holdings
	ListHoldings(ctx context.Context, user User) (*dto.ListResponse[dto.HoldingResponse], error)
	// ListTransactions retrieves the transaction log of one of the caller's holdings
	ListTransactions(ctx context.Context, user User, coinID string) (*dto.TransactionListResponse, error)
	// AddTransaction appends a buy or sell to the caller's holding
	AddTransaction(ctx context.Context, user User, coinID string, req dto.CreateTransactionRequest) (*dto.HoldingResponse, error)
	// DeleteTransaction removes one of the caller's transactions
	DeleteTransaction(ctx context.Context, user User, transactionID int64) (*dto.HoldingResponse, error)
	// SetTarget sets or clears the desired sell price of a holding
	SetTarget(ctx context.Context, user User, coinID string, req dto.SetTargetRequest) error
	// GetNotifications retrieves the caller's notifications
	GetNotifications(ctx context.Context, user User, limit int) (*dto.ListResponse[dto.NotificationResponse], error)

	// RunJob runs a synchronization job once. Job errors are returned unwrapped
	// so the caller can tell domain.ErrJobAlreadyRunning apart.
	RunJob(ctx context.Context, name domain.JobName, params domain.JobParams) (*dto.JobSuccessResponse, error)
}

type executor struct {
	store      store.Store
	marketData marketdata.Service
	portfolio  portfolio.Service
	runner     jobs.Runner
}

func NewExecutor(st store.Store, md marketdata.Service, pf portfolio.Service, runner jobs.Runner) Executor {
	return &executor{store: st, marketData: md, portfolio: pf, runner: runner}
}

func (e *executor) GetCoin(ctx context.Context, coinID string) (*dto.CoinResponse, error) {
	coin, err := e.marketData.GetCoinData(ctx, coinID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get coin: %v", err))
	}
	return dto.MapCoinToDTO(coin), nil
}

func (e *executor) GetMarketChart(ctx context.Context, coinID string, days domain.ChartDays) (*dto.MarketChartResponse, error) {
	chart, err := e.marketData.GetMarketChart(ctx, coinID, days)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownChartDuration) {
			return nil, apierrors.NewBadRequestError("Invalid days", err.Error())
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get market chart: %v", err))
	}
	return dto.MapMarketChartToDTO(chart), nil
}

func (e *executor) GetExchangeRate(ctx context.Context) (*dto.ExchangeRateResponse, error) {
	rate, err := e.marketData.GetExchangeRate(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get exchange rate: %v", err))
	}
	return dto.MapExchangeRateToDTO(rate), nil
}

func (e *executor) GetTrending(ctx context.Context) (*dto.ListResponse[dto.TrendingCoinResponse], error) {
	coins, err := e.marketData.GetTrending(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get trending coins: %v", err))
	}
	return &dto.ListResponse[dto.TrendingCoinResponse]{Items: dto.MapTrendingCoinsToDTO(coins)}, nil
}

func (e *executor) GetCategories(ctx context.Context) (*dto.ListResponse[dto.CategoryResponse], error) {
	categories, err := e.marketData.GetCategories(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get categories: %v", err))
	}
	return &dto.ListResponse[dto.CategoryResponse]{Items: dto.MapCategoriesToDTO(categories)}, nil
}

func (e *executor) GetNews(ctx context.Context) (*dto.ListResponse[dto.NewsArticleResponse], error) {
	articles, err := e.marketData.GetNews(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get news: %v", err))
	}
	return &dto.ListResponse[dto.NewsArticleResponse]{Items: dto.MapNewsArticlesToDTO(articles)}, nil
}

func (e *executor) GetGlobalMetrics(ctx context.Context) (*dto.GlobalMetricsResponse, error) {
	metrics, err := e.marketData.GetGlobalMetrics(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get global metrics: %v", err))
	}
	return dto.MapGlobalMetricsToDTO(metrics), nil
}

func (e *executor) GetJobRuns(ctx context.Context, name domain.JobName, limit int) (*dto.ListResponse[dto.JobRunResponse], error) {
	if !name.Valid() {
		return nil, apierrors.NewNotFoundError("Job not found", string(name))
	}
	limit = normalizeLimit(limit, constants.DEFAULT_JOB_RUNS_LIMIT)

	runs, err := e.store.GetRecentJobRuns(ctx, string(name), limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get job runs: %v", err))
	}
	return &dto.ListResponse[dto.JobRunResponse]{Items: dto.MapJobRunsToDTO(runs)}, nil
}

func (e *executor) ListHoldings(ctx context.Context, user User) (*dto.ListResponse[dto.HoldingResponse], error) {
	holdings, err := e.portfolio.ListHoldings(ctx, user.ID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get holdings: %v", err))
	}
	return &dto.ListResponse[dto.HoldingResponse]{Items: dto.MapHoldingsToDTO(holdings)}, nil
}

func (e *executor) ListTransactions(ctx context.Context, user User, coinID string) (*dto.TransactionListResponse, error) {
	list, err := e.portfolio.ListTransactions(ctx, user.ID, coinID)
	if err != nil {
		return nil, mapPortfolioError(err, "Failed to get transactions")
	}
	return dto.MapTransactionListToDTO(list), nil
}

func (e *executor) AddTransaction(ctx context.Context, user User, coinID string, req dto.CreateTransactionRequest) (*dto.HoldingResponse, error) {
	// The holding references the user row
	if err := e.store.UpsertUser(ctx, store.UpsertUserInput{ID: user.ID, Email: user.Email}); err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to save user: %v", err))
	}

	holding, err := e.portfolio.AddTransaction(ctx, user.ID, portfolio.TransactionInput{
		CoinID:   coinID,
		Quantity: req.Quantity,
		Price:    req.Price,
		Date:     req.Date,
	})
	if err != nil {
		return nil, mapPortfolioError(err, "Failed to add transaction")
	}

	logger.InfoCtx(ctx, "Transaction added",
		zap.String("user_id", user.ID),
		zap.String("coin_id", coinID),
		zap.String("quantity", req.Quantity.String()),
	)

	return dto.MapUserCoinToDTO(holding), nil
}

func (e *executor) DeleteTransaction(ctx context.Context, user User, transactionID int64) (*dto.HoldingResponse, error) {
	holding, err := e.portfolio.DeleteTransaction(ctx, user.ID, transactionID)
	if err != nil {
		return nil, mapPortfolioError(err, "Failed to delete transaction")
	}
	return dto.MapUserCoinToDTO(holding), nil
}

func (e *executor) SetTarget(ctx context.Context, user User, coinID string, req dto.SetTargetRequest) error {
	if err := e.portfolio.SetDesiredSellPrice(ctx, user.ID, coinID, req.DesiredSellPrice); err != nil {
		return mapPortfolioError(err, "Failed to set target price")
	}
	return nil
}

func (e *executor) GetNotifications(ctx context.Context, user User, limit int) (*dto.ListResponse[dto.NotificationResponse], error) {
	limit = normalizeLimit(limit, constants.DEFAULT_NOTIFICATIONS_LIMIT)

	notifications, err := e.store.GetNotifications(ctx, user.ID, limit)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get notifications: %v", err))
	}
	return &dto.ListResponse[dto.NotificationResponse]{Items: dto.MapNotificationsToDTO(notifications)}, nil
}

func (e *executor) RunJob(ctx context.Context, name domain.JobName, params domain.JobParams) (*dto.JobSuccessResponse, error) {
	result, err := e.runner.Run(ctx, name, params, jobs.TRIGGER_HTTP)
	if err != nil {
		return nil, err
	}
	return &dto.JobSuccessResponse{
		Success: true,
		RunID:   result.RunID,
		Stats:   result.Stats,
	}, nil
}

func mapPortfolioError(err error, message string) *apierrors.APIError {
	switch {
	case errors.Is(err, domain.ErrCoinNotFound):
		return apierrors.NewNotFoundError("Coin not found", err.Error())
	case errors.Is(err, domain.ErrTransactionNotFound):
		return apierrors.NewNotFoundError("Transaction not found")
	case errors.Is(err, portfolio.ErrInvalidTransaction):
		return apierrors.NewValidationError(err.Error())
	default:
		return apierrors.NewDatabaseError(fmt.Sprintf("%s: %v", message, err))
	}
}

func normalizeLimit(limit int, defaultLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > constants.MAX_PAGE_SIZE {
		return constants.MAX_PAGE_SIZE
	}
	return limit
}
