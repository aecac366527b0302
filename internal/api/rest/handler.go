package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/api/middleware"
	"github.com/coinfolio/coinfolio-sync/internal/api/shared/dto"
	"github.com/coinfolio/coinfolio-sync/internal/api/shared/executor"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SyncCoinsList refreshes the market rows of every tracked coin
	// GET /api/cron/coins-list
	SyncCoinsList(c *gin.Context)

	// SyncExchangeRate refreshes the USD exchange rates
	// GET /api/cron/exchange-rate
	SyncExchangeRate(c *gin.Context)

	// SyncMarketChart refreshes one market chart bucket of every tracked coin
	// GET /api/cron/market-chart/:days
	SyncMarketChart(c *gin.Context)

	// SyncTrending refreshes the trending snapshot
	// GET /api/cron/trending
	SyncTrending(c *gin.Context)

	// SyncCategories refreshes the category snapshot
	// GET /api/cron/categories
	SyncCategories(c *gin.Context)

	// CleanupNotifications removes expired notifications
	// GET /api/cron/notifications/cleanup
	CleanupNotifications(c *gin.Context)

	// SweepPriceTargets notifies users whose coins reached their target price
	// GET /api/cron/notifications/price-targets
	SweepPriceTargets(c *gin.Context)

	// GetCoin retrieves a coin's market data
	// GET /api/v1/coins/:id
	GetCoin(c *gin.Context)

	// GetMarketChart retrieves a coin's price history
	// GET /api/v1/coins/:id/market-chart?days=<1|7|30|365>
	GetMarketChart(c *gin.Context)

	// GetExchangeRate retrieves the USD exchange rates
	// GET /api/v1/exchange-rate
	GetExchangeRate(c *gin.Context)

	// GetTrending retrieves the trending coins
	// GET /api/v1/trending
	GetTrending(c *gin.Context)

	// GetCategories retrieves the coin categories
	// GET /api/v1/categories
	GetCategories(c *gin.Context)

	// GetNews retrieves the news feed
	// GET /api/v1/news
	GetNews(c *gin.Context)

	// GetGlobalMetrics retrieves the global market metrics
	// GET /api/v1/global
	GetGlobalMetrics(c *gin.Context)

	// GetJobRuns retrieves the latest runs of a job
	// GET /api/v1/jobs/:name/runs?limit=<limit>
	GetJobRuns(c *gin.Context)

	// ListHoldings retrieves the caller's holdings
	// GET /api/v1/me/coins
	ListHoldings(c *gin.Context)

	// ListTransactions retrieves the transactions of a holding
	// GET /api/v1/me/coins/:coin_id/transactions
	ListTransactions(c *gin.Context)

	// AddTransaction records a buy or sell
	// POST /api/v1/me/coins/:coin_id/transactions
	AddTransaction(c *gin.Context)

	// DeleteTransaction removes a transaction
	// DELETE /api/v1/me/transactions/:id
	DeleteTransaction(c *gin.Context)

	// SetTarget sets or clears the desired sell price of a holding
	// PUT /api/v1/me/coins/:coin_id/target
	SetTarget(c *gin.Context)

	// GetNotifications retrieves the caller's notifications
	// GET /api/v1/me/notifications?limit=<limit>
	GetNotifications(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) SyncCoinsList(c *gin.Context) {
	h.runJob(c, domain.JobCoinsList, domain.JobParams{})
}

func (h *handler) SyncExchangeRate(c *gin.Context) {
	h.runJob(c, domain.JobExchangeRate, domain.JobParams{})
}

func (h *handler) SyncMarketChart(c *gin.Context) {
	// An unknown duration is a configuration error of the caller and aborts the run
	days, err := domain.ParseChartDays(c.Param("days"))
	if err != nil {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("job", string(domain.JobMarketChart)))
		respondJobError(c, http.StatusInternalServerError, err.Error())
		return
	}
	h.runJob(c, domain.JobMarketChart, domain.JobParams{Days: days})
}

func (h *handler) SyncTrending(c *gin.Context) {
	h.runJob(c, domain.JobTrending, domain.JobParams{})
}

func (h *handler) SyncCategories(c *gin.Context) {
	h.runJob(c, domain.JobCategories, domain.JobParams{})
}

func (h *handler) CleanupNotifications(c *gin.Context) {
	h.runJob(c, domain.JobNotificationsCleanup, domain.JobParams{})
}

func (h *handler) SweepPriceTargets(c *gin.Context) {
	h.runJob(c, domain.JobPriceTargets, domain.JobParams{})
}

// runJob runs a job and answers with the job endpoint contract
func (h *handler) runJob(c *gin.Context, name domain.JobName, params domain.JobParams) {
	response, err := h.executor.RunJob(c.Request.Context(), name, params)
	if err != nil {
		if errors.Is(err, domain.ErrJobAlreadyRunning) {
			respondJobError(c, http.StatusConflict, err.Error())
			return
		}

		logger.ErrorCtx(c.Request.Context(), err, zap.String("job", name.LockKey(params)))
		respondJobError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetCoin(c *gin.Context) {
	coinID := c.Param("id")
	if coinID == "" {
		respondBadRequest(c, "Coin ID is required")
		return
	}

	response, err := h.executor.GetCoin(c.Request.Context(), coinID)
	if err != nil {
		respondError(c, err, "Failed to get coin")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetMarketChart(c *gin.Context) {
	coinID := c.Param("id")
	if coinID == "" {
		respondBadRequest(c, "Coin ID is required")
		return
	}

	days, err := ParseMarketChartQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetMarketChart(c.Request.Context(), coinID, days)
	if err != nil {
		respondError(c, err, "Failed to get market chart")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetExchangeRate(c *gin.Context) {
	response, err := h.executor.GetExchangeRate(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get exchange rate")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTrending(c *gin.Context) {
	response, err := h.executor.GetTrending(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get trending coins")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetCategories(c *gin.Context) {
	response, err := h.executor.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get categories")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetNews(c *gin.Context) {
	response, err := h.executor.GetNews(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get news")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetGlobalMetrics(c *gin.Context) {
	response, err := h.executor.GetGlobalMetrics(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get global metrics")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetJobRuns(c *gin.Context) {
	queryParams, err := ParseListQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetJobRuns(c.Request.Context(), domain.JobName(c.Param("name")), queryParams.Limit)
	if err != nil {
		respondError(c, err, "Failed to get job runs")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListHoldings(c *gin.Context) {
	response, err := h.executor.ListHoldings(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err, "Failed to get holdings")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListTransactions(c *gin.Context) {
	response, err := h.executor.ListTransactions(c.Request.Context(), currentUser(c), c.Param("coin_id"))
	if err != nil {
		respondError(c, err, "Failed to get transactions")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) AddTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.AddTransaction(c.Request.Context(), currentUser(c), c.Param("coin_id"), req)
	if err != nil {
		respondError(c, err, "Failed to add transaction")
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parseTransactionID(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.DeleteTransaction(c.Request.Context(), currentUser(c), transactionID)
	if err != nil {
		respondError(c, err, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) SetTarget(c *gin.Context) {
	var req dto.SetTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.executor.SetTarget(c.Request.Context(), currentUser(c), c.Param("coin_id"), req); err != nil {
		respondError(c, err, "Failed to set target price")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *handler) GetNotifications(c *gin.Context) {
	queryParams, err := ParseListQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetNotifications(c.Request.Context(), currentUser(c), queryParams.Limit)
	if err != nil {
		respondError(c, err, "Failed to get notifications")
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "coinfolio-api",
	})
}

func currentUser(c *gin.Context) executor.User {
	return executor.User{
		ID:    middleware.UserID(c),
		Email: middleware.UserEmail(c),
	}
}
