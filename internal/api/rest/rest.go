package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/coinfolio/coinfolio-sync/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, cronSecret string) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Job endpoints, called by the scheduler with the shared secret
	cron := router.Group("/api/cron", middleware.CronAuth(cronSecret))
	{
		cron.GET("/coins-list", handler.SyncCoinsList)
		cron.GET("/exchange-rate", handler.SyncExchangeRate)
		cron.GET("/market-chart/:days", handler.SyncMarketChart)
		cron.GET("/trending", handler.SyncTrending)
		cron.GET("/categories", handler.SyncCategories)
		cron.GET("/notifications/cleanup", handler.CleanupNotifications)
		cron.GET("/notifications/price-targets", handler.SweepPriceTargets)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Market data endpoints (public read access)
		v1.GET("/coins/:id", handler.GetCoin)
		v1.GET("/coins/:id/market-chart", handler.GetMarketChart)
		v1.GET("/exchange-rate", handler.GetExchangeRate)
		v1.GET("/trending", handler.GetTrending)
		v1.GET("/categories", handler.GetCategories)
		v1.GET("/news", handler.GetNews)
		v1.GET("/global", handler.GetGlobalMetrics)

		// Job ledger (public read access)
		v1.GET("/jobs/:name/runs", handler.GetJobRuns)

		// Portfolio endpoints (requires user token)
		me := v1.Group("/me", middleware.Auth(authCfg))
		{
			me.GET("/coins", handler.ListHoldings)
			me.GET("/coins/:coin_id/transactions", handler.ListTransactions)
			me.POST("/coins/:coin_id/transactions", handler.AddTransaction)
			me.PUT("/coins/:coin_id/target", handler.SetTarget)
			me.DELETE("/transactions/:id", handler.DeleteTransaction)
			me.GET("/notifications", handler.GetNotifications)
		}
	}
}
