package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/api/middleware"
	"github.com/coinfolio/coinfolio-sync/internal/api/server"
	"github.com/coinfolio/coinfolio-sync/internal/api/shared/executor"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/marketdata"
	"github.com/coinfolio/coinfolio-sync/internal/messaging"
	"github.com/coinfolio/coinfolio-sync/internal/portfolio"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coinmarketcap"
	"github.com/coinfolio/coinfolio-sync/internal/providers/jetstream"
	"github.com/coinfolio/coinfolio-sync/internal/providers/newsapi"
	"github.com/coinfolio/coinfolio-sync/internal/ratelimit"
	"github.com/coinfolio/coinfolio-sync/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Coinfolio API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()

	// Initialize rate limit proxy shared by every provider client
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Error(err, zap.String("component", "rate_limit_proxy"))
		}
	}()

	// Initialize provider clients
	coingeckoClient := coingecko.NewClient(httpClient, rateLimitProxy, cfg.CoinGecko.APIURL, cfg.CoinGecko.APIKey, jsonAdapter)

	var coinmarketcapClient coinmarketcap.Client
	if cfg.CoinMarketCap.APIKey != "" {
		coinmarketcapClient = coinmarketcap.NewClient(httpClient, rateLimitProxy, cfg.CoinMarketCap.APIURL, cfg.CoinMarketCap.APIKey, jsonAdapter)
	} else {
		logger.WarnCtx(ctx, "CoinMarketCap API key not configured, global metrics will not be refreshed")
	}

	var newsClient newsapi.Client
	if cfg.NewsAPI.APIKey != "" {
		newsClient = newsapi.NewClient(httpClient, rateLimitProxy, cfg.NewsAPI.APIURL, cfg.NewsAPI.APIKey, jsonAdapter)
	} else {
		logger.WarnCtx(ctx, "News API key not configured, news will not be refreshed")
	}

	// Initialize publisher
	publisher := messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx,
			jetstream.Config{
				URL:            cfg.NATS.URL,
				StreamName:     cfg.NATS.StreamName,
				MaxReconnects:  cfg.NATS.MaxReconnects,
				ReconnectWait:  cfg.NATS.ReconnectWait,
				ConnectionName: cfg.NATS.ConnectionName,
			},
			adapter.NewNatsJetStream(),
			jsonAdapter,
		)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, events will not be published")
	}
	defer publisher.Close()

	// Initialize services
	marketDataService := marketdata.NewService(
		dataStore,
		coingeckoClient,
		coinmarketcapClient,
		newsClient,
		clockAdapter,
		jsonAdapter,
		marketdata.Config{
			Staleness:    cfg.Staleness,
			NewsQuery:    cfg.NewsAPI.Query,
			NewsPageSize: cfg.NewsAPI.PageSize,
		},
	)
	portfolioService := portfolio.NewService(dataStore, marketDataService)

	// Initialize job runner for the cron endpoints
	runner := jobs.NewSyncRunner(jobs.Dependencies{
		Store:     dataStore,
		CoinGecko: coingeckoClient,
		Mailer:    jobs.NewMailer(cfg.SMTP),
		Publisher: publisher,
		Clock:     clockAdapter,
		JSON:      jsonAdapter,
	}, cfg.SyncConfig)

	// Create server config
	serverConfig := server.Config{
		Debug:              cfg.Debug,
		Host:               cfg.Server.Host,
		Port:               cfg.Server.Port,
		ReadTimeout:        time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:       time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:        time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
		},
		CronSecret: cfg.Auth.CronSecret,
	}

	// Create and start server
	srv := server.New(serverConfig, executor.NewExecutor(dataStore, marketDataService, portfolioService, runner))

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
