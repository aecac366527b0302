package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/messaging"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/providers/jetstream"
	"github.com/coinfolio/coinfolio-sync/internal/ratelimit"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

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
	clock := adapter.NewClock()

	// Initialize rate limit proxy
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Error(err, zap.String("component", "rate_limit_proxy"))
		}
	}()

	coingeckoClient := coingecko.NewClient(httpClient, rateLimitProxy, cfg.CoinGecko.APIURL, cfg.CoinGecko.APIKey, jsonAdapter)

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
	}
	defer publisher.Close()

	runner := jobs.NewSyncRunner(jobs.Dependencies{
		Store:     dataStore,
		CoinGecko: coingeckoClient,
		Mailer:    jobs.NewMailer(cfg.SMTP),
		Publisher: publisher,
		Clock:     clock,
		JSON:      jsonAdapter,
	}, cfg.SyncConfig)

	// Initialize one sweeper per scheduled job
	keys := make([]string, 0, len(cfg.Schedules))
	for key := range cfg.Schedules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sweepers []sweeper.Sweeper
	for _, key := range keys {
		interval := cfg.Schedules[key]
		if interval == 0 {
			logger.InfoCtx(ctx, "Job schedule disabled", zap.String("job", key))
			continue
		}

		name, params, err := domain.ParseJobKey(key)
		if err != nil {
			logger.FatalCtx(ctx, "Invalid job schedule", zap.Error(err), zap.String("job", key))
		}
		sweepers = append(sweepers, sweeper.NewJobSweeper(sweeper.JobSweeperConfig{
			Job:      name,
			Params:   params,
			Interval: interval,
		}, runner, clock))
	}
	if len(sweepers) == 0 {
		logger.FatalCtx(ctx, "No job schedules enabled")
	}

	logger.InfoCtx(ctx, "Initialized job sweepers", zap.Int("count", len(sweepers)))

	// Every sweeper owns a worker for its whole lifetime
	pool := pond.NewPool(len(sweepers))
	errChan := make(chan error, len(sweepers))
	for _, sw := range sweepers {
		pool.Submit(func() {
			if err := sw.Start(ctx); err != nil {
				errChan <- err
			}
		})
	}

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Cancel context to stop the sweepers
	cancel()

	// Give the sweepers time to shut down gracefully
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	for _, sw := range sweepers {
		if err := sw.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err, zap.String("sweeper", sw.Name()))
		}
	}
	pool.StopAndWait()

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
