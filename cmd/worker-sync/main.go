package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/jobs"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/messaging"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/providers/jetstream"
	temporal "github.com/coinfolio/coinfolio-sync/internal/providers/temporal"
	"github.com/coinfolio/coinfolio-sync/internal/ratelimit"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerSyncConfig(*configFile, *envPath)
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
			"service": "worker-sync",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Worker Sync")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()

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
		Clock:     clockAdapter,
		JSON:      jsonAdapter,
	}, cfg.SyncConfig)

	// Initialize executor for activities
	executor := workflows.NewExecutor(runner, adapter.NewActivity())

	// Connect to Temporal with logger integration
	temporalLogger := temporal.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("namespace", cfg.Temporal.Namespace),
	)

	// Create Temporal worker with Sentry interceptor
	temporalWorker := worker.New(temporalClient,
		cfg.Temporal.TaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})

	workerSync := workflows.NewWorkerSync(executor, workflows.WorkerSyncConfig{
		JobTimeout: cfg.Jobs.LockTTL,
	})

	temporalWorker.RegisterWorkflow(workerSync.SyncJob)
	temporalWorker.RegisterActivity(executor.RunJob)
	logger.InfoCtx(ctx, "Registered workflows and activities")

	// Register the job schedules
	schedules, err := workflows.BuildSchedules(cfg.Schedules, cfg.Temporal.TaskQueue, workerSync.SyncJob)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to build schedules", zap.Error(err))
	}
	if err := temporal.EnsureSchedules(ctx, temporal.NewScheduleOrchestrator(temporalClient), schedules); err != nil {
		logger.FatalCtx(ctx, "Failed to ensure schedules", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Schedules registered", zap.Int("count", len(schedules)))

	// Start the worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start Temporal worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker Sync started", zap.String("task_queue", cfg.Temporal.TaskQueue))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.InfoCtx(ctx, "Shutting down Worker Sync...")
	temporalWorker.Stop()
	logger.InfoCtx(ctx, "Worker Sync stopped")
}
