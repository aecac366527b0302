package jobs

import (
	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/messaging"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/store"
)

// Dependencies are the collaborators shared by the synchronization jobs
type Dependencies struct {
	Store     store.Store
	CoinGecko coingecko.Client
	// Mailer may be nil, price target alerts are then only stored and published
	Mailer    adapter.Mailer
	Publisher messaging.Publisher
	Clock     adapter.Clock
	JSON      adapter.JSON
}

// NewSyncJobs builds every synchronization job from the shared configuration
func NewSyncJobs(deps Dependencies, cfg config.SyncConfig) []Job {
	pacing := NewPacingConfig(cfg.CoinGecko)
	return []Job{
		NewCoinListSync(deps.Store, deps.CoinGecko, deps.Clock, pacing, cfg.Jobs),
		NewExchangeRateSync(deps.Store, deps.CoinGecko),
		NewMarketChartSync(deps.Store, deps.CoinGecko, deps.Clock, pacing),
		NewTrendingSync(deps.Store, deps.CoinGecko, deps.Clock, deps.JSON),
		NewCategoriesSync(deps.Store, deps.CoinGecko, deps.Clock, deps.JSON),
		NewNotificationCleanup(deps.Store, deps.Clock, cfg.Notifications),
		NewPriceTargetSweep(deps.Store, deps.Mailer, deps.Publisher, deps.Clock, cfg.Notifications),
	}
}

// NewSyncRunner builds a runner over every synchronization job
func NewSyncRunner(deps Dependencies, cfg config.SyncConfig) Runner {
	return NewRunner(deps.Store, deps.Publisher, deps.Clock, cfg.Jobs.LockTTL, NewSyncJobs(deps, cfg)...)
}

// NewMailer returns an SMTP mailer, or nil when no relay is configured
func NewMailer(cfg config.SMTPConfig) adapter.Mailer {
	if cfg.Host == "" {
		return nil
	}
	return adapter.NewSMTPMailer(adapter.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	})
}
