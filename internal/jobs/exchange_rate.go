package jobs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/store"
)

// ExchangeRateSync overwrites the singleton EUR and UAH per USD rates
type ExchangeRateSync struct {
	store     store.Store
	coingecko coingecko.Client
}

// NewExchangeRateSync creates a new exchange rate sync job
func NewExchangeRateSync(st store.Store, cg coingecko.Client) *ExchangeRateSync {
	return &ExchangeRateSync{store: st, coingecko: cg}
}

func (j *ExchangeRateSync) Name() domain.JobName {
	return domain.JobExchangeRate
}

func (j *ExchangeRateSync) Run(ctx context.Context, _ domain.JobParams) (domain.SyncStats, error) {
	stats := domain.SyncStats{Requests: 1}

	rates, err := j.coingecko.GetExchangeRates(ctx)
	if err != nil {
		stats.Errors++
		return stats, fmt.Errorf("failed to fetch exchange rates: %w", err)
	}

	// Upstream rates are quoted per BTC, so each fiat rate is divided by the USD rate
	usd, ok := rates.Rates[domain.VS_CURRENCY]
	if !ok || !usd.Value.IsPositive() {
		stats.Skipped++
		return stats, fmt.Errorf("exchange rates without usd: %w", domain.ErrMalformedPayload)
	}
	eur, okEUR := rates.Rates["eur"]
	uah, okUAH := rates.Rates["uah"]
	if !okEUR || !okUAH {
		stats.Skipped++
		return stats, fmt.Errorf("exchange rates without eur or uah: %w", domain.ErrMalformedPayload)
	}

	eurPerUSD := eur.Value.DivRound(usd.Value, 8)
	uahPerUSD := uah.Value.DivRound(usd.Value, 8)

	if err := j.store.SaveExchangeRate(ctx, eurPerUSD, uahPerUSD); err != nil {
		return stats, fmt.Errorf("failed to store exchange rate: %w", err)
	}
	stats.Success++

	logger.InfoCtx(ctx, "Exchange rate updated",
		zap.String("eur", eurPerUSD.String()),
		zap.String("uah", uahPerUSD.String()),
	)

	return stats, nil
}
