package jobs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/types"
)

const (
	defaultCoinListPages   = 4
	defaultCoinListPerPage = coingecko.MaxPerPage
)

// CoinListSync walks the market pages ordered by market cap and upserts the metadata map
// and market row of every coin, one transaction per page
type CoinListSync struct {
	store     store.Store
	coingecko coingecko.Client
	clock     adapter.Clock
	pacing    PacingConfig
	pages     int
	perPage   int
}

// NewCoinListSync creates a new coin list sync job
func NewCoinListSync(st store.Store, cg coingecko.Client, clock adapter.Clock, pacing PacingConfig, cfg config.JobsConfig) *CoinListSync {
	pages := cfg.CoinListPages
	if pages <= 0 {
		pages = defaultCoinListPages
	}
	perPage := cfg.CoinListPerPage
	if perPage <= 0 {
		perPage = defaultCoinListPerPage
	}
	perPage = min(perPage, coingecko.MaxPerPage)

	return &CoinListSync{
		store:     st,
		coingecko: cg,
		clock:     clock,
		pacing:    pacing,
		pages:     pages,
		perPage:   perPage,
	}
}

func (j *CoinListSync) Name() domain.JobName {
	return domain.JobCoinsList
}

// Run fetches up to the configured number of pages. A short page ends the walk early.
func (j *CoinListSync) Run(ctx context.Context, _ domain.JobParams) (domain.SyncStats, error) {
	pacer := newPacer(j.clock, j.pacing)
	state := &loopState{}

	logger.InfoCtx(ctx, "Starting coin list sync", zap.Int("pages", j.pages), zap.Int("per_page", j.perPage))

	for page := 1; page <= j.pages; page++ {
		if err := pacer.beforeRequest(ctx, state); err != nil {
			return state.stats, err
		}

		started := j.clock.Now()
		coins, err := j.coingecko.GetCoinsMarkets(ctx, coingecko.MarketsQuery{
			Page:      page,
			PerPage:   j.perPage,
			Sparkline: true,
		})
		state.requestCount++
		state.stats.Requests++

		switch classifyFetchError(err) {
		case outcomeCoolDown:
			state.stats.Errors++
			logger.WarnCtx(ctx, "Upstream rate limited, cooling down", zap.Int("page", page), zap.Error(err))
			if err := pacer.coolDownAfter(ctx, state); err != nil {
				return state.stats, err
			}
			continue
		case outcomeSkipped:
			state.stats.Skipped++
			logger.WarnCtx(ctx, "Skipping unusable coin list page", zap.Int("page", page), zap.Error(err))
			continue
		case outcomeError:
			state.stats.Errors++
			logger.WarnCtx(ctx, "Failed to fetch coin list page", zap.Int("page", page), zap.Error(err))
			continue
		}

		inputs := make([]store.UpsertCoinInput, 0, len(coins))
		for _, coin := range coins {
			if coin.ID == "" {
				state.stats.Skipped++
				continue
			}
			inputs = append(inputs, types.MarketCoinToUpsertInput(coin))
		}

		if len(inputs) > 0 {
			if err := j.store.UpsertCoins(ctx, inputs); err != nil {
				return state.stats, fmt.Errorf("failed to store coin list page %d: %w", page, err)
			}
			state.stats.Success += len(inputs)
		}

		if len(coins) < j.perPage {
			break
		}

		if err := pacer.afterRequest(ctx, started); err != nil {
			return state.stats, err
		}
	}

	logger.InfoCtx(ctx, "Coin list sync finished",
		zap.Int("success", state.stats.Success),
		zap.Int("skipped", state.stats.Skipped),
		zap.Int("errors", state.stats.Errors),
		zap.Int("requests", state.stats.Requests),
	)

	return state.stats, nil
}
