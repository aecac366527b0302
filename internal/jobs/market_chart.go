package jobs

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/store"
)

// MarketChartSync refreshes one chart bucket for every tracked coin, one request per coin,
// paced to the configured requests-per-minute budget
type MarketChartSync struct {
	store     store.Store
	coingecko coingecko.Client
	clock     adapter.Clock
	pacing    PacingConfig
}

// NewMarketChartSync creates a new market chart sync job
func NewMarketChartSync(st store.Store, cg coingecko.Client, clock adapter.Clock, pacing PacingConfig) *MarketChartSync {
	return &MarketChartSync{
		store:     st,
		coingecko: cg,
		clock:     clock,
		pacing:    pacing,
	}
}

func (j *MarketChartSync) Name() domain.JobName {
	return domain.JobMarketChart
}

// Run refreshes the bucket selected by params.Days. An unknown bucket fails before any request.
// Rate-limit and server errors pause the loop for the cool-down, data errors skip the coin,
// and a storage failure aborts the run.
func (j *MarketChartSync) Run(ctx context.Context, params domain.JobParams) (domain.SyncStats, error) {
	days := params.Days
	if !days.Valid() {
		return domain.SyncStats{}, fmt.Errorf("%w: %d", domain.ErrUnknownChartDuration, days)
	}

	coinIDs, err := j.store.GetCoinIDs(ctx)
	if err != nil {
		return domain.SyncStats{}, fmt.Errorf("failed to list coins: %w", err)
	}

	pacer := newPacer(j.clock, j.pacing)
	state := &loopState{}

	logger.InfoCtx(ctx, "Starting market chart sync",
		zap.Stringer("days", days),
		zap.Int("coins", len(coinIDs)),
		zap.Duration("delay", pacer.delay),
	)

	for _, coinID := range coinIDs {
		if err := pacer.beforeRequest(ctx, state); err != nil {
			return state.stats, err
		}

		started := j.clock.Now()
		chart, err := j.coingecko.GetMarketChart(ctx, coinID, days)
		state.requestCount++
		state.stats.Requests++

		switch classifyFetchError(err) {
		case outcomeCoolDown:
			state.stats.Errors++
			logger.WarnCtx(ctx, "Upstream rate limited, cooling down",
				zap.String("coin_id", coinID),
				zap.Duration("cooldown", pacer.coolDown),
				zap.Error(err),
			)
			if err := pacer.coolDownAfter(ctx, state); err != nil {
				return state.stats, err
			}
			continue
		case outcomeSkipped:
			state.stats.Skipped++
			logger.WarnCtx(ctx, "Skipping coin with unusable market chart", zap.String("coin_id", coinID), zap.Error(err))
			continue
		case outcomeError:
			state.stats.Errors++
			logger.WarnCtx(ctx, "Failed to fetch market chart", zap.String("coin_id", coinID), zap.Error(err))
			continue
		}

		if err := j.store.UpsertMarketChart(ctx, coinID, days, chart.Prices, j.clock.Now()); err != nil {
			return state.stats, fmt.Errorf("failed to store market chart of %s: %w", coinID, err)
		}
		state.stats.Success++

		if err := pacer.afterRequest(ctx, started); err != nil {
			return state.stats, err
		}
	}

	logger.InfoCtx(ctx, "Market chart sync finished",
		zap.Stringer("days", days),
		zap.Int("success", state.stats.Success),
		zap.Int("skipped", state.stats.Skipped),
		zap.Int("errors", state.stats.Errors),
		zap.Int("requests", state.stats.Requests),
	)

	return state.stats, nil
}
