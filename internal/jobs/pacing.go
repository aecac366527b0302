package jobs

import (
	"context"
	"time"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
)

// PacingConfig controls how fast a bulk loop may call its upstream
type PacingConfig struct {
	RPMLimit     int
	SafetyMargin time.Duration
	CoolDown     time.Duration
}

// NewPacingConfig reads the pacing settings of the CoinGecko section, falling back to the defaults
func NewPacingConfig(cfg config.CoinGeckoConfig) PacingConfig {
	pacing := PacingConfig{
		RPMLimit:     cfg.RPMLimit,
		SafetyMargin: cfg.SafetyMargin,
		CoolDown:     cfg.CoolDown,
	}
	if pacing.RPMLimit <= 0 {
		pacing.RPMLimit = domain.DEFAULT_RPM_LIMIT
	}
	if pacing.SafetyMargin < 0 {
		pacing.SafetyMargin = domain.DEFAULT_SAFETY_MARGIN
	}
	if pacing.CoolDown <= 0 {
		pacing.CoolDown = domain.DEFAULT_COOL_DOWN
	}
	return pacing
}

// Delay is the minimum spacing between two requests: 60000ms / RPM + safety margin
func (c PacingConfig) Delay() time.Duration {
	return time.Minute/time.Duration(c.RPMLimit) + c.SafetyMargin
}

// fetchOutcome classifies the result of one upstream fetch in a bulk loop
type fetchOutcome int

const (
	outcomeSuccess fetchOutcome = iota
	outcomeSkipped
	outcomeCoolDown
	outcomeError
)

// classifyFetchError maps a fetch error onto the loop's error taxonomy
func classifyFetchError(err error) fetchOutcome {
	switch {
	case err == nil:
		return outcomeSuccess
	case domain.IsCoolDownError(err):
		return outcomeCoolDown
	case domain.IsDataError(err):
		return outcomeSkipped
	default:
		return outcomeError
	}
}

// loopState is the bookkeeping of a single bulk loop run. It is created per run and never shared.
type loopState struct {
	// requestCount is the number of requests issued since the start or the last cool-down
	requestCount int
	stats        domain.SyncStats
}

// pacer spaces the requests of a bulk loop on a clock
type pacer struct {
	clock    adapter.Clock
	delay    time.Duration
	coolDown time.Duration
}

func newPacer(clock adapter.Clock, cfg PacingConfig) *pacer {
	return &pacer{
		clock:    clock,
		delay:    cfg.Delay(),
		coolDown: cfg.CoolDown,
	}
}

// beforeRequest waits the full delay unless this is the first request since the start or the last cool-down
func (p *pacer) beforeRequest(ctx context.Context, state *loopState) error {
	if state.requestCount == 0 {
		return nil
	}
	return p.sleep(ctx, p.delay)
}

// afterRequest tops the elapsed request time up to the delay
func (p *pacer) afterRequest(ctx context.Context, started time.Time) error {
	return p.sleep(ctx, p.delay-p.clock.Since(started))
}

// coolDownAfter pauses after a rate-limit or server error and resets the request counter
func (p *pacer) coolDownAfter(ctx context.Context, state *loopState) error {
	state.requestCount = 0
	return p.sleep(ctx, p.coolDown)
}

func (p *pacer) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.clock.After(d):
		return nil
	}
}
