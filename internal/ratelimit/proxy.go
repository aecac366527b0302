package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

// ErrProxyClosed is returned by Request after Close
var ErrProxyClosed = errors.New("proxy is closed")

// RequestFunc is a function that performs the actual API request
type RequestFunc func(ctx context.Context) (interface{}, error)

// requestResult wraps the result and error of a request
type requestResult struct {
	value interface{}
	err   error
}

// Proxy defines the interface for rate-limiting proxy
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request submits a rate-limited request for execution
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

// proxy queues requests on a bounded worker pool and releases each one when its provider's token bucket allows
type proxy struct {
	pool      pond.ResultPool[*requestResult]
	limiters  map[string]*providerLimiter
	closed    atomic.Bool
	closeOnce sync.Once
}

// providerLimiter holds the rate limiting state for a single provider
type providerLimiter struct {
	name    string
	config  config.RateLimitConfig
	limiter *rate.Limiter
}

// NewProxy creates a new rate-limiting proxy
func NewProxy(cfg config.RateLimiterConfig) (Proxy, error) {
	// Validate and set defaults
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	limiters := make(map[string]*providerLimiter, len(cfg.Providers))
	for name, providerConfig := range cfg.Providers {
		limiters[name] = &providerLimiter{
			name:    name,
			config:  providerConfig,
			limiter: rate.NewLimiter(rate.Limit(providerConfig.RequestsPerSecond), providerConfig.Burst),
		}
	}

	pool := pond.NewResultPool[*requestResult](
		cfg.MaxWorkers,
		pond.WithQueueSize(cfg.MaxQueueSize),
	)

	logger.Info("Rate limit proxy initialized",
		zap.Int("max_workers", cfg.MaxWorkers),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
		zap.Int("providers", len(cfg.Providers)),
	)

	return &proxy{
		pool:     pool,
		limiters: limiters,
	}, nil
}

// Request submits a rate-limited request for execution and returns the result with type safety
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	// If proxy is nil, execute the function directly
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	return result.(T), nil
}

// Request submits a rate-limited request for execution and returns the result as interface{}
// The function blocks until:
// 1. A token is acquired and the request completes
// 2. The context is canceled
// 3. The maximum queue time is exceeded
func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	// The queue deadline only bounds the wait for a token; the request itself runs on the caller's context
	queueCtx, cancel := context.WithTimeout(ctx, limiter.config.MaxQueueTime)
	defer cancel()

	resultTask := p.pool.Submit(func() *requestResult {
		if err := limiter.limiter.Wait(queueCtx); err != nil {
			if ctx.Err() == nil {
				logger.WarnCtx(ctx, "Rate limit queue time exceeded",
					zap.String("provider", limiter.name),
					zap.Duration("max_queue_time", limiter.config.MaxQueueTime),
				)
			}
			return &requestResult{err: fmt.Errorf("failed to acquire rate limit token for %s: %w", limiter.name, err)}
		}

		value, err := fn(ctx)
		return &requestResult{value: value, err: err}
	})

	result, err := resultTask.Wait()
	if err != nil {
		return nil, err
	}
	if result.err != nil {
		return nil, result.err
	}
	return result.value, nil
}

// Close gracefully shuts down the proxy
// It waits for in-flight requests to complete
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)

		logger.Info("Shutting down rate limit proxy")

		if errTasks := p.pool.Stop().Wait(); errTasks != nil {
			logger.Warn("Error waiting for pool tasks to complete", zap.Error(errTasks))
			err = errTasks
		}

		logger.Info("Rate limit proxy shutdown complete")
	})
	return err
}

// validateConfig validates and sets defaults for the configuration
func validateConfig(cfg *config.RateLimiterConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("at least one provider must be configured")
	}

	providers := make(map[string]config.RateLimitConfig, len(cfg.Providers))
	for name, provider := range cfg.Providers {
		if provider.RequestsPerSecond <= 0 {
			return fmt.Errorf("provider %s: requests_per_second must be positive", name)
		}

		if provider.Burst <= 0 {
			provider.Burst = max(int(provider.RequestsPerSecond), 1)
		}

		if provider.MaxQueueTime <= 0 {
			provider.MaxQueueTime = 5 * time.Minute
		}

		providers[name] = provider
	}
	cfg.Providers = providers

	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = runtime.NumCPU() * 2
	}

	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 1000
	}

	return nil
}
