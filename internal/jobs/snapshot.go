package jobs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
	"github.com/coinfolio/coinfolio-sync/internal/types"
)

const (
	KEY_TRENDING_FINGERPRINT   = "fingerprint:trending"
	KEY_CATEGORIES_FINGERPRINT = "fingerprint:categories"
)

// fingerprint hashes the canonical JSON form of v, so a snapshot with the same content
// always has the same fingerprint regardless of key order
func fingerprint(json adapter.JSON, v interface{}) (string, error) {
	canonical, err := json.Canonicalize(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// replaceSnapshot rewrites a snapshot table unless its content matches the stored fingerprint.
// It reports whether the table was rewritten.
func replaceSnapshot(ctx context.Context, st store.Store, json adapter.JSON, key string, content interface{}, replace func() error) (bool, error) {
	fp, err := fingerprint(json, content)
	if err != nil {
		return false, fmt.Errorf("failed to fingerprint snapshot: %w", err)
	}

	previous, err := st.GetKeyValue(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot fingerprint: %w", err)
	}
	if previous == fp {
		return false, nil
	}

	if err := replace(); err != nil {
		return false, err
	}

	// A failed write only costs one redundant rewrite on the next run
	if err := st.SetKeyValue(ctx, key, fp); err != nil {
		logger.WarnCtx(ctx, "Failed to store snapshot fingerprint", zap.String("key", key), zap.Error(err))
	}

	return true, nil
}

// TrendingSync replaces the trending coins snapshot
type TrendingSync struct {
	store     store.Store
	coingecko coingecko.Client
	clock     adapter.Clock
	json      adapter.JSON
}

// NewTrendingSync creates a new trending sync job
func NewTrendingSync(st store.Store, cg coingecko.Client, clock adapter.Clock, json adapter.JSON) *TrendingSync {
	return &TrendingSync{store: st, coingecko: cg, clock: clock, json: json}
}

func (j *TrendingSync) Name() domain.JobName {
	return domain.JobTrending
}

func (j *TrendingSync) Run(ctx context.Context, _ domain.JobParams) (domain.SyncStats, error) {
	stats := domain.SyncStats{Requests: 1}

	coins, err := j.coingecko.GetTrending(ctx)
	if err != nil {
		stats.Errors++
		return stats, fmt.Errorf("failed to fetch trending coins: %w", err)
	}

	rows := make([]schema.TrendingCoin, 0, len(coins))
	for _, coin := range coins {
		rows = append(rows, types.TrendingCoinToSchema(coin))
	}

	now := j.clock.Now()
	replaced, err := replaceSnapshot(ctx, j.store, j.json, KEY_TRENDING_FINGERPRINT, rows, func() error {
		stamped := make([]schema.TrendingCoin, len(rows))
		for i, row := range rows {
			row.UpdatedAt = now
			stamped[i] = row
		}
		if err := j.store.ReplaceTrendingCoins(ctx, stamped); err != nil {
			return fmt.Errorf("failed to store trending coins: %w", err)
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	if !replaced {
		stats.Skipped = len(rows)
		logger.InfoCtx(ctx, "Trending coins unchanged", zap.Int("coins", len(rows)))
		return stats, nil
	}

	stats.Success = len(rows)
	logger.InfoCtx(ctx, "Trending coins replaced", zap.Int("coins", len(rows)))
	return stats, nil
}

// CategoriesSync replaces the coin categories snapshot
type CategoriesSync struct {
	store     store.Store
	coingecko coingecko.Client
	clock     adapter.Clock
	json      adapter.JSON
}

// NewCategoriesSync creates a new categories sync job
func NewCategoriesSync(st store.Store, cg coingecko.Client, clock adapter.Clock, json adapter.JSON) *CategoriesSync {
	return &CategoriesSync{store: st, coingecko: cg, clock: clock, json: json}
}

func (j *CategoriesSync) Name() domain.JobName {
	return domain.JobCategories
}

func (j *CategoriesSync) Run(ctx context.Context, _ domain.JobParams) (domain.SyncStats, error) {
	stats := domain.SyncStats{Requests: 1}

	categories, err := j.coingecko.GetCategories(ctx)
	if err != nil {
		stats.Errors++
		return stats, fmt.Errorf("failed to fetch categories: %w", err)
	}

	// Categories without an id cannot be keyed and are dropped
	valid := make([]coingecko.Category, 0, len(categories))
	for _, category := range categories {
		if category.ID == "" {
			stats.Skipped++
			continue
		}
		valid = append(valid, category)
	}

	now := j.clock.Now()
	replaced, err := replaceSnapshot(ctx, j.store, j.json, KEY_CATEGORIES_FINGERPRINT, valid, func() error {
		rows := make([]schema.Category, 0, len(valid))
		for _, category := range valid {
			top3, err := j.json.Marshal(category.Top3Coins)
			if err != nil {
				return fmt.Errorf("failed to marshal top coins of %s: %w", category.ID, err)
			}
			rows = append(rows, schema.Category{
				ID:                 category.ID,
				Name:               category.Name,
				MarketCap:          category.MarketCap,
				MarketCapChange24h: category.MarketCapChange24h,
				Volume24h:          category.Volume24h,
				Top3Coins:          datatypes.JSON(top3),
				UpdatedAt:          now,
			})
		}
		if err := j.store.ReplaceCategories(ctx, rows); err != nil {
			return fmt.Errorf("failed to store categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	if !replaced {
		stats.Skipped += len(valid)
		logger.InfoCtx(ctx, "Categories unchanged", zap.Int("categories", len(valid)))
		return stats, nil
	}

	stats.Success = len(valid)
	logger.InfoCtx(ctx, "Categories replaced", zap.Int("categories", len(valid)))
	return stats, nil
}
