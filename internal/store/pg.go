package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 10
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that keeps a statement under
// PostgreSQL's limit of 65535 bind parameters.
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000 // ON CONFLICT clauses and gorm-added columns

	safeBatchSize := max((maxParams-totalHeadroom)/fieldsPerRecord, 1)
	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// =============================================================================
// Coins
// =============================================================================

// GetCoinIDs returns the ids of every coin with a market row, in insertion order
func (s *pgStore) GetCoinIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&schema.Coin{}).
		Order("created_at ASC, id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get coin ids: %w", err)
	}

	return ids, nil
}

// GetCoin returns a coin with its display metadata
func (s *pgStore) GetCoin(ctx context.Context, id string) (*schema.Coin, error) {
	var coin schema.Coin
	err := s.db.WithContext(ctx).Preload("Info").Where("id = ?", id).First(&coin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get coin: %w", err)
	}

	return &coin, nil
}

// GetCoinInfo returns the display metadata of a coin
func (s *pgStore) GetCoinInfo(ctx context.Context, id string) (*schema.CoinsListIDMap, error) {
	var info schema.CoinsListIDMap
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&info).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get coin info: %w", err)
	}

	return &info, nil
}

// UpsertCoins writes the metadata map entries and market rows of the given coins in one transaction
func (s *pgStore) UpsertCoins(ctx context.Context, inputs []UpsertCoinInput) error {
	if len(inputs) == 0 {
		return nil
	}

	// ON CONFLICT cannot touch the same row twice in one statement, keep the last snapshot of each coin
	seen := make(map[string]int, len(inputs))
	infos := make([]schema.CoinsListIDMap, 0, len(inputs))
	coins := make([]schema.Coin, 0, len(inputs))
	now := time.Now()

	for _, input := range inputs {
		sparkline, err := marshalJSON(input.SparklineIn7d)
		if err != nil {
			return fmt.Errorf("failed to marshal sparkline of %s: %w", input.ID, err)
		}

		info := schema.CoinsListIDMap{
			ID:        input.ID,
			Symbol:    input.Symbol,
			Name:      input.Name,
			Image:     input.Image,
			UpdatedAt: now,
		}
		coin := schema.Coin{
			ID:                       input.ID,
			CurrentPrice:             input.CurrentPrice,
			MarketCap:                input.MarketCap,
			MarketCapRank:            input.MarketCapRank,
			TotalVolume:              input.TotalVolume,
			High24h:                  input.High24h,
			Low24h:                   input.Low24h,
			CirculatingSupply:        input.CirculatingSupply,
			PriceChangePercentage24h: input.PriceChangePercentage24h,
			PriceChangePercentage7d:  input.PriceChangePercentage7d,
			PriceChangePercentage30d: input.PriceChangePercentage30d,
			SparklineIn7d:            sparkline,
			LastUpdated:              input.LastUpdated,
			UpdatedAt:                now,
		}

		if idx, ok := seen[input.ID]; ok {
			infos[idx] = info
			coins[idx] = coin
			continue
		}
		seen[input.ID] = len(infos)
		infos = append(infos, info)
		coins = append(coins, coin)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"symbol", "name", "image", "updated_at"}),
		}).CreateInBatches(&infos, calculateSafeBatchSize(len(infos), 6)).Error; err != nil {
			return fmt.Errorf("failed to upsert coin metadata: %w", err)
		}

		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"current_price",
				"market_cap",
				"market_cap_rank",
				"total_volume",
				"high_24h",
				"low_24h",
				"circulating_supply",
				"price_change_percentage_24h",
				"price_change_percentage_7d",
				"price_change_percentage_30d",
				"sparkline_in_7d",
				"last_updated",
				"updated_at",
			}),
		}).CreateInBatches(&coins, calculateSafeBatchSize(len(coins), 15)).Error; err != nil {
			return fmt.Errorf("failed to upsert coins: %w", err)
		}

		return nil
	})
}

// =============================================================================
// Market charts
// =============================================================================

// GetMarketChart returns every bucket of a coin's chart
func (s *pgStore) GetMarketChart(ctx context.Context, coinID string) (*schema.MarketChart, error) {
	var chart schema.MarketChart
	err := s.db.WithContext(ctx).Where("coin_id = ?", coinID).First(&chart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get market chart: %w", err)
	}

	return &chart, nil
}

// UpsertMarketChart replaces one bucket of a coin's chart and leaves the other buckets untouched
func (s *pgStore) UpsertMarketChart(ctx context.Context, coinID string, days domain.ChartDays, prices [][]float64, updatedAt time.Time) error {
	pricesColumn, updatedAtColumn, err := schema.MarketChartColumns(days)
	if err != nil {
		return err
	}

	series, err := marshalJSON(prices)
	if err != nil {
		return fmt.Errorf("failed to marshal market chart: %w", err)
	}

	chart := schema.MarketChart{CoinID: coinID}
	if err := chart.SetBucket(days, series, updatedAt); err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "coin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{pricesColumn, updatedAtColumn}),
	}).Create(&chart).Error
	if err != nil {
		return fmt.Errorf("failed to upsert market chart: %w", err)
	}

	return nil
}

// =============================================================================
// Upstream snapshots
// =============================================================================

// GetExchangeRate returns the singleton exchange rate row
func (s *pgStore) GetExchangeRate(ctx context.Context) (*schema.ExchangeRate, error) {
	var rate schema.ExchangeRate
	err := s.db.WithContext(ctx).Where("id = ?", domain.EXCHANGE_RATE_ID).First(&rate).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	return &rate, nil
}

// SaveExchangeRate overwrites the singleton exchange rate row
func (s *pgStore) SaveExchangeRate(ctx context.Context, eur, uah decimal.Decimal) error {
	rate := schema.ExchangeRate{
		ID:        domain.EXCHANGE_RATE_ID,
		EUR:       eur,
		UAH:       uah,
		UpdatedAt: time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rate).Error
	if err != nil {
		return fmt.Errorf("failed to save exchange rate: %w", err)
	}

	return nil
}

// GetTrendingCoins returns the trending snapshot ordered by score
func (s *pgStore) GetTrendingCoins(ctx context.Context) ([]schema.TrendingCoin, error) {
	var coins []schema.TrendingCoin
	if err := s.db.WithContext(ctx).Order("score ASC, id ASC").Find(&coins).Error; err != nil {
		return nil, fmt.Errorf("failed to get trending coins: %w", err)
	}

	return coins, nil
}

// ReplaceTrendingCoins deletes the trending snapshot and writes the given one in one transaction
func (s *pgStore) ReplaceTrendingCoins(ctx context.Context, coins []schema.TrendingCoin) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&schema.TrendingCoin{}).Error; err != nil {
			return fmt.Errorf("failed to delete trending coins: %w", err)
		}
		if len(coins) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&coins, calculateSafeBatchSize(len(coins), 10)).Error; err != nil {
			return fmt.Errorf("failed to create trending coins: %w", err)
		}
		return nil
	})
}

// GetCategories returns the category snapshot ordered by market cap
func (s *pgStore) GetCategories(ctx context.Context) ([]schema.Category, error) {
	var categories []schema.Category
	if err := s.db.WithContext(ctx).Order("market_cap DESC, id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return categories, nil
}

// ReplaceCategories deletes the category snapshot and writes the given one in one transaction
func (s *pgStore) ReplaceCategories(ctx context.Context, categories []schema.Category) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&schema.Category{}).Error; err != nil {
			return fmt.Errorf("failed to delete categories: %w", err)
		}
		if len(categories) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(&categories, calculateSafeBatchSize(len(categories), 7)).Error; err != nil {
			return fmt.Errorf("failed to create categories: %w", err)
		}
		return nil
	})
}

// GetNewsArticles returns the cached news feed, newest first
func (s *pgStore) GetNewsArticles(ctx context.Context, limit int) ([]schema.NewsArticle, error) {
	var articles []schema.NewsArticle
	err := s.db.WithContext(ctx).
		Order("published_at DESC NULLS LAST, id ASC").
		Limit(limit).
		Find(&articles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get news articles: %w", err)
	}

	return articles, nil
}

// ReplaceNewsArticles deletes the cached news feed and writes the given one in one transaction
func (s *pgStore) ReplaceNewsArticles(ctx context.Context, articles []schema.NewsArticle) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&schema.NewsArticle{}).Error; err != nil {
			return fmt.Errorf("failed to delete news articles: %w", err)
		}
		if len(articles) == 0 {
			return nil
		}
		// Upstream feeds repeat syndicated articles
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoNothing: true,
		}).Create(&articles).Error; err != nil {
			return fmt.Errorf("failed to create news articles: %w", err)
		}
		return nil
	})
}

// GetGlobalMetrics returns the singleton global metrics row
func (s *pgStore) GetGlobalMetrics(ctx context.Context) (*schema.GlobalMetrics, error) {
	var metrics schema.GlobalMetrics
	err := s.db.WithContext(ctx).Where("id = ?", domain.GLOBAL_METRICS_ID).First(&metrics).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get global metrics: %w", err)
	}

	return &metrics, nil
}

// SaveGlobalMetrics overwrites the singleton global metrics row
func (s *pgStore) SaveGlobalMetrics(ctx context.Context, metrics schema.GlobalMetrics) error {
	metrics.ID = domain.GLOBAL_METRICS_ID
	metrics.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&metrics).Error
	if err != nil {
		return fmt.Errorf("failed to save global metrics: %w", err)
	}

	return nil
}

// =============================================================================
// Key-value store
// =============================================================================

// GetKeyValue retrieves a value by key from the key-value store
func (s *pgStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get key-value: %w", err)
	}

	return kv.Value, nil
}

// SetKeyValue stores a value under key
func (s *pgStore) SetKeyValue(ctx context.Context, key string, value string) error {
	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set key-value: %w", err)
	}

	return nil
}

// =============================================================================
// Users and holdings
// =============================================================================

// UpsertUser records a user id and email. An empty email keeps the stored one.
func (s *pgStore) UpsertUser(ctx context.Context, input UpsertUserInput) error {
	user := schema.User{
		ID:    input.ID,
		Email: input.Email,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"email": gorm.Expr("CASE WHEN EXCLUDED.email = '' THEN users.email ELSE EXCLUDED.email END"),
		}),
	}).Create(&user).Error
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

// GetUserCoins returns a user's holdings with their coin rows and display metadata
func (s *pgStore) GetUserCoins(ctx context.Context, userID string) ([]schema.UserCoin, error) {
	var holdings []schema.UserCoin
	err := s.db.WithContext(ctx).
		Preload("Coin").
		Preload("Info").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&holdings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user coins: %w", err)
	}

	return holdings, nil
}

// GetUserCoin returns one holding
func (s *pgStore) GetUserCoin(ctx context.Context, userID string, coinID string) (*schema.UserCoin, error) {
	var holding schema.UserCoin
	err := s.db.WithContext(ctx).
		Preload("Coin").
		Preload("Info").
		Where("user_id = ? AND coin_id = ?", userID, coinID).
		First(&holding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user coin: %w", err)
	}

	return &holding, nil
}

// GetUserCoinTransactions returns the transactions of a holding in ascending date order
func (s *pgStore) GetUserCoinTransactions(ctx context.Context, userCoinID int64) ([]schema.UserCoinTransaction, error) {
	txs, err := getTransactions(s.db.WithContext(ctx), userCoinID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user coin transactions: %w", err)
	}

	return txs, nil
}

// AddUserCoinTransaction appends a transaction to a holding and stores the recomputed aggregate
func (s *pgStore) AddUserCoinTransaction(ctx context.Context, input CreateTransactionInput, recompute RecomputeFunc) (*schema.UserCoin, error) {
	var holding schema.UserCoin

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Create the holding on first use
		created := schema.UserCoin{
			UserID: input.UserID,
			CoinID: input.CoinID,
		}
		if err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "coin_id"}},
			DoNothing: true,
		}).Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create user coin: %w", err)
		}

		// Lock the holding so concurrent writers recompute one after another
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND coin_id = ?", input.UserID, input.CoinID).
			First(&holding).Error; err != nil {
			return fmt.Errorf("failed to lock user coin: %w", err)
		}

		transaction := schema.UserCoinTransaction{
			UserCoinID: holding.ID,
			Quantity:   input.Quantity,
			Price:      input.Price,
			Date:       input.Date,
		}
		if err := tx.Create(&transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		return applyRecompute(tx, &holding, recompute)
	})
	if err != nil {
		return nil, err
	}

	return &holding, nil
}

// DeleteUserCoinTransaction removes a user's transaction and stores the recomputed aggregate
func (s *pgStore) DeleteUserCoinTransaction(ctx context.Context, userID string, transactionID int64, recompute RecomputeFunc) (*schema.UserCoin, error) {
	var holding schema.UserCoin

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transaction schema.UserCoinTransaction
		err := tx.Joins("JOIN user_coins ON user_coins.id = user_coin_transactions.user_coin_id").
			Where("user_coin_transactions.id = ? AND user_coins.user_id = ?", transactionID, userID).
			First(&transaction).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTransactionNotFound
			}
			return fmt.Errorf("failed to get transaction: %w", err)
		}

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", transaction.UserCoinID).
			First(&holding).Error; err != nil {
			return fmt.Errorf("failed to lock user coin: %w", err)
		}

		if err := tx.Delete(&transaction).Error; err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}

		return applyRecompute(tx, &holding, recompute)
	})
	if err != nil {
		return nil, err
	}

	return &holding, nil
}

// UpdateDesiredSellPrice sets or clears the price target of a holding
func (s *pgStore) UpdateDesiredSellPrice(ctx context.Context, userID string, coinID string, price decimal.NullDecimal) error {
	result := s.db.WithContext(ctx).
		Model(&schema.UserCoin{}).
		Where("user_id = ? AND coin_id = ?", userID, coinID).
		Updates(map[string]interface{}{
			"desired_sell_price": price,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update desired sell price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCoinNotFound
	}

	return nil
}

// GetPriceTargetHoldings returns every holding with a positive price target whose coin has a known price
func (s *pgStore) GetPriceTargetHoldings(ctx context.Context) ([]schema.UserCoin, error) {
	var holdings []schema.UserCoin
	err := s.db.WithContext(ctx).
		Joins("JOIN coins ON coins.id = user_coins.coin_id").
		Where("user_coins.desired_sell_price > 0 AND coins.current_price IS NOT NULL").
		Preload("User").
		Preload("Coin").
		Preload("Info").
		Order("user_coins.user_id ASC, user_coins.id ASC").
		Find(&holdings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get price target holdings: %w", err)
	}

	return holdings, nil
}

// =============================================================================
// Notifications
// =============================================================================

// CreateNotifications inserts the notifications in one transaction
func (s *pgStore) CreateNotifications(ctx context.Context, notifications []schema.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&notifications).Error; err != nil {
			return fmt.Errorf("failed to create notifications: %w", err)
		}
		return nil
	})
}

// HasRecentNotification reports whether a notification of kind for the user's coin was created at or after since
func (s *pgStore) HasRecentNotification(ctx context.Context, userID string, coinID string, kind schema.NotificationKind, since time.Time) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Notification{}).
		Where("user_id = ? AND coin_id = ? AND kind = ? AND created_at >= ?", userID, coinID, kind, since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check recent notifications: %w", err)
	}

	return count > 0, nil
}

// DeleteNotificationsBefore removes notifications created before the cutoff
func (s *pgStore) DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&schema.Notification{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete notifications: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// GetNotifications returns a user's notifications, newest first
func (s *pgStore) GetNotifications(ctx context.Context, userID string, limit int) ([]schema.Notification, error) {
	var notifications []schema.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	return notifications, nil
}

// =============================================================================
// Job locks and run ledger
// =============================================================================

// AcquireJobLock takes the lease on name for ttl.
// The upsert only overwrites an expired lease, so zero affected rows means another owner holds it.
func (s *pgStore) AcquireJobLock(ctx context.Context, name string, owner string, ttl time.Duration) (bool, error) {
	result := s.db.WithContext(ctx).Exec(`
		INSERT INTO job_locks (name, owner, locked_until, acquired_at)
		VALUES (?, ?, now() + make_interval(secs => ?), now())
		ON CONFLICT (name) DO UPDATE
		SET owner = EXCLUDED.owner,
			locked_until = EXCLUDED.locked_until,
			acquired_at = EXCLUDED.acquired_at
		WHERE job_locks.locked_until < now()`,
		name, owner, ttl.Seconds())
	if result.Error != nil {
		return false, fmt.Errorf("failed to acquire job lock: %w", result.Error)
	}

	return result.RowsAffected == 1, nil
}

// ReleaseJobLock drops the lease on name if owner still holds it
func (s *pgStore) ReleaseJobLock(ctx context.Context, name string, owner string) error {
	err := s.db.WithContext(ctx).
		Where("name = ? AND owner = ?", name, owner).
		Delete(&schema.JobLock{}).Error
	if err != nil {
		return fmt.Errorf("failed to release job lock: %w", err)
	}

	return nil
}

// CreateJobRun records the start of a job run
func (s *pgStore) CreateJobRun(ctx context.Context, run *schema.JobRun) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to create job run: %w", err)
	}

	return nil
}

// FinishJobRun records the outcome of a job run
func (s *pgStore) FinishJobRun(ctx context.Context, input FinishJobRunInput) error {
	err := s.db.WithContext(ctx).
		Model(&schema.JobRun{}).
		Where("id = ?", input.ID).
		Updates(map[string]interface{}{
			"status":      input.Status,
			"success":     input.Stats.Success,
			"skipped":     input.Stats.Skipped,
			"errors":      input.Stats.Errors,
			"requests":    input.Stats.Requests,
			"error":       input.Error,
			"finished_at": input.FinishedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to finish job run: %w", err)
	}

	return nil
}

// GetRecentJobRuns returns the latest runs of a job, newest first
func (s *pgStore) GetRecentJobRuns(ctx context.Context, jobName string, limit int) ([]schema.JobRun, error) {
	var runs []schema.JobRun
	err := s.db.WithContext(ctx).
		Where("job_name = ?", jobName).
		Order("started_at DESC, id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get job runs: %w", err)
	}

	return runs, nil
}

// =============================================================================
// Helpers
// =============================================================================

// getTransactions loads the transactions of a holding in replay order
func getTransactions(db *gorm.DB, userCoinID int64) ([]schema.UserCoinTransaction, error) {
	var txs []schema.UserCoinTransaction
	err := db.Where("user_coin_id = ?", userCoinID).
		Order("date ASC, id ASC").
		Find(&txs).Error
	return txs, err
}

// applyRecompute replays the holding's transactions and stores the aggregate
func applyRecompute(tx *gorm.DB, holding *schema.UserCoin, recompute RecomputeFunc) error {
	txs, err := getTransactions(tx, holding.ID)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	totals := recompute(txs)
	now := time.Now()

	if err := tx.Model(&schema.UserCoin{}).
		Where("id = ?", holding.ID).
		Updates(map[string]interface{}{
			"total_quantity": totals.TotalQuantity,
			"total_cost":     totals.TotalCost,
			"average_price":  totals.AveragePrice,
			"updated_at":     now,
		}).Error; err != nil {
		return fmt.Errorf("failed to update user coin aggregate: %w", err)
	}

	holding.TotalQuantity = totals.TotalQuantity
	holding.TotalCost = totals.TotalCost
	holding.AveragePrice = totals.AveragePrice
	holding.UpdatedAt = now
	return nil
}

// marshalJSON encodes v for a jsonb column; nil slices are stored as NULL
func marshalJSON[T any](v []T) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
