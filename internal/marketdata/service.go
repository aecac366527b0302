package marketdata

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/config"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coinmarketcap"
	"github.com/coinfolio/coinfolio-sync/internal/providers/newsapi"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
	"github.com/coinfolio/coinfolio-sync/internal/types"
)

const (
	defaultNewsQuery    = "crypto"
	defaultNewsPageSize = 30
)

// MarketChart is one duration bucket of a coin's price series
type MarketChart struct {
	CoinID    string
	Days      domain.ChartDays
	Prices    [][]float64
	UpdatedAt *time.Time
}

// Config holds the cache windows and the news feed query
type Config struct {
	Staleness    config.StalenessConfig
	NewsQuery    string
	NewsPageSize int
}

// Service serves market data from the database cache, refreshing stale rows from upstream first.
// Reads never fail because of an upstream error: the last cached row, stale or not, is served instead,
// and an empty value when nothing was ever cached. Only database read errors are returned.
//
//go:generate mockgen -source=service.go -destination=../mocks/marketdata_service.go -package=mocks -mock_names=Service=MockMarketDataService
type Service interface {
	// GetCoinData returns a coin with its display metadata
	GetCoinData(ctx context.Context, coinID string) (*schema.Coin, error)
	// GetMarketChart returns one bucket of a coin's price series.
	// It returns domain.ErrUnknownChartDuration for a bucket that is not stored.
	GetMarketChart(ctx context.Context, coinID string, days domain.ChartDays) (*MarketChart, error)
	// GetUserCoins returns a user's holdings with up to date coin rows
	GetUserCoins(ctx context.Context, userID string) ([]schema.UserCoin, error)
	// GetExchangeRate returns the EUR and UAH rates per USD
	GetExchangeRate(ctx context.Context) (*schema.ExchangeRate, error)
	// GetTrending returns the trending coins snapshot
	GetTrending(ctx context.Context) ([]schema.TrendingCoin, error)
	// GetCategories returns the coin categories snapshot
	GetCategories(ctx context.Context) ([]schema.Category, error)
	// GetNews returns the cached news feed
	GetNews(ctx context.Context) ([]schema.NewsArticle, error)
	// GetGlobalMetrics returns the market-wide totals and dominance figures
	GetGlobalMetrics(ctx context.Context) (*schema.GlobalMetrics, error)
}

type service struct {
	store         store.Store
	coingecko     coingecko.Client
	coinmarketcap coinmarketcap.Client
	newsapi       newsapi.Client
	clock         adapter.Clock
	json          adapter.JSON
	config        Config
}

// NewService creates a new market data service.
// A nil coinmarketcap or newsapi client serves the corresponding cache without refreshing it.
func NewService(
	st store.Store,
	cg coingecko.Client,
	cmc coinmarketcap.Client,
	news newsapi.Client,
	clock adapter.Clock,
	json adapter.JSON,
	cfg Config,
) Service {
	if cfg.NewsQuery == "" {
		cfg.NewsQuery = defaultNewsQuery
	}
	if cfg.NewsPageSize <= 0 {
		cfg.NewsPageSize = defaultNewsPageSize
	}
	return &service{
		store:         st,
		coingecko:     cg,
		coinmarketcap: cmc,
		newsapi:       news,
		clock:         clock,
		json:          json,
		config:        cfg,
	}
}

// =============================================================================
// Coins
// =============================================================================

func (s *service) GetCoinData(ctx context.Context, coinID string) (*schema.Coin, error) {
	cached, err := s.store.GetCoin(ctx, coinID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if cached != nil && domain.IsFresh(now, cached.UpdatedAt, s.config.Staleness.CoinData) {
		return cached, nil
	}

	detail, err := s.coingecko.GetCoin(ctx, coinID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to refresh coin, serving cache", zap.String("coin_id", coinID), zap.Error(err))
		if cached != nil {
			return cached, nil
		}
		return emptyCoin(coinID), nil
	}

	input := types.CoinDetailToUpsertInput(detail)
	if input.ID == "" {
		input.ID = coinID
	}

	// Metadata map and market row are written together or not at all
	if err := s.store.UpsertCoins(ctx, []store.UpsertCoinInput{input}); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to cache coin: %w", err), zap.String("coin_id", coinID))
	}

	return s.coinFromInput(input, now), nil
}

// GetUserCoins refreshes the stale coins of the holdings with one markets request per MaxPerPage ids
func (s *service) GetUserCoins(ctx context.Context, userID string) ([]schema.UserCoin, error) {
	holdings, err := s.store.GetUserCoins(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	var staleIDs []string
	for _, holding := range holdings {
		if holding.Coin == nil || !domain.IsFresh(now, holding.Coin.UpdatedAt, s.config.Staleness.UserCoinList) {
			staleIDs = append(staleIDs, holding.CoinID)
		}
	}
	if len(staleIDs) == 0 {
		return holdings, nil
	}

	var inputs []store.UpsertCoinInput
	fetched := make(map[string]*schema.Coin, len(staleIDs))
	for chunk := range slices.Chunk(staleIDs, coingecko.MaxPerPage) {
		markets, err := s.coingecko.GetCoinsMarkets(ctx, coingecko.MarketsQuery{
			IDs:       chunk,
			Page:      1,
			PerPage:   len(chunk),
			Sparkline: true,
		})
		if err != nil {
			logger.WarnCtx(ctx, "Failed to refresh user coins, serving cache",
				zap.String("user_id", userID),
				zap.Int("stale", len(chunk)),
				zap.Error(err),
			)
			continue
		}

		for _, market := range markets {
			if market.ID == "" {
				continue
			}
			input := types.MarketCoinToUpsertInput(market)
			inputs = append(inputs, input)
			fetched[input.ID] = s.coinFromInput(input, now)
		}
	}
	if len(inputs) == 0 {
		return holdings, nil
	}

	if err := s.store.UpsertCoins(ctx, inputs); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to cache user coins: %w", err), zap.String("user_id", userID))
	}

	for i := range holdings {
		coin, ok := fetched[holdings[i].CoinID]
		if !ok {
			continue
		}
		holdings[i].Coin = coin
		holdings[i].Info = coin.Info
	}

	return holdings, nil
}

// coinFromInput builds the row an upsert of input writes, so fresh data is served without re-querying
func (s *service) coinFromInput(input store.UpsertCoinInput, now time.Time) *schema.Coin {
	coin := &schema.Coin{
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
		LastUpdated:              input.LastUpdated,
		UpdatedAt:                now,
		Info: &schema.CoinsListIDMap{
			ID:        input.ID,
			Symbol:    input.Symbol,
			Name:      input.Name,
			Image:     input.Image,
			UpdatedAt: now,
		},
	}
	if input.SparklineIn7d != nil {
		if sparkline, err := s.json.Marshal(input.SparklineIn7d); err == nil {
			coin.SparklineIn7d = sparkline
		}
	}
	return coin
}

func emptyCoin(coinID string) *schema.Coin {
	return &schema.Coin{
		ID:   coinID,
		Info: &schema.CoinsListIDMap{ID: coinID},
	}
}

// =============================================================================
// Market charts
// =============================================================================

func (s *service) GetMarketChart(ctx context.Context, coinID string, days domain.ChartDays) (*MarketChart, error) {
	window, err := s.config.Staleness.MarketChart(days)
	if err != nil {
		return nil, err
	}

	cached, err := s.store.GetMarketChart(ctx, coinID)
	if err != nil {
		return nil, err
	}

	result := &MarketChart{CoinID: coinID, Days: days, Prices: [][]float64{}}
	if cached != nil {
		series, updatedAt, err := cached.Bucket(days)
		if err != nil {
			return nil, err
		}
		if len(series) > 0 {
			if err := s.json.Unmarshal(series, &result.Prices); err != nil {
				// A corrupt bucket is treated as missing
				logger.WarnCtx(ctx, "Failed to decode cached market chart", zap.String("coin_id", coinID), zap.Error(err))
				result.Prices = [][]float64{}
			} else {
				result.UpdatedAt = updatedAt
			}
		}
	}

	now := s.clock.Now()
	if domain.IsFreshPtr(now, result.UpdatedAt, window) {
		return result, nil
	}

	chart, err := s.coingecko.GetMarketChart(ctx, coinID, days)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to refresh market chart, serving cache",
			zap.String("coin_id", coinID),
			zap.Stringer("days", days),
			zap.Error(err),
		)
		return result, nil
	}

	if err := s.store.UpsertMarketChart(ctx, coinID, days, chart.Prices, now); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to cache market chart: %w", err), zap.String("coin_id", coinID))
	}

	return &MarketChart{CoinID: coinID, Days: days, Prices: chart.Prices, UpdatedAt: &now}, nil
}

// =============================================================================
// Upstream snapshots
// =============================================================================

// GetExchangeRate serves the singleton written by the exchange rate job
func (s *service) GetExchangeRate(ctx context.Context) (*schema.ExchangeRate, error) {
	rate, err := s.store.GetExchangeRate(ctx)
	if err != nil {
		return nil, err
	}
	if rate == nil {
		return &schema.ExchangeRate{ID: domain.EXCHANGE_RATE_ID}, nil
	}
	return rate, nil
}

func (s *service) GetTrending(ctx context.Context) ([]schema.TrendingCoin, error) {
	coins, err := s.store.GetTrendingCoins(ctx)
	if err != nil {
		return nil, err
	}
	if coins == nil {
		coins = []schema.TrendingCoin{}
	}
	return coins, nil
}

func (s *service) GetCategories(ctx context.Context) ([]schema.Category, error) {
	categories, err := s.store.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []schema.Category{}
	}
	return categories, nil
}

// GetNews replaces the whole feed once the newest cached article is older than the news window
func (s *service) GetNews(ctx context.Context) ([]schema.NewsArticle, error) {
	cached, err := s.store.GetNewsArticles(ctx, s.config.NewsPageSize)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		cached = []schema.NewsArticle{}
	}

	now := s.clock.Now()
	var lastRefresh time.Time
	for _, article := range cached {
		if article.UpdatedAt.After(lastRefresh) {
			lastRefresh = article.UpdatedAt
		}
	}
	if s.newsapi == nil || domain.IsFresh(now, lastRefresh, s.config.Staleness.News) {
		return cached, nil
	}

	articles, err := s.newsapi.GetEverything(ctx, s.config.NewsQuery, s.config.NewsPageSize)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to refresh news, serving cache", zap.Error(err))
		return cached, nil
	}

	rows := make([]schema.NewsArticle, 0, len(articles))
	for _, article := range articles {
		row := types.NewsArticleToSchema(article)
		row.UpdatedAt = now
		rows = append(rows, row)
	}

	if err := s.store.ReplaceNewsArticles(ctx, rows); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to cache news: %w", err))
	}

	return rows, nil
}

func (s *service) GetGlobalMetrics(ctx context.Context) (*schema.GlobalMetrics, error) {
	cached, err := s.store.GetGlobalMetrics(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if cached != nil && (s.coinmarketcap == nil || domain.IsFresh(now, cached.UpdatedAt, s.config.Staleness.GlobalMetrics)) {
		return cached, nil
	}
	if s.coinmarketcap == nil {
		return &schema.GlobalMetrics{ID: domain.GLOBAL_METRICS_ID}, nil
	}

	metrics, err := s.coinmarketcap.GetGlobalMetrics(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to refresh global metrics, serving cache", zap.Error(err))
		if cached != nil {
			return cached, nil
		}
		return &schema.GlobalMetrics{ID: domain.GLOBAL_METRICS_ID}, nil
	}

	usd := metrics.USD()
	row := schema.GlobalMetrics{
		ID:                     domain.GLOBAL_METRICS_ID,
		TotalMarketCap:         usd.TotalMarketCap,
		TotalVolume24h:         usd.TotalVolume24h,
		BTCDominance:           metrics.BTCDominance,
		ETHDominance:           metrics.ETHDominance,
		ActiveCryptocurrencies: metrics.ActiveCryptocurrencies,
		UpdatedAt:              now,
	}
	if err := s.store.SaveGlobalMetrics(ctx, row); err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to cache global metrics: %w", err))
	}

	return &row, nil
}
