package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// ExchangeRateResponse represents the fiat rates per USD
type ExchangeRateResponse struct {
	EUR       decimal.Decimal `json:"eur"`
	UAH       decimal.Decimal `json:"uah"`
	UpdatedAt *time.Time      `json:"updated_at"`
}

// TrendingCoinResponse represents one trending coin
type TrendingCoinResponse struct {
	CoinID         string          `json:"coin_id"`
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol"`
	Thumb          string          `json:"thumb"`
	MarketCapRank  *int            `json:"market_cap_rank"`
	Score          int             `json:"score"`
	Price          decimal.Decimal `json:"price"`
	PriceChange24h decimal.Decimal `json:"price_change_24h"`
}

// CategoryResponse represents one coin category
type CategoryResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	MarketCap          decimal.Decimal `json:"market_cap"`
	MarketCapChange24h decimal.Decimal `json:"market_cap_change_24h"`
	Volume24h          decimal.Decimal `json:"volume_24h"`
	Top3Coins          []string        `json:"top_3_coins"`
}

// NewsArticleResponse represents one news article
type NewsArticleResponse struct {
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Source      string     `json:"source"`
	ImageURL    string     `json:"image_url"`
	PublishedAt *time.Time `json:"published_at"`
}

// GlobalMetricsResponse represents the market-wide figures
type GlobalMetricsResponse struct {
	TotalMarketCap         decimal.Decimal `json:"total_market_cap"`
	TotalVolume24h         decimal.Decimal `json:"total_volume_24h"`
	BTCDominance           decimal.Decimal `json:"btc_dominance"`
	ETHDominance           decimal.Decimal `json:"eth_dominance"`
	ActiveCryptocurrencies int             `json:"active_cryptocurrencies"`
	UpdatedAt              *time.Time      `json:"updated_at"`
}

// ListResponse wraps a list of items
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// MapExchangeRateToDTO maps the exchange rate singleton to its response
func MapExchangeRateToDTO(rate *schema.ExchangeRate) *ExchangeRateResponse {
	return &ExchangeRateResponse{
		EUR:       rate.EUR,
		UAH:       rate.UAH,
		UpdatedAt: optionalTime(rate.UpdatedAt),
	}
}

// MapTrendingCoinsToDTO maps the trending snapshot to its response
func MapTrendingCoinsToDTO(coins []schema.TrendingCoin) []TrendingCoinResponse {
	items := make([]TrendingCoinResponse, 0, len(coins))
	for _, coin := range coins {
		items = append(items, TrendingCoinResponse{
			CoinID:         coin.CoinID,
			Name:           coin.Name,
			Symbol:         coin.Symbol,
			Thumb:          coin.Thumb,
			MarketCapRank:  coin.MarketCapRank,
			Score:          coin.Score,
			Price:          coin.Price,
			PriceChange24h: coin.PriceChange24h,
		})
	}
	return items
}

// MapCategoriesToDTO maps the category snapshot to its response
func MapCategoriesToDTO(categories []schema.Category) []CategoryResponse {
	items := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		top3 := []string{}
		if len(category.Top3Coins) > 0 {
			_ = json.Unmarshal(category.Top3Coins, &top3)
			if top3 == nil {
				top3 = []string{}
			}
		}
		items = append(items, CategoryResponse{
			ID:                 category.ID,
			Name:               category.Name,
			MarketCap:          category.MarketCap,
			MarketCapChange24h: category.MarketCapChange24h,
			Volume24h:          category.Volume24h,
			Top3Coins:          top3,
		})
	}
	return items
}

// MapNewsArticlesToDTO maps the cached news feed to its response
func MapNewsArticlesToDTO(articles []schema.NewsArticle) []NewsArticleResponse {
	items := make([]NewsArticleResponse, 0, len(articles))
	for _, article := range articles {
		items = append(items, NewsArticleResponse{
			URL:         article.URL,
			Title:       article.Title,
			Description: article.Description,
			Source:      article.Source,
			ImageURL:    article.ImageURL,
			PublishedAt: article.PublishedAt,
		})
	}
	return items
}

// MapGlobalMetricsToDTO maps the global metrics singleton to its response
func MapGlobalMetricsToDTO(metrics *schema.GlobalMetrics) *GlobalMetricsResponse {
	return &GlobalMetricsResponse{
		TotalMarketCap:         metrics.TotalMarketCap,
		TotalVolume24h:         metrics.TotalVolume24h,
		BTCDominance:           metrics.BTCDominance,
		ETHDominance:           metrics.ETHDominance,
		ActiveCryptocurrencies: metrics.ActiveCryptocurrencies,
		UpdatedAt:              optionalTime(metrics.UpdatedAt),
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
