package coingecko

import (
	"github.com/shopspring/decimal"
)

// MarketCoin is one row of /coins/markets
type MarketCoin struct {
	ID                                 string              `json:"id"`
	Symbol                             string              `json:"symbol"`
	Name                               string              `json:"name"`
	Image                              string              `json:"image"`
	CurrentPrice                       decimal.NullDecimal `json:"current_price"`
	MarketCap                          decimal.Decimal     `json:"market_cap"`
	MarketCapRank                      *int                `json:"market_cap_rank"`
	TotalVolume                        decimal.Decimal     `json:"total_volume"`
	High24h                            decimal.Decimal     `json:"high_24h"`
	Low24h                             decimal.Decimal     `json:"low_24h"`
	CirculatingSupply                  decimal.Decimal     `json:"circulating_supply"`
	PriceChangePercentage24h           decimal.Decimal     `json:"price_change_percentage_24h"`
	PriceChangePercentage7dInCurrency  decimal.Decimal     `json:"price_change_percentage_7d_in_currency"`
	PriceChangePercentage30dInCurrency decimal.Decimal     `json:"price_change_percentage_30d_in_currency"`
	SparklineIn7d                      *Sparkline          `json:"sparkline_in_7d"`
	LastUpdated                        string              `json:"last_updated"`
}

// Sparkline is the 7 day hourly price series attached to market rows
type Sparkline struct {
	Price []float64 `json:"price"`
}

// MaxPerPage is the largest page /coins/markets serves
const MaxPerPage = 250

// MarketsQuery selects rows of /coins/markets
type MarketsQuery struct {
	// IDs restricts the result to the given coins; empty means the whole market ordered by market cap
	IDs       []string
	Page      int
	PerPage   int
	Sparkline bool
}

// CoinDetail is the subset of /coins/{id} that is cached
type CoinDetail struct {
	ID            string     `json:"id"`
	Symbol        string     `json:"symbol"`
	Name          string     `json:"name"`
	Image         CoinImage  `json:"image"`
	MarketCapRank *int       `json:"market_cap_rank"`
	MarketData    MarketData `json:"market_data"`
	LastUpdated   string     `json:"last_updated"`
}

// CoinImage holds the logo urls of a coin
type CoinImage struct {
	Thumb string `json:"thumb"`
	Small string `json:"small"`
	Large string `json:"large"`
}

// MarketData is the market block of /coins/{id}; per-currency values are keyed by currency code
type MarketData struct {
	CurrentPrice             map[string]decimal.Decimal `json:"current_price"`
	MarketCap                map[string]decimal.Decimal `json:"market_cap"`
	TotalVolume              map[string]decimal.Decimal `json:"total_volume"`
	High24h                  map[string]decimal.Decimal `json:"high_24h"`
	Low24h                   map[string]decimal.Decimal `json:"low_24h"`
	CirculatingSupply        decimal.Decimal            `json:"circulating_supply"`
	PriceChangePercentage24h decimal.Decimal            `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  decimal.Decimal            `json:"price_change_percentage_7d"`
	PriceChangePercentage30d decimal.Decimal            `json:"price_change_percentage_30d"`
	Sparkline7d              *Sparkline                 `json:"sparkline_7d"`
}

// MarketChart is the response of /coins/{id}/market_chart. Each point is [timestamp_ms, value].
type MarketChart struct {
	Prices       [][]float64 `json:"prices"`
	MarketCaps   [][]float64 `json:"market_caps"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

// ExchangeRates is the response of /exchange_rates. Values are quoted against BTC.
type ExchangeRates struct {
	Rates map[string]ExchangeRate `json:"rates"`
}

// ExchangeRate is one currency of /exchange_rates
type ExchangeRate struct {
	Name  string          `json:"name"`
	Unit  string          `json:"unit"`
	Value decimal.Decimal `json:"value"`
	Type  string          `json:"type"`
}

// TrendingResponse is the response of /search/trending
type TrendingResponse struct {
	Coins []TrendingItem `json:"coins"`
}

// TrendingItem wraps one trending coin
type TrendingItem struct {
	Item TrendingCoin `json:"item"`
}

// TrendingCoin is a coin of the trending search list
type TrendingCoin struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Symbol        string            `json:"symbol"`
	Thumb         string            `json:"thumb"`
	MarketCapRank *int              `json:"market_cap_rank"`
	Score         int               `json:"score"`
	Data          *TrendingCoinData `json:"data"`
}

// TrendingCoinData holds the price block of a trending coin
type TrendingCoinData struct {
	Price                    decimal.Decimal            `json:"price"`
	PriceChangePercentage24h map[string]decimal.Decimal `json:"price_change_percentage_24h"`
}

// Category is one row of /coins/categories
type Category struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	MarketCap          decimal.Decimal `json:"market_cap"`
	MarketCapChange24h decimal.Decimal `json:"market_cap_change_24h"`
	Volume24h          decimal.Decimal `json:"volume_24h"`
	Top3Coins          []string        `json:"top_3_coins"`
}
