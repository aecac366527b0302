package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ExchangeRate represents the exchange_rates table - a singleton row of fiat rates per USD
type ExchangeRate struct {
	ID        int             `gorm:"column:id;primaryKey"`
	EUR       decimal.Decimal `gorm:"column:eur;not null;type:numeric"`
	UAH       decimal.Decimal `gorm:"column:uah;not null;type:numeric"`
	UpdatedAt time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ExchangeRate model
func (ExchangeRate) TableName() string {
	return "exchange_rates"
}

// Category represents the categories table - replaced wholesale on every sync
type Category struct {
	ID                 string          `gorm:"column:id;primaryKey;type:text"`
	Name               string          `gorm:"column:name;not null;type:text"`
	MarketCap          decimal.Decimal `gorm:"column:market_cap;not null;type:numeric;default:0"`
	MarketCapChange24h decimal.Decimal `gorm:"column:market_cap_change_24h;not null;type:numeric;default:0"`
	Volume24h          decimal.Decimal `gorm:"column:volume_24h;not null;type:numeric;default:0"`
	// Top3Coins holds the image URLs of the three largest coins, JSON encoded
	Top3Coins datatypes.JSON `gorm:"column:top_3_coins;type:jsonb"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// TrendingCoin represents the trending_coins table - replaced wholesale on every sync
type TrendingCoin struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	CoinID        string          `gorm:"column:coin_id;not null;type:text"`
	Name          string          `gorm:"column:name;not null;type:text"`
	Symbol        string          `gorm:"column:symbol;not null;type:text"`
	Thumb         string          `gorm:"column:thumb;not null;type:text;default:''"`
	MarketCapRank *int            `gorm:"column:market_cap_rank"`
	Score         int             `gorm:"column:score;not null"`
	Price         decimal.Decimal `gorm:"column:price;not null;type:numeric;default:0"`
	// PriceChange24h is the 24h change percentage in USD
	PriceChange24h decimal.Decimal `gorm:"column:price_change_24h;not null;type:numeric;default:0"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TrendingCoin model
func (TrendingCoin) TableName() string {
	return "trending_coins"
}

// NewsArticle represents the news_articles table - the cached news feed
type NewsArticle struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement"`
	URL         string     `gorm:"column:url;not null;uniqueIndex;type:text"`
	Title       string     `gorm:"column:title;not null;type:text"`
	Description string     `gorm:"column:description;not null;type:text;default:''"`
	Source      string     `gorm:"column:source;not null;type:text;default:''"`
	ImageURL    string     `gorm:"column:image_url;not null;type:text;default:''"`
	PublishedAt *time.Time `gorm:"column:published_at;type:timestamptz"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the NewsArticle model
func (NewsArticle) TableName() string {
	return "news_articles"
}

// GlobalMetrics represents the global_metrics table - a singleton row of market-wide figures
type GlobalMetrics struct {
	ID                     int             `gorm:"column:id;primaryKey"`
	TotalMarketCap         decimal.Decimal `gorm:"column:total_market_cap;not null;type:numeric"`
	TotalVolume24h         decimal.Decimal `gorm:"column:total_volume_24h;not null;type:numeric"`
	BTCDominance           decimal.Decimal `gorm:"column:btc_dominance;not null;type:numeric"`
	ETHDominance           decimal.Decimal `gorm:"column:eth_dominance;not null;type:numeric"`
	ActiveCryptocurrencies int             `gorm:"column:active_cryptocurrencies;not null;default:0"`
	UpdatedAt              time.Time       `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the GlobalMetrics model
func (GlobalMetrics) TableName() string {
	return "global_metrics"
}
