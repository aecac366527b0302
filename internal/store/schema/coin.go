package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CoinsListIDMap represents the coins_list_id_map table - display metadata of every tracked coin
type CoinsListIDMap struct {
	// ID is the stable upstream coin identifier (e.g. "bitcoin")
	ID     string `gorm:"column:id;primaryKey;type:text"`
	Symbol string `gorm:"column:symbol;not null;type:text"`
	Name   string `gorm:"column:name;not null;type:text"`
	// Image is the upstream logo URL
	Image     string    `gorm:"column:image;not null;type:text;default:''"`
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the CoinsListIDMap model
func (CoinsListIDMap) TableName() string {
	return "coins_list_id_map"
}

// Coin represents the coins table - the latest market snapshot of a coin
type Coin struct {
	ID string `gorm:"column:id;primaryKey;type:text"`
	// CurrentPrice is null until the first market sync of the coin
	CurrentPrice             decimal.NullDecimal `gorm:"column:current_price;type:numeric"`
	MarketCap                decimal.Decimal     `gorm:"column:market_cap;not null;type:numeric;default:0"`
	MarketCapRank            *int                `gorm:"column:market_cap_rank"`
	TotalVolume              decimal.Decimal     `gorm:"column:total_volume;not null;type:numeric;default:0"`
	High24h                  decimal.Decimal     `gorm:"column:high_24h;not null;type:numeric;default:0"`
	Low24h                   decimal.Decimal     `gorm:"column:low_24h;not null;type:numeric;default:0"`
	CirculatingSupply        decimal.Decimal     `gorm:"column:circulating_supply;not null;type:numeric;default:0"`
	PriceChangePercentage24h decimal.Decimal     `gorm:"column:price_change_percentage_24h;not null;type:numeric;default:0"`
	PriceChangePercentage7d  decimal.Decimal     `gorm:"column:price_change_percentage_7d;not null;type:numeric;default:0"`
	PriceChangePercentage30d decimal.Decimal     `gorm:"column:price_change_percentage_30d;not null;type:numeric;default:0"`
	// SparklineIn7d is the 7-day price array, JSON encoded
	SparklineIn7d datatypes.JSON `gorm:"column:sparkline_in_7d;type:jsonb"`
	// LastUpdated is the upstream timestamp of the snapshot
	LastUpdated *time.Time `gorm:"column:last_updated;type:timestamptz"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the staleness timestamp of the cached row
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Info *CoinsListIDMap `gorm:"foreignKey:ID;references:ID"`
}

// TableName specifies the table name for the Coin model
func (Coin) TableName() string {
	return "coins"
}
