package schema

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/coinfolio/coinfolio-sync/internal/domain"
)

// MarketChart represents the market_charts table - historical price series of a coin, one column pair per bucket
type MarketChart struct {
	CoinID string `gorm:"column:coin_id;primaryKey;type:text"`
	// PricesXd holds the [timestamp_ms, price] pairs of the bucket, JSON encoded
	Prices1d     datatypes.JSON `gorm:"column:prices_1d;type:jsonb"`
	UpdatedAt1d  *time.Time     `gorm:"column:updated_at_1d;type:timestamptz"`
	Prices7d     datatypes.JSON `gorm:"column:prices_7d;type:jsonb"`
	UpdatedAt7d  *time.Time     `gorm:"column:updated_at_7d;type:timestamptz"`
	Prices30d    datatypes.JSON `gorm:"column:prices_30d;type:jsonb"`
	UpdatedAt30d *time.Time     `gorm:"column:updated_at_30d;type:timestamptz"`
	Prices365d   datatypes.JSON `gorm:"column:prices_365d;type:jsonb"`
	UpdatedAt365 *time.Time     `gorm:"column:updated_at_365d;type:timestamptz"`
}

// TableName specifies the table name for the MarketChart model
func (MarketChart) TableName() string {
	return "market_charts"
}

// MarketChartColumns returns the prices and updated-at column names of a bucket
func MarketChartColumns(days domain.ChartDays) (prices string, updatedAt string, err error) {
	if !days.Valid() {
		return "", "", fmt.Errorf("%w: %d", domain.ErrUnknownChartDuration, days)
	}
	return fmt.Sprintf("prices_%dd", days), fmt.Sprintf("updated_at_%dd", days), nil
}

// Bucket returns the series and updated-at timestamp of a bucket
func (m *MarketChart) Bucket(days domain.ChartDays) (datatypes.JSON, *time.Time, error) {
	switch days {
	case domain.ChartDays1:
		return m.Prices1d, m.UpdatedAt1d, nil
	case domain.ChartDays7:
		return m.Prices7d, m.UpdatedAt7d, nil
	case domain.ChartDays30:
		return m.Prices30d, m.UpdatedAt30d, nil
	case domain.ChartDays365:
		return m.Prices365d, m.UpdatedAt365, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", domain.ErrUnknownChartDuration, days)
	}
}

// SetBucket replaces the series and updated-at timestamp of a bucket
func (m *MarketChart) SetBucket(days domain.ChartDays, prices datatypes.JSON, updatedAt time.Time) error {
	switch days {
	case domain.ChartDays1:
		m.Prices1d, m.UpdatedAt1d = prices, &updatedAt
	case domain.ChartDays7:
		m.Prices7d, m.UpdatedAt7d = prices, &updatedAt
	case domain.ChartDays30:
		m.Prices30d, m.UpdatedAt30d = prices, &updatedAt
	case domain.ChartDays365:
		m.Prices365d, m.UpdatedAt365 = prices, &updatedAt
	default:
		return fmt.Errorf("%w: %d", domain.ErrUnknownChartDuration, days)
	}
	return nil
}
