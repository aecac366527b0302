package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio-sync/internal/marketdata"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// CoinResponse represents a cached coin with its display metadata
type CoinResponse struct {
	ID                       string              `json:"id"`
	Symbol                   string              `json:"symbol"`
	Name                     string              `json:"name"`
	Image                    string              `json:"image"`
	CurrentPrice             decimal.NullDecimal `json:"current_price"`
	MarketCap                decimal.Decimal     `json:"market_cap"`
	MarketCapRank            *int                `json:"market_cap_rank"`
	TotalVolume              decimal.Decimal     `json:"total_volume"`
	High24h                  decimal.Decimal     `json:"high_24h"`
	Low24h                   decimal.Decimal     `json:"low_24h"`
	CirculatingSupply        decimal.Decimal     `json:"circulating_supply"`
	PriceChangePercentage24h decimal.Decimal     `json:"price_change_percentage_24h"`
	PriceChangePercentage7d  decimal.Decimal     `json:"price_change_percentage_7d"`
	PriceChangePercentage30d decimal.Decimal     `json:"price_change_percentage_30d"`
	SparklineIn7d            []float64           `json:"sparkline_in_7d"`
	LastUpdated              *time.Time          `json:"last_updated"`
	UpdatedAt                *time.Time          `json:"updated_at"`
}

// MarketChartResponse represents one duration bucket of a coin's price series
type MarketChartResponse struct {
	CoinID    string      `json:"coin_id"`
	Days      int         `json:"days"`
	Prices    [][]float64 `json:"prices"`
	UpdatedAt *time.Time  `json:"updated_at"`
}

// MapCoinToDTO maps a coin row to its response. A coin that was never cached has no updated_at.
func MapCoinToDTO(coin *schema.Coin) *CoinResponse {
	resp := &CoinResponse{
		ID:                       coin.ID,
		CurrentPrice:             coin.CurrentPrice,
		MarketCap:                coin.MarketCap,
		MarketCapRank:            coin.MarketCapRank,
		TotalVolume:              coin.TotalVolume,
		High24h:                  coin.High24h,
		Low24h:                   coin.Low24h,
		CirculatingSupply:        coin.CirculatingSupply,
		PriceChangePercentage24h: coin.PriceChangePercentage24h,
		PriceChangePercentage7d:  coin.PriceChangePercentage7d,
		PriceChangePercentage30d: coin.PriceChangePercentage30d,
		SparklineIn7d:            []float64{},
		LastUpdated:              coin.LastUpdated,
	}

	if coin.Info != nil {
		resp.Symbol = coin.Info.Symbol
		resp.Name = coin.Info.Name
		resp.Image = coin.Info.Image
	}
	if !coin.UpdatedAt.IsZero() {
		updatedAt := coin.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	if len(coin.SparklineIn7d) > 0 {
		var sparkline []float64
		if err := json.Unmarshal(coin.SparklineIn7d, &sparkline); err == nil {
			resp.SparklineIn7d = sparkline
		}
	}

	return resp
}

// MapMarketChartToDTO maps a market chart bucket to its response
func MapMarketChartToDTO(chart *marketdata.MarketChart) *MarketChartResponse {
	prices := chart.Prices
	if prices == nil {
		prices = [][]float64{}
	}
	return &MarketChartResponse{
		CoinID:    chart.CoinID,
		Days:      int(chart.Days),
		Prices:    prices,
		UpdatedAt: chart.UpdatedAt,
	}
}
