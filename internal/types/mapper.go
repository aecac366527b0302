package types

import (
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	"github.com/coinfolio/coinfolio-sync/internal/providers/newsapi"
	"github.com/coinfolio/coinfolio-sync/internal/store"
	"github.com/coinfolio/coinfolio-sync/internal/store/schema"
)

// MarketCoinToUpsertInput converts a /coins/markets row to a coin upsert
func MarketCoinToUpsertInput(c coingecko.MarketCoin) store.UpsertCoinInput {
	input := store.UpsertCoinInput{
		ID:                       c.ID,
		Symbol:                   c.Symbol,
		Name:                     c.Name,
		Image:                    c.Image,
		CurrentPrice:             c.CurrentPrice,
		MarketCap:                c.MarketCap,
		MarketCapRank:            c.MarketCapRank,
		TotalVolume:              c.TotalVolume,
		High24h:                  c.High24h,
		Low24h:                   c.Low24h,
		CirculatingSupply:        c.CirculatingSupply,
		PriceChangePercentage24h: c.PriceChangePercentage24h,
		PriceChangePercentage7d:  c.PriceChangePercentage7dInCurrency,
		PriceChangePercentage30d: c.PriceChangePercentage30dInCurrency,
		LastUpdated:              ParseTimestamp(c.LastUpdated),
	}
	if c.SparklineIn7d != nil {
		input.SparklineIn7d = c.SparklineIn7d.Price
	}
	return input
}

// CoinDetailToUpsertInput converts a /coins/{id} response to a coin upsert using its USD figures
func CoinDetailToUpsertInput(c *coingecko.CoinDetail) store.UpsertCoinInput {
	md := c.MarketData
	input := store.UpsertCoinInput{
		ID:                       c.ID,
		Symbol:                   c.Symbol,
		Name:                     c.Name,
		Image:                    c.Image.Large,
		CurrentPrice:             NullDecimalFromMap(md.CurrentPrice, domain.VS_CURRENCY),
		MarketCap:                md.MarketCap[domain.VS_CURRENCY],
		MarketCapRank:            c.MarketCapRank,
		TotalVolume:              md.TotalVolume[domain.VS_CURRENCY],
		High24h:                  md.High24h[domain.VS_CURRENCY],
		Low24h:                   md.Low24h[domain.VS_CURRENCY],
		CirculatingSupply:        md.CirculatingSupply,
		PriceChangePercentage24h: md.PriceChangePercentage24h,
		PriceChangePercentage7d:  md.PriceChangePercentage7d,
		PriceChangePercentage30d: md.PriceChangePercentage30d,
		LastUpdated:              ParseTimestamp(c.LastUpdated),
	}
	if md.Sparkline7d != nil {
		input.SparklineIn7d = md.Sparkline7d.Price
	}
	return input
}

// TrendingCoinToSchema converts a trending search coin to a snapshot row. UpdatedAt is left for the caller.
func TrendingCoinToSchema(c coingecko.TrendingCoin) schema.TrendingCoin {
	row := schema.TrendingCoin{
		CoinID:        c.ID,
		Name:          c.Name,
		Symbol:        c.Symbol,
		Thumb:         c.Thumb,
		MarketCapRank: c.MarketCapRank,
		Score:         c.Score,
	}
	if c.Data != nil {
		row.Price = c.Data.Price
		row.PriceChange24h = c.Data.PriceChangePercentage24h[domain.VS_CURRENCY]
	}
	return row
}

// NewsArticleToSchema converts a NewsAPI article to a cache row. UpdatedAt is left for the caller.
func NewsArticleToSchema(a newsapi.Article) schema.NewsArticle {
	return schema.NewsArticle{
		URL:         a.URL,
		Title:       a.Title,
		Description: SafeString(a.Description),
		Source:      a.Source.Name,
		ImageURL:    SafeString(a.URLToImage),
		PublishedAt: a.PublishedAt,
	}
}
