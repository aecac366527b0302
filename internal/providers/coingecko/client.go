package coingecko

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/ratelimit"
)

const PROVIDER_NAME = domain.PROVIDER_COINGECKO

const (
	// Keys issued for the pro API are sent in a different header than demo keys
	proAPIHost    = "pro-api.coingecko.com"
	proKeyHeader  = "x-cg-pro-api-key"
	demoKeyHeader = "x-cg-demo-api-key"
)

// Client defines the interface for CoinGecko client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/coingecko_client.go -package=mocks -mock_names=Client=MockCoinGeckoClient
type Client interface {
	// GetCoinsMarkets fetches one page of market rows
	GetCoinsMarkets(ctx context.Context, query MarketsQuery) ([]MarketCoin, error)
	// GetCoin fetches the detail of a single coin
	GetCoin(ctx context.Context, id string) (*CoinDetail, error)
	// GetMarketChart fetches the USD price series of a coin over the given number of days
	GetMarketChart(ctx context.Context, id string, days domain.ChartDays) (*MarketChart, error)
	// GetExchangeRates fetches the BTC-denominated exchange rates
	GetExchangeRates(ctx context.Context) (*ExchangeRates, error)
	// GetTrending fetches the trending search coins
	GetTrending(ctx context.Context) ([]TrendingCoin, error)
	// GetCategories fetches every coin category with market data
	GetCategories(ctx context.Context) ([]Category, error)
}

// CoinGeckoClient implements CoinGecko client
type CoinGeckoClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new CoinGecko client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &CoinGeckoClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         strings.TrimRight(apiURL, "/"),
		apiKey:         apiKey,
		json:           json,
	}
}

// GetCoinsMarkets fetches one page of /coins/markets in USD
func (c *CoinGeckoClient) GetCoinsMarkets(ctx context.Context, query MarketsQuery) ([]MarketCoin, error) {
	params := url.Values{}
	params.Set("vs_currency", domain.VS_CURRENCY)
	params.Set("order", "market_cap_desc")
	params.Set("price_change_percentage", "24h,7d,30d")
	params.Set("sparkline", strconv.FormatBool(query.Sparkline))
	if len(query.IDs) > 0 {
		params.Set("ids", strings.Join(query.IDs, ","))
	}
	if query.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(query.PerPage))
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}

	var coins []MarketCoin
	if err := c.get(ctx, "/coins/markets", params, &coins); err != nil {
		return nil, err
	}

	return coins, nil
}

// GetCoin fetches /coins/{id} without tickers, community or developer data
func (c *CoinGeckoClient) GetCoin(ctx context.Context, id string) (*CoinDetail, error) {
	params := url.Values{}
	params.Set("localization", "false")
	params.Set("tickers", "false")
	params.Set("community_data", "false")
	params.Set("developer_data", "false")
	params.Set("sparkline", "true")

	var coin CoinDetail
	if err := c.get(ctx, "/coins/"+url.PathEscape(id), params, &coin); err != nil {
		return nil, err
	}
	if coin.ID == "" {
		return nil, fmt.Errorf("coin %s: %w", id, domain.ErrEmptyPayload)
	}

	return &coin, nil
}

// GetMarketChart fetches /coins/{id}/market_chart. An empty price series is reported as domain.ErrEmptyPayload.
func (c *CoinGeckoClient) GetMarketChart(ctx context.Context, id string, days domain.ChartDays) (*MarketChart, error) {
	if !days.Valid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownChartDuration, days)
	}

	params := url.Values{}
	params.Set("vs_currency", domain.VS_CURRENCY)
	params.Set("days", days.String())

	var chart MarketChart
	if err := c.get(ctx, "/coins/"+url.PathEscape(id)+"/market_chart", params, &chart); err != nil {
		return nil, err
	}
	if len(chart.Prices) == 0 {
		return nil, fmt.Errorf("market chart %s/%s: %w", id, days, domain.ErrEmptyPayload)
	}
	for _, point := range chart.Prices {
		if len(point) != 2 {
			return nil, fmt.Errorf("market chart %s/%s: point has %d values: %w", id, days, len(point), domain.ErrMalformedPayload)
		}
	}

	return &chart, nil
}

// GetExchangeRates fetches /exchange_rates
func (c *CoinGeckoClient) GetExchangeRates(ctx context.Context) (*ExchangeRates, error) {
	var rates ExchangeRates
	if err := c.get(ctx, "/exchange_rates", nil, &rates); err != nil {
		return nil, err
	}
	if len(rates.Rates) == 0 {
		return nil, fmt.Errorf("exchange rates: %w", domain.ErrEmptyPayload)
	}

	return &rates, nil
}

// GetTrending fetches /search/trending and unwraps the coin items
func (c *CoinGeckoClient) GetTrending(ctx context.Context) ([]TrendingCoin, error) {
	var response TrendingResponse
	if err := c.get(ctx, "/search/trending", nil, &response); err != nil {
		return nil, err
	}
	if len(response.Coins) == 0 {
		return nil, fmt.Errorf("trending: %w", domain.ErrEmptyPayload)
	}

	coins := make([]TrendingCoin, 0, len(response.Coins))
	for _, item := range response.Coins {
		coins = append(coins, item.Item)
	}

	return coins, nil
}

// GetCategories fetches /coins/categories ordered by market cap
func (c *CoinGeckoClient) GetCategories(ctx context.Context) ([]Category, error) {
	params := url.Values{}
	params.Set("order", "market_cap_desc")

	var categories []Category
	if err := c.get(ctx, "/coins/categories", params, &categories); err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("categories: %w", domain.ErrEmptyPayload)
	}

	return categories, nil
}

// get performs a rate-limited GET against path and decodes the body into out
func (c *CoinGeckoClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	requestURL := c.apiURL + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, requestURL, c.headers())
	})
	if err != nil {
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			upstreamErr.Provider = PROVIDER_NAME
		}
		return fmt.Errorf("failed to call CoinGecko API %s: %w", path, err)
	}

	if len(respBody) == 0 {
		return fmt.Errorf("CoinGecko API %s: %w", path, domain.ErrEmptyPayload)
	}

	if err := c.json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to unmarshal CoinGecko response %s: %w: %v", path, domain.ErrMalformedPayload, err)
	}

	return nil
}

func (c *CoinGeckoClient) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	if strings.Contains(c.apiURL, proAPIHost) {
		return map[string]string{proKeyHeader: c.apiKey}
	}
	return map[string]string{demoKeyHeader: c.apiKey}
}
