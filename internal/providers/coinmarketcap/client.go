package coinmarketcap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/ratelimit"
)

const PROVIDER_NAME = domain.PROVIDER_COINMARKETCAP

var ErrNoAPIKey = errors.New("no API key provided")

// GlobalMetricsResponse represents the response of /v1/global-metrics/quotes/latest
type GlobalMetricsResponse struct {
	Status Status         `json:"status"`
	Data   *GlobalMetrics `json:"data"`
}

// Status is the status block CoinMarketCap attaches to every response
type Status struct {
	ErrorCode    int     `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
}

// GlobalMetrics holds the aggregate market figures
type GlobalMetrics struct {
	ActiveCryptocurrencies int                    `json:"active_cryptocurrencies"`
	BTCDominance           decimal.Decimal        `json:"btc_dominance"`
	ETHDominance           decimal.Decimal        `json:"eth_dominance"`
	Quote                  map[string]GlobalQuote `json:"quote"`
}

// GlobalQuote holds the totals in one currency
type GlobalQuote struct {
	TotalMarketCap decimal.Decimal `json:"total_market_cap"`
	TotalVolume24h decimal.Decimal `json:"total_volume_24h"`
}

// USD returns the USD quote, or zero totals when it is missing
func (m *GlobalMetrics) USD() GlobalQuote {
	return m.Quote["USD"]
}

// Client defines the interface for CoinMarketCap client operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/coinmarketcap_client.go -package=mocks -mock_names=Client=MockCoinMarketCapClient
type Client interface {
	// GetGlobalMetrics fetches the latest global market metrics
	GetGlobalMetrics(ctx context.Context) (*GlobalMetrics, error)
}

// CoinMarketCapClient implements CoinMarketCap client
type CoinMarketCapClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	apiURL         string
	apiKey         string
	json           adapter.JSON
}

// NewClient creates a new CoinMarketCap client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, apiURL string, apiKey string, json adapter.JSON) Client {
	return &CoinMarketCapClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		apiURL:         strings.TrimRight(apiURL, "/"),
		apiKey:         apiKey,
		json:           json,
	}
}

// GetGlobalMetrics fetches /v1/global-metrics/quotes/latest
func (c *CoinMarketCapClient) GetGlobalMetrics(ctx context.Context) (*GlobalMetrics, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	url := c.apiURL + "/v1/global-metrics/quotes/latest"
	headers := map[string]string{"X-CMC_PRO_API_KEY": c.apiKey}

	respBody, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, url, headers)
	})
	if err != nil {
		var upstreamErr *domain.UpstreamError
		if errors.As(err, &upstreamErr) {
			upstreamErr.Provider = PROVIDER_NAME
		}
		return nil, fmt.Errorf("failed to call CoinMarketCap API: %w", err)
	}

	var response GlobalMetricsResponse
	if err := c.json.Unmarshal(respBody, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal CoinMarketCap response: %w: %v", domain.ErrMalformedPayload, err)
	}

	if response.Status.ErrorCode != 0 {
		msg := ""
		if response.Status.ErrorMessage != nil {
			msg = *response.Status.ErrorMessage
		}
		return nil, fmt.Errorf("CoinMarketCap error %d: %s", response.Status.ErrorCode, msg)
	}

	if response.Data == nil {
		return nil, fmt.Errorf("global metrics: %w", domain.ErrEmptyPayload)
	}

	return response.Data, nil
}
