package coingecko_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/adapter"
	"github.com/coinfolio/coinfolio-sync/internal/domain"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
	"github.com/coinfolio/coinfolio-sync/internal/mocks"
	"github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
)

const (
	COINGECKO_API_URL = "https://api.coingecko.com/api/v3"
	COINGECKO_PRO_URL = "https://pro-api.coingecko.com/api/v3"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testClientMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	proxy      *mocks.MockRateLimitProxy
}

func setupTestClient(t *testing.T, apiURL, apiKey string) (*testClientMocks, coingecko.Client) {
	ctrl := gomock.NewController(t)
	tm := &testClientMocks{
		ctrl:       ctrl,
		httpClient: mocks.NewMockHTTPClient(ctrl),
		proxy:      mocks.NewMockRateLimitProxy(ctrl),
	}

	// Every call goes through the proxy with the provider name
	tm.proxy.EXPECT().
		Request(gomock.Any(), coingecko.PROVIDER_NAME, gomock.Any()).
		DoAndReturn(func(ctx context.Context, providerName string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
			return fn(ctx)
		}).
		AnyTimes()

	return tm, coingecko.NewClient(tm.httpClient, tm.proxy, apiURL, apiKey, adapter.NewJSON())
}

func TestClient_GetCoinsMarkets_Success(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_API_URL, "demo-key")
	defer tm.ctrl.Finish()

	ctx := context.Background()
	expectedURL := COINGECKO_API_URL + "/coins/markets?ids=bitcoin%2Cethereum&order=market_cap_desc&page=1&per_page=250" +
		"&price_change_percentage=24h%2C7d%2C30d&sparkline=true&vs_currency=usd"

	tm.httpClient.EXPECT().
		GetBytes(ctx, expectedURL, map[string]string{"x-cg-demo-api-key": "demo-key"}).
		Return([]byte(`[
			{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":"https://img/btc.png","current_price":64000.5,
			 "market_cap":1260000000000,"market_cap_rank":1,"total_volume":30000000000,"high_24h":65000,"low_24h":63000,
			 "circulating_supply":19700000,"price_change_percentage_24h":1.5,
			 "price_change_percentage_7d_in_currency":-2.25,"price_change_percentage_30d_in_currency":10,
			 "sparkline_in_7d":{"price":[63000,64000]},"last_updated":"2025-03-01T12:00:00.000Z"},
			{"id":"ethereum","symbol":"eth","name":"Ethereum","image":"","current_price":null,"market_cap":null,
			 "market_cap_rank":null,"total_volume":0,"high_24h":null,"low_24h":null,"circulating_supply":0,
			 "price_change_percentage_24h":null,"last_updated":null}
		]`), nil)

	coins, err := client.GetCoinsMarkets(ctx, coingecko.MarketsQuery{
		IDs:       []string{"bitcoin", "ethereum"},
		Page:      1,
		PerPage:   250,
		Sparkline: true,
	})

	require.NoError(t, err)
	require.Len(t, coins, 2)

	btc := coins[0]
	assert.Equal(t, "bitcoin", btc.ID)
	assert.True(t, btc.CurrentPrice.Valid)
	assert.Equal(t, "64000.5", btc.CurrentPrice.Decimal.String())
	require.NotNil(t, btc.MarketCapRank)
	assert.Equal(t, 1, *btc.MarketCapRank)
	assert.Equal(t, "-2.25", btc.PriceChangePercentage7dInCurrency.String())
	require.NotNil(t, btc.SparklineIn7d)
	assert.Equal(t, []float64{63000, 64000}, btc.SparklineIn7d.Price)

	eth := coins[1]
	assert.False(t, eth.CurrentPrice.Valid)
	assert.Nil(t, eth.MarketCapRank)
	assert.True(t, eth.MarketCap.IsZero())
}

func TestClient_ProAPIKeyHeader(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_PRO_URL, "pro-key")
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.httpClient.EXPECT().
		GetBytes(ctx, COINGECKO_PRO_URL+"/exchange_rates", map[string]string{"x-cg-pro-api-key": "pro-key"}).
		Return([]byte(`{"rates":{"usd":{"name":"US Dollar","unit":"$","value":64000,"type":"fiat"}}}`), nil)

	rates, err := client.GetExchangeRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, "64000", rates.Rates["usd"].Value.String())
}

func TestClient_NoAPIKey(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_API_URL, "")
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.httpClient.EXPECT().
		GetBytes(ctx, COINGECKO_API_URL+"/coins/categories?order=market_cap_desc", nil).
		Return([]byte(`[{"id":"layer-1","name":"Layer 1 (L1)","market_cap":2000000000000,"market_cap_change_24h":1.2,
			"volume_24h":50000000000,"top_3_coins":["https://img/btc.png"]}]`), nil)

	categories, err := client.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "layer-1", categories[0].ID)
	assert.Equal(t, []string{"https://img/btc.png"}, categories[0].Top3Coins)
}

func TestClient_GetMarketChart(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectedErr error
		points      int
	}{
		{
			name:   "success",
			body:   `{"prices":[[1709294400000,64000.1],[1709298000000,64100.2]],"market_caps":[],"total_volumes":[]}`,
			points: 2,
		},
		{
			name:        "empty series",
			body:        `{"prices":[],"market_caps":[],"total_volumes":[]}`,
			expectedErr: domain.ErrEmptyPayload,
		},
		{
			name:        "malformed point",
			body:        `{"prices":[[1709294400000]]}`,
			expectedErr: domain.ErrMalformedPayload,
		},
		{
			name:        "not json",
			body:        `<html>oops</html>`,
			expectedErr: domain.ErrMalformedPayload,
		},
		{
			name:        "empty body",
			body:        ``,
			expectedErr: domain.ErrEmptyPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm, client := setupTestClient(t, COINGECKO_API_URL, "")
			defer tm.ctrl.Finish()

			ctx := context.Background()
			tm.httpClient.EXPECT().
				GetBytes(ctx, COINGECKO_API_URL+"/coins/bitcoin/market_chart?days=7&vs_currency=usd", nil).
				Return([]byte(tt.body), nil)

			chart, err := client.GetMarketChart(ctx, "bitcoin", domain.ChartDays7)
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.True(t, domain.IsDataError(err))
				assert.Nil(t, chart)
				return
			}

			require.NoError(t, err)
			assert.Len(t, chart.Prices, tt.points)
		})
	}
}

func TestClient_GetMarketChart_UnknownDuration(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_API_URL, "")
	defer tm.ctrl.Finish()

	_, err := client.GetMarketChart(context.Background(), "bitcoin", domain.ChartDays(14))
	assert.ErrorIs(t, err, domain.ErrUnknownChartDuration)
}

func TestClient_UpstreamErrorTaggedWithProvider(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_API_URL, "")
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.httpClient.EXPECT().
		GetBytes(ctx, gomock.Any(), gomock.Any()).
		Return(nil, &domain.UpstreamError{StatusCode: 429, URL: COINGECKO_API_URL + "/search/trending"})

	_, err := client.GetTrending(ctx)
	require.Error(t, err)
	assert.True(t, domain.IsCoolDownError(err))

	var upstreamErr *domain.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, coingecko.PROVIDER_NAME, upstreamErr.Provider)
	assert.Contains(t, err.Error(), "coingecko: unexpected status code 429")
}

func TestClient_GetTrending(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_API_URL, "")
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.httpClient.EXPECT().
		GetBytes(ctx, COINGECKO_API_URL+"/search/trending", nil).
		Return([]byte(`{"coins":[
			{"item":{"id":"pepe","name":"Pepe","symbol":"PEPE","thumb":"t","market_cap_rank":30,"score":0,
			 "data":{"price":0.0000123,"price_change_percentage_24h":{"usd":5.5}}}},
			{"item":{"id":"sui","name":"Sui","symbol":"SUI","thumb":"t","market_cap_rank":null,"score":1}}
		]}`), nil)

	coins, err := client.GetTrending(ctx)
	require.NoError(t, err)
	require.Len(t, coins, 2)
	assert.Equal(t, "pepe", coins[0].ID)
	require.NotNil(t, coins[0].Data)
	assert.Equal(t, "0.0000123", coins[0].Data.Price.String())
	assert.Equal(t, "5.5", coins[0].Data.PriceChangePercentage24h["usd"].String())
	assert.Nil(t, coins[1].Data)
	assert.Nil(t, coins[1].MarketCapRank)
}

func TestClient_GetCoin(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_API_URL, "")
	defer tm.ctrl.Finish()

	ctx := context.Background()
	expectedURL := COINGECKO_API_URL + "/coins/bitcoin?community_data=false&developer_data=false&localization=false&sparkline=true&tickers=false"
	tm.httpClient.EXPECT().
		GetBytes(ctx, expectedURL, nil).
		Return([]byte(`{"id":"bitcoin","symbol":"btc","name":"Bitcoin","image":{"large":"https://img/large.png"},
			"market_cap_rank":1,"market_data":{"current_price":{"usd":64000,"eur":59000},"market_cap":{"usd":1},
			"sparkline_7d":{"price":[1,2,3]}},"last_updated":"2025-03-01T12:00:00.000Z"}`), nil)

	coin, err := client.GetCoin(ctx, "bitcoin")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", coin.Name)
	assert.Equal(t, "https://img/large.png", coin.Image.Large)
	assert.Equal(t, "64000", coin.MarketData.CurrentPrice["usd"].String())
	assert.Equal(t, []float64{1, 2, 3}, coin.MarketData.Sparkline7d.Price)
}

func TestClient_GetCoin_EmptyObject(t *testing.T) {
	tm, client := setupTestClient(t, COINGECKO_API_URL, "")
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.httpClient.EXPECT().GetBytes(ctx, gomock.Any(), nil).Return([]byte(`{}`), nil)

	_, err := client.GetCoin(ctx, "bitcoin")
	assert.ErrorIs(t, err, domain.ErrEmptyPayload)
}
