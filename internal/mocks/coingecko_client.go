// Mocks for the interfaces in client.go

package mocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/coinfolio/coinfolio-sync/internal/domain"
	coingecko "github.com/coinfolio/coinfolio-sync/internal/providers/coingecko"
	gomock "github.com/golang/mock/gomock"
)

// MockCoinGeckoClient is a mock of Client interface.
type MockCoinGeckoClient struct {
	ctrl     *gomock.Controller
	recorder *MockCoinGeckoClientMockRecorder
}

// MockCoinGeckoClientMockRecorder is the mock recorder for MockCoinGeckoClient.
type MockCoinGeckoClientMockRecorder struct {
	mock *MockCoinGeckoClient
}

// NewMockCoinGeckoClient creates a new mock instance.
func NewMockCoinGeckoClient(ctrl *gomock.Controller) *MockCoinGeckoClient {
	mock := &MockCoinGeckoClient{ctrl: ctrl}
	mock.recorder = &MockCoinGeckoClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCoinGeckoClient) EXPECT() *MockCoinGeckoClientMockRecorder {
	return m.recorder
}

// GetCategories mocks base method.
func (m *MockCoinGeckoClient) GetCategories(ctx context.Context) ([]coingecko.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCategories", ctx)
	ret0, _ := ret[0].([]coingecko.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCategories indicates an expected call of GetCategories.
func (mr *MockCoinGeckoClientMockRecorder) GetCategories(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCategories", reflect.TypeOf((*MockCoinGeckoClient)(nil).GetCategories), ctx)
}

// GetCoin mocks base method.
func (m *MockCoinGeckoClient) GetCoin(ctx context.Context, id string) (*coingecko.CoinDetail, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCoin", ctx, id)
	ret0, _ := ret[0].(*coingecko.CoinDetail)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCoin indicates an expected call of GetCoin.
func (mr *MockCoinGeckoClientMockRecorder) GetCoin(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoin", reflect.TypeOf((*MockCoinGeckoClient)(nil).GetCoin), ctx, id)
}

// GetCoinsMarkets mocks base method.
func (m *MockCoinGeckoClient) GetCoinsMarkets(ctx context.Context, query coingecko.MarketsQuery) ([]coingecko.MarketCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCoinsMarkets", ctx, query)
	ret0, _ := ret[0].([]coingecko.MarketCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCoinsMarkets indicates an expected call of GetCoinsMarkets.
func (mr *MockCoinGeckoClientMockRecorder) GetCoinsMarkets(ctx, query interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoinsMarkets", reflect.TypeOf((*MockCoinGeckoClient)(nil).GetCoinsMarkets), ctx, query)
}

// GetExchangeRates mocks base method.
func (m *MockCoinGeckoClient) GetExchangeRates(ctx context.Context) (*coingecko.ExchangeRates, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExchangeRates", ctx)
	ret0, _ := ret[0].(*coingecko.ExchangeRates)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExchangeRates indicates an expected call of GetExchangeRates.
func (mr *MockCoinGeckoClientMockRecorder) GetExchangeRates(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExchangeRates", reflect.TypeOf((*MockCoinGeckoClient)(nil).GetExchangeRates), ctx)
}

// GetMarketChart mocks base method.
func (m *MockCoinGeckoClient) GetMarketChart(ctx context.Context, id string, days domain.ChartDays) (*coingecko.MarketChart, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMarketChart", ctx, id, days)
	ret0, _ := ret[0].(*coingecko.MarketChart)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMarketChart indicates an expected call of GetMarketChart.
func (mr *MockCoinGeckoClientMockRecorder) GetMarketChart(ctx, id, days interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMarketChart", reflect.TypeOf((*MockCoinGeckoClient)(nil).GetMarketChart), ctx, id, days)
}

// GetTrending mocks base method.
func (m *MockCoinGeckoClient) GetTrending(ctx context.Context) ([]coingecko.TrendingCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTrending", ctx)
	ret0, _ := ret[0].([]coingecko.TrendingCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTrending indicates an expected call of GetTrending.
func (mr *MockCoinGeckoClientMockRecorder) GetTrending(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrending", reflect.TypeOf((*MockCoinGeckoClient)(nil).GetTrending), ctx)
}
