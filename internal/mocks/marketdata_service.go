// Mocks for the interfaces in service.go

package mocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/coinfolio/coinfolio-sync/internal/domain"
	marketdata "github.com/coinfolio/coinfolio-sync/internal/marketdata"
	schema "github.com/coinfolio/coinfolio-sync/internal/store/schema"
	gomock "github.com/golang/mock/gomock"
)

// MockMarketDataService is a mock of Service interface.
type MockMarketDataService struct {
	ctrl     *gomock.Controller
	recorder *MockMarketDataServiceMockRecorder
}

// MockMarketDataServiceMockRecorder is the mock recorder for MockMarketDataService.
type MockMarketDataServiceMockRecorder struct {
	mock *MockMarketDataService
}

// NewMockMarketDataService creates a new mock instance.
func NewMockMarketDataService(ctrl *gomock.Controller) *MockMarketDataService {
	mock := &MockMarketDataService{ctrl: ctrl}
	mock.recorder = &MockMarketDataServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockMarketDataService) EXPECT() *MockMarketDataServiceMockRecorder {
	return m.recorder
}

// GetCategories mocks base method.
func (m *MockMarketDataService) GetCategories(ctx context.Context) ([]schema.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCategories", ctx)
	ret0, _ := ret[0].([]schema.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCategories indicates an expected call of GetCategories.
func (mr *MockMarketDataServiceMockRecorder) GetCategories(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCategories", reflect.TypeOf((*MockMarketDataService)(nil).GetCategories), ctx)
}

// GetCoinData mocks base method.
func (m *MockMarketDataService) GetCoinData(ctx context.Context, coinID string) (*schema.Coin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCoinData", ctx, coinID)
	ret0, _ := ret[0].(*schema.Coin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCoinData indicates an expected call of GetCoinData.
func (mr *MockMarketDataServiceMockRecorder) GetCoinData(ctx, coinID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoinData", reflect.TypeOf((*MockMarketDataService)(nil).GetCoinData), ctx, coinID)
}

// GetExchangeRate mocks base method.
func (m *MockMarketDataService) GetExchangeRate(ctx context.Context) (*schema.ExchangeRate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExchangeRate", ctx)
	ret0, _ := ret[0].(*schema.ExchangeRate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExchangeRate indicates an expected call of GetExchangeRate.
func (mr *MockMarketDataServiceMockRecorder) GetExchangeRate(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExchangeRate", reflect.TypeOf((*MockMarketDataService)(nil).GetExchangeRate), ctx)
}

// GetGlobalMetrics mocks base method.
func (m *MockMarketDataService) GetGlobalMetrics(ctx context.Context) (*schema.GlobalMetrics, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGlobalMetrics", ctx)
	ret0, _ := ret[0].(*schema.GlobalMetrics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGlobalMetrics indicates an expected call of GetGlobalMetrics.
func (mr *MockMarketDataServiceMockRecorder) GetGlobalMetrics(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGlobalMetrics", reflect.TypeOf((*MockMarketDataService)(nil).GetGlobalMetrics), ctx)
}

// GetMarketChart mocks base method.
func (m *MockMarketDataService) GetMarketChart(ctx context.Context, coinID string, days domain.ChartDays) (*marketdata.MarketChart, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMarketChart", ctx, coinID, days)
	ret0, _ := ret[0].(*marketdata.MarketChart)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMarketChart indicates an expected call of GetMarketChart.
func (mr *MockMarketDataServiceMockRecorder) GetMarketChart(ctx, coinID, days interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMarketChart", reflect.TypeOf((*MockMarketDataService)(nil).GetMarketChart), ctx, coinID, days)
}

// GetNews mocks base method.
func (m *MockMarketDataService) GetNews(ctx context.Context) ([]schema.NewsArticle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNews", ctx)
	ret0, _ := ret[0].([]schema.NewsArticle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNews indicates an expected call of GetNews.
func (mr *MockMarketDataServiceMockRecorder) GetNews(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNews", reflect.TypeOf((*MockMarketDataService)(nil).GetNews), ctx)
}

// GetTrending mocks base method.
func (m *MockMarketDataService) GetTrending(ctx context.Context) ([]schema.TrendingCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTrending", ctx)
	ret0, _ := ret[0].([]schema.TrendingCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTrending indicates an expected call of GetTrending.
func (mr *MockMarketDataServiceMockRecorder) GetTrending(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrending", reflect.TypeOf((*MockMarketDataService)(nil).GetTrending), ctx)
}

// GetUserCoins mocks base method.
func (m *MockMarketDataService) GetUserCoins(ctx context.Context, userID string) ([]schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserCoins", ctx, userID)
	ret0, _ := ret[0].([]schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserCoins indicates an expected call of GetUserCoins.
func (mr *MockMarketDataServiceMockRecorder) GetUserCoins(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserCoins", reflect.TypeOf((*MockMarketDataService)(nil).GetUserCoins), ctx, userID)
}
