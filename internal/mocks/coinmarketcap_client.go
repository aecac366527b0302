// Mocks for the interfaces in client.go

package mocks

import (
	context "context"
	reflect "reflect"

	coinmarketcap "github.com/coinfolio/coinfolio-sync/internal/providers/coinmarketcap"
	gomock "github.com/golang/mock/gomock"
)

// MockCoinMarketCapClient is a mock of Client interface.
type MockCoinMarketCapClient struct {
	ctrl     *gomock.Controller
	recorder *MockCoinMarketCapClientMockRecorder
}

// MockCoinMarketCapClientMockRecorder is the mock recorder for MockCoinMarketCapClient.
type MockCoinMarketCapClientMockRecorder struct {
	mock *MockCoinMarketCapClient
}

// NewMockCoinMarketCapClient creates a new mock instance.
func NewMockCoinMarketCapClient(ctrl *gomock.Controller) *MockCoinMarketCapClient {
	mock := &MockCoinMarketCapClient{ctrl: ctrl}
	mock.recorder = &MockCoinMarketCapClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCoinMarketCapClient) EXPECT() *MockCoinMarketCapClientMockRecorder {
	return m.recorder
}

// GetGlobalMetrics mocks base method.
func (m *MockCoinMarketCapClient) GetGlobalMetrics(ctx context.Context) (*coinmarketcap.GlobalMetrics, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGlobalMetrics", ctx)
	ret0, _ := ret[0].(*coinmarketcap.GlobalMetrics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGlobalMetrics indicates an expected call of GetGlobalMetrics.
func (mr *MockCoinMarketCapClientMockRecorder) GetGlobalMetrics(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGlobalMetrics", reflect.TypeOf((*MockCoinMarketCapClient)(nil).GetGlobalMetrics), ctx)
}
