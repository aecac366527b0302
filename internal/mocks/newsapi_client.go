// Mocks for the interfaces in client.go

package mocks

import (
	context "context"
	reflect "reflect"

	newsapi "github.com/coinfolio/coinfolio-sync/internal/providers/newsapi"
	gomock "github.com/golang/mock/gomock"
)

// MockNewsAPIClient is a mock of Client interface.
type MockNewsAPIClient struct {
	ctrl     *gomock.Controller
	recorder *MockNewsAPIClientMockRecorder
}

// MockNewsAPIClientMockRecorder is the mock recorder for MockNewsAPIClient.
type MockNewsAPIClientMockRecorder struct {
	mock *MockNewsAPIClient
}

// NewMockNewsAPIClient creates a new mock instance.
func NewMockNewsAPIClient(ctrl *gomock.Controller) *MockNewsAPIClient {
	mock := &MockNewsAPIClient{ctrl: ctrl}
	mock.recorder = &MockNewsAPIClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNewsAPIClient) EXPECT() *MockNewsAPIClientMockRecorder {
	return m.recorder
}

// GetEverything mocks base method.
func (m *MockNewsAPIClient) GetEverything(ctx context.Context, query string, pageSize int) ([]newsapi.Article, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetEverything", ctx, query, pageSize)
	ret0, _ := ret[0].([]newsapi.Article)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetEverything indicates an expected call of GetEverything.
func (mr *MockNewsAPIClientMockRecorder) GetEverything(ctx, query, pageSize interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetEverything", reflect.TypeOf((*MockNewsAPIClient)(nil).GetEverything), ctx, query, pageSize)
}
