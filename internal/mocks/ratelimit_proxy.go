// Mocks for the interfaces in proxy.go

package mocks

import (
	context "context"
	reflect "reflect"

	ratelimit "github.com/coinfolio/coinfolio-sync/internal/ratelimit"
	gomock "github.com/golang/mock/gomock"
)

// MockRateLimitProxy is a mock of Proxy interface.
type MockRateLimitProxy struct {
	ctrl     *gomock.Controller
	recorder *MockRateLimitProxyMockRecorder
}

// MockRateLimitProxyMockRecorder is the mock recorder for MockRateLimitProxy.
type MockRateLimitProxyMockRecorder struct {
	mock *MockRateLimitProxy
}

// NewMockRateLimitProxy creates a new mock instance.
func NewMockRateLimitProxy(ctrl *gomock.Controller) *MockRateLimitProxy {
	mock := &MockRateLimitProxy{ctrl: ctrl}
	mock.recorder = &MockRateLimitProxyMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRateLimitProxy) EXPECT() *MockRateLimitProxyMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockRateLimitProxy) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockRateLimitProxyMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockRateLimitProxy)(nil).Close))
}

// Request mocks base method.
func (m *MockRateLimitProxy) Request(ctx context.Context, providerName string, fn ratelimit.RequestFunc) (interface{}, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Request", ctx, providerName, fn)
	ret0, _ := ret[0].(interface{})
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Request indicates an expected call of Request.
func (mr *MockRateLimitProxyMockRecorder) Request(ctx, providerName, fn interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Request", reflect.TypeOf((*MockRateLimitProxy)(nil).Request), ctx, providerName, fn)
}
