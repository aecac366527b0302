// Mocks for the interfaces in service.go

package mocks

import (
	context "context"
	reflect "reflect"

	portfolio "github.com/coinfolio/coinfolio-sync/internal/portfolio"
	schema "github.com/coinfolio/coinfolio-sync/internal/store/schema"
	gomock "github.com/golang/mock/gomock"
	decimal "github.com/shopspring/decimal"
)

// MockPortfolioService is a mock of Service interface.
type MockPortfolioService struct {
	ctrl     *gomock.Controller
	recorder *MockPortfolioServiceMockRecorder
}

// MockPortfolioServiceMockRecorder is the mock recorder for MockPortfolioService.
type MockPortfolioServiceMockRecorder struct {
	mock *MockPortfolioService
}

// NewMockPortfolioService creates a new mock instance.
func NewMockPortfolioService(ctrl *gomock.Controller) *MockPortfolioService {
	mock := &MockPortfolioService{ctrl: ctrl}
	mock.recorder = &MockPortfolioServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPortfolioService) EXPECT() *MockPortfolioServiceMockRecorder {
	return m.recorder
}

// AddTransaction mocks base method.
func (m *MockPortfolioService) AddTransaction(ctx context.Context, userID string, input portfolio.TransactionInput) (*schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddTransaction", ctx, userID, input)
	ret0, _ := ret[0].(*schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddTransaction indicates an expected call of AddTransaction.
func (mr *MockPortfolioServiceMockRecorder) AddTransaction(ctx, userID, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTransaction", reflect.TypeOf((*MockPortfolioService)(nil).AddTransaction), ctx, userID, input)
}

// DeleteTransaction mocks base method.
func (m *MockPortfolioService) DeleteTransaction(ctx context.Context, userID string, transactionID int64) (*schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTransaction", ctx, userID, transactionID)
	ret0, _ := ret[0].(*schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteTransaction indicates an expected call of DeleteTransaction.
func (mr *MockPortfolioServiceMockRecorder) DeleteTransaction(ctx, userID, transactionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTransaction", reflect.TypeOf((*MockPortfolioService)(nil).DeleteTransaction), ctx, userID, transactionID)
}

// ListHoldings mocks base method.
func (m *MockPortfolioService) ListHoldings(ctx context.Context, userID string) ([]portfolio.Holding, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListHoldings", ctx, userID)
	ret0, _ := ret[0].([]portfolio.Holding)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListHoldings indicates an expected call of ListHoldings.
func (mr *MockPortfolioServiceMockRecorder) ListHoldings(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHoldings", reflect.TypeOf((*MockPortfolioService)(nil).ListHoldings), ctx, userID)
}

// ListTransactions mocks base method.
func (m *MockPortfolioService) ListTransactions(ctx context.Context, userID string, coinID string) (*portfolio.TransactionList, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTransactions", ctx, userID, coinID)
	ret0, _ := ret[0].(*portfolio.TransactionList)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockPortfolioServiceMockRecorder) ListTransactions(ctx, userID, coinID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockPortfolioService)(nil).ListTransactions), ctx, userID, coinID)
}

// SetDesiredSellPrice mocks base method.
func (m *MockPortfolioService) SetDesiredSellPrice(ctx context.Context, userID string, coinID string, price decimal.NullDecimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetDesiredSellPrice", ctx, userID, coinID, price)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetDesiredSellPrice indicates an expected call of SetDesiredSellPrice.
func (mr *MockPortfolioServiceMockRecorder) SetDesiredSellPrice(ctx, userID, coinID, price interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetDesiredSellPrice", reflect.TypeOf((*MockPortfolioService)(nil).SetDesiredSellPrice), ctx, userID, coinID, price)
}
