// Mocks for the interfaces in executor.go

package mocks

import (
	context "context"
	reflect "reflect"

	dto "github.com/coinfolio/coinfolio-sync/internal/api/shared/dto"
	executor "github.com/coinfolio/coinfolio-sync/internal/api/shared/executor"
	domain "github.com/coinfolio/coinfolio-sync/internal/domain"
	gomock "github.com/golang/mock/gomock"
)

// MockAPIExecutor is a mock of Executor interface.
type MockAPIExecutor struct {
	ctrl     *gomock.Controller
	recorder *MockAPIExecutorMockRecorder
}

// MockAPIExecutorMockRecorder is the mock recorder for MockAPIExecutor.
type MockAPIExecutorMockRecorder struct {
	mock *MockAPIExecutor
}

// NewMockAPIExecutor creates a new mock instance.
func NewMockAPIExecutor(ctrl *gomock.Controller) *MockAPIExecutor {
	mock := &MockAPIExecutor{ctrl: ctrl}
	mock.recorder = &MockAPIExecutorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAPIExecutor) EXPECT() *MockAPIExecutorMockRecorder {
	return m.recorder
}

// AddTransaction mocks base method.
func (m *MockAPIExecutor) AddTransaction(ctx context.Context, user executor.User, coinID string, req dto.CreateTransactionRequest) (*dto.HoldingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddTransaction", ctx, user, coinID, req)
	ret0, _ := ret[0].(*dto.HoldingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddTransaction indicates an expected call of AddTransaction.
func (mr *MockAPIExecutorMockRecorder) AddTransaction(ctx, user, coinID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTransaction", reflect.TypeOf((*MockAPIExecutor)(nil).AddTransaction), ctx, user, coinID, req)
}

// DeleteTransaction mocks base method.
func (m *MockAPIExecutor) DeleteTransaction(ctx context.Context, user executor.User, transactionID int64) (*dto.HoldingResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteTransaction", ctx, user, transactionID)
	ret0, _ := ret[0].(*dto.HoldingResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteTransaction indicates an expected call of DeleteTransaction.
func (mr *MockAPIExecutorMockRecorder) DeleteTransaction(ctx, user, transactionID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTransaction", reflect.TypeOf((*MockAPIExecutor)(nil).DeleteTransaction), ctx, user, transactionID)
}

// GetCategories mocks base method.
func (m *MockAPIExecutor) GetCategories(ctx context.Context) (*dto.ListResponse[dto.CategoryResponse], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCategories", ctx)
	ret0, _ := ret[0].(*dto.ListResponse[dto.CategoryResponse])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCategories indicates an expected call of GetCategories.
func (mr *MockAPIExecutorMockRecorder) GetCategories(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCategories", reflect.TypeOf((*MockAPIExecutor)(nil).GetCategories), ctx)
}

// GetCoin mocks base method.
func (m *MockAPIExecutor) GetCoin(ctx context.Context, coinID string) (*dto.CoinResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCoin", ctx, coinID)
	ret0, _ := ret[0].(*dto.CoinResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCoin indicates an expected call of GetCoin.
func (mr *MockAPIExecutorMockRecorder) GetCoin(ctx, coinID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoin", reflect.TypeOf((*MockAPIExecutor)(nil).GetCoin), ctx, coinID)
}

// GetExchangeRate mocks base method.
func (m *MockAPIExecutor) GetExchangeRate(ctx context.Context) (*dto.ExchangeRateResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExchangeRate", ctx)
	ret0, _ := ret[0].(*dto.ExchangeRateResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExchangeRate indicates an expected call of GetExchangeRate.
func (mr *MockAPIExecutorMockRecorder) GetExchangeRate(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExchangeRate", reflect.TypeOf((*MockAPIExecutor)(nil).GetExchangeRate), ctx)
}

// GetGlobalMetrics mocks base method.
func (m *MockAPIExecutor) GetGlobalMetrics(ctx context.Context) (*dto.GlobalMetricsResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGlobalMetrics", ctx)
	ret0, _ := ret[0].(*dto.GlobalMetricsResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGlobalMetrics indicates an expected call of GetGlobalMetrics.
func (mr *MockAPIExecutorMockRecorder) GetGlobalMetrics(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGlobalMetrics", reflect.TypeOf((*MockAPIExecutor)(nil).GetGlobalMetrics), ctx)
}

// GetJobRuns mocks base method.
func (m *MockAPIExecutor) GetJobRuns(ctx context.Context, name domain.JobName, limit int) (*dto.ListResponse[dto.JobRunResponse], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetJobRuns", ctx, name, limit)
	ret0, _ := ret[0].(*dto.ListResponse[dto.JobRunResponse])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetJobRuns indicates an expected call of GetJobRuns.
func (mr *MockAPIExecutorMockRecorder) GetJobRuns(ctx, name, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJobRuns", reflect.TypeOf((*MockAPIExecutor)(nil).GetJobRuns), ctx, name, limit)
}

// GetMarketChart mocks base method.
func (m *MockAPIExecutor) GetMarketChart(ctx context.Context, coinID string, days domain.ChartDays) (*dto.MarketChartResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMarketChart", ctx, coinID, days)
	ret0, _ := ret[0].(*dto.MarketChartResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMarketChart indicates an expected call of GetMarketChart.
func (mr *MockAPIExecutorMockRecorder) GetMarketChart(ctx, coinID, days interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMarketChart", reflect.TypeOf((*MockAPIExecutor)(nil).GetMarketChart), ctx, coinID, days)
}

// GetNews mocks base method.
func (m *MockAPIExecutor) GetNews(ctx context.Context) (*dto.ListResponse[dto.NewsArticleResponse], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNews", ctx)
	ret0, _ := ret[0].(*dto.ListResponse[dto.NewsArticleResponse])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNews indicates an expected call of GetNews.
func (mr *MockAPIExecutorMockRecorder) GetNews(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNews", reflect.TypeOf((*MockAPIExecutor)(nil).GetNews), ctx)
}

// GetNotifications mocks base method.
func (m *MockAPIExecutor) GetNotifications(ctx context.Context, user executor.User, limit int) (*dto.ListResponse[dto.NotificationResponse], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNotifications", ctx, user, limit)
	ret0, _ := ret[0].(*dto.ListResponse[dto.NotificationResponse])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNotifications indicates an expected call of GetNotifications.
func (mr *MockAPIExecutorMockRecorder) GetNotifications(ctx, user, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNotifications", reflect.TypeOf((*MockAPIExecutor)(nil).GetNotifications), ctx, user, limit)
}

// GetTrending mocks base method.
func (m *MockAPIExecutor) GetTrending(ctx context.Context) (*dto.ListResponse[dto.TrendingCoinResponse], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTrending", ctx)
	ret0, _ := ret[0].(*dto.ListResponse[dto.TrendingCoinResponse])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTrending indicates an expected call of GetTrending.
func (mr *MockAPIExecutorMockRecorder) GetTrending(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrending", reflect.TypeOf((*MockAPIExecutor)(nil).GetTrending), ctx)
}

// ListHoldings mocks base method.
func (m *MockAPIExecutor) ListHoldings(ctx context.Context, user executor.User) (*dto.ListResponse[dto.HoldingResponse], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListHoldings", ctx, user)
	ret0, _ := ret[0].(*dto.ListResponse[dto.HoldingResponse])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListHoldings indicates an expected call of ListHoldings.
func (mr *MockAPIExecutorMockRecorder) ListHoldings(ctx, user interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHoldings", reflect.TypeOf((*MockAPIExecutor)(nil).ListHoldings), ctx, user)
}

// ListTransactions mocks base method.
func (m *MockAPIExecutor) ListTransactions(ctx context.Context, user executor.User, coinID string) (*dto.TransactionListResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListTransactions", ctx, user, coinID)
	ret0, _ := ret[0].(*dto.TransactionListResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockAPIExecutorMockRecorder) ListTransactions(ctx, user, coinID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockAPIExecutor)(nil).ListTransactions), ctx, user, coinID)
}

// RunJob mocks base method.
func (m *MockAPIExecutor) RunJob(ctx context.Context, name domain.JobName, params domain.JobParams) (*dto.JobSuccessResponse, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunJob", ctx, name, params)
	ret0, _ := ret[0].(*dto.JobSuccessResponse)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RunJob indicates an expected call of RunJob.
func (mr *MockAPIExecutorMockRecorder) RunJob(ctx, name, params interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunJob", reflect.TypeOf((*MockAPIExecutor)(nil).RunJob), ctx, name, params)
}

// SetTarget mocks base method.
func (m *MockAPIExecutor) SetTarget(ctx context.Context, user executor.User, coinID string, req dto.SetTargetRequest) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetTarget", ctx, user, coinID, req)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetTarget indicates an expected call of SetTarget.
func (mr *MockAPIExecutorMockRecorder) SetTarget(ctx, user, coinID, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTarget", reflect.TypeOf((*MockAPIExecutor)(nil).SetTarget), ctx, user, coinID, req)
}
