// Mocks for the interfaces in handler.go

package mocks

import (
	reflect "reflect"

	gin "github.com/gin-gonic/gin"
	gomock "github.com/golang/mock/gomock"
)

// MockAPIHandler is a mock of Handler interface.
type MockAPIHandler struct {
	ctrl     *gomock.Controller
	recorder *MockAPIHandlerMockRecorder
}

// MockAPIHandlerMockRecorder is the mock recorder for MockAPIHandler.
type MockAPIHandlerMockRecorder struct {
	mock *MockAPIHandler
}

// NewMockAPIHandler creates a new mock instance.
func NewMockAPIHandler(ctrl *gomock.Controller) *MockAPIHandler {
	mock := &MockAPIHandler{ctrl: ctrl}
	mock.recorder = &MockAPIHandlerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAPIHandler) EXPECT() *MockAPIHandlerMockRecorder {
	return m.recorder
}

// AddTransaction mocks base method.
func (m *MockAPIHandler) AddTransaction(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AddTransaction", c)
}

// AddTransaction indicates an expected call of AddTransaction.
func (mr *MockAPIHandlerMockRecorder) AddTransaction(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddTransaction", reflect.TypeOf((*MockAPIHandler)(nil).AddTransaction), c)
}

// CleanupNotifications mocks base method.
func (m *MockAPIHandler) CleanupNotifications(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "CleanupNotifications", c)
}

// CleanupNotifications indicates an expected call of CleanupNotifications.
func (mr *MockAPIHandlerMockRecorder) CleanupNotifications(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CleanupNotifications", reflect.TypeOf((*MockAPIHandler)(nil).CleanupNotifications), c)
}

// DeleteTransaction mocks base method.
func (m *MockAPIHandler) DeleteTransaction(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DeleteTransaction", c)
}

// DeleteTransaction indicates an expected call of DeleteTransaction.
func (mr *MockAPIHandlerMockRecorder) DeleteTransaction(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteTransaction", reflect.TypeOf((*MockAPIHandler)(nil).DeleteTransaction), c)
}

// GetCategories mocks base method.
func (m *MockAPIHandler) GetCategories(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetCategories", c)
}

// GetCategories indicates an expected call of GetCategories.
func (mr *MockAPIHandlerMockRecorder) GetCategories(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCategories", reflect.TypeOf((*MockAPIHandler)(nil).GetCategories), c)
}

// GetCoin mocks base method.
func (m *MockAPIHandler) GetCoin(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetCoin", c)
}

// GetCoin indicates an expected call of GetCoin.
func (mr *MockAPIHandlerMockRecorder) GetCoin(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoin", reflect.TypeOf((*MockAPIHandler)(nil).GetCoin), c)
}

// GetExchangeRate mocks base method.
func (m *MockAPIHandler) GetExchangeRate(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetExchangeRate", c)
}

// GetExchangeRate indicates an expected call of GetExchangeRate.
func (mr *MockAPIHandlerMockRecorder) GetExchangeRate(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExchangeRate", reflect.TypeOf((*MockAPIHandler)(nil).GetExchangeRate), c)
}

// GetGlobalMetrics mocks base method.
func (m *MockAPIHandler) GetGlobalMetrics(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetGlobalMetrics", c)
}

// GetGlobalMetrics indicates an expected call of GetGlobalMetrics.
func (mr *MockAPIHandlerMockRecorder) GetGlobalMetrics(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGlobalMetrics", reflect.TypeOf((*MockAPIHandler)(nil).GetGlobalMetrics), c)
}

// GetJobRuns mocks base method.
func (m *MockAPIHandler) GetJobRuns(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetJobRuns", c)
}

// GetJobRuns indicates an expected call of GetJobRuns.
func (mr *MockAPIHandlerMockRecorder) GetJobRuns(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetJobRuns", reflect.TypeOf((*MockAPIHandler)(nil).GetJobRuns), c)
}

// GetMarketChart mocks base method.
func (m *MockAPIHandler) GetMarketChart(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetMarketChart", c)
}

// GetMarketChart indicates an expected call of GetMarketChart.
func (mr *MockAPIHandlerMockRecorder) GetMarketChart(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMarketChart", reflect.TypeOf((*MockAPIHandler)(nil).GetMarketChart), c)
}

// GetNews mocks base method.
func (m *MockAPIHandler) GetNews(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetNews", c)
}

// GetNews indicates an expected call of GetNews.
func (mr *MockAPIHandlerMockRecorder) GetNews(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNews", reflect.TypeOf((*MockAPIHandler)(nil).GetNews), c)
}

// GetNotifications mocks base method.
func (m *MockAPIHandler) GetNotifications(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetNotifications", c)
}

// GetNotifications indicates an expected call of GetNotifications.
func (mr *MockAPIHandlerMockRecorder) GetNotifications(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNotifications", reflect.TypeOf((*MockAPIHandler)(nil).GetNotifications), c)
}

// GetTrending mocks base method.
func (m *MockAPIHandler) GetTrending(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetTrending", c)
}

// GetTrending indicates an expected call of GetTrending.
func (mr *MockAPIHandlerMockRecorder) GetTrending(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrending", reflect.TypeOf((*MockAPIHandler)(nil).GetTrending), c)
}

// HealthCheck mocks base method.
func (m *MockAPIHandler) HealthCheck(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "HealthCheck", c)
}

// HealthCheck indicates an expected call of HealthCheck.
func (mr *MockAPIHandlerMockRecorder) HealthCheck(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HealthCheck", reflect.TypeOf((*MockAPIHandler)(nil).HealthCheck), c)
}

// ListHoldings mocks base method.
func (m *MockAPIHandler) ListHoldings(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ListHoldings", c)
}

// ListHoldings indicates an expected call of ListHoldings.
func (mr *MockAPIHandlerMockRecorder) ListHoldings(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListHoldings", reflect.TypeOf((*MockAPIHandler)(nil).ListHoldings), c)
}

// ListTransactions mocks base method.
func (m *MockAPIHandler) ListTransactions(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ListTransactions", c)
}

// ListTransactions indicates an expected call of ListTransactions.
func (mr *MockAPIHandlerMockRecorder) ListTransactions(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListTransactions", reflect.TypeOf((*MockAPIHandler)(nil).ListTransactions), c)
}

// SetTarget mocks base method.
func (m *MockAPIHandler) SetTarget(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SetTarget", c)
}

// SetTarget indicates an expected call of SetTarget.
func (mr *MockAPIHandlerMockRecorder) SetTarget(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetTarget", reflect.TypeOf((*MockAPIHandler)(nil).SetTarget), c)
}

// SweepPriceTargets mocks base method.
func (m *MockAPIHandler) SweepPriceTargets(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SweepPriceTargets", c)
}

// SweepPriceTargets indicates an expected call of SweepPriceTargets.
func (mr *MockAPIHandlerMockRecorder) SweepPriceTargets(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SweepPriceTargets", reflect.TypeOf((*MockAPIHandler)(nil).SweepPriceTargets), c)
}

// SyncCategories mocks base method.
func (m *MockAPIHandler) SyncCategories(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SyncCategories", c)
}

// SyncCategories indicates an expected call of SyncCategories.
func (mr *MockAPIHandlerMockRecorder) SyncCategories(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncCategories", reflect.TypeOf((*MockAPIHandler)(nil).SyncCategories), c)
}

// SyncCoinsList mocks base method.
func (m *MockAPIHandler) SyncCoinsList(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SyncCoinsList", c)
}

// SyncCoinsList indicates an expected call of SyncCoinsList.
func (mr *MockAPIHandlerMockRecorder) SyncCoinsList(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncCoinsList", reflect.TypeOf((*MockAPIHandler)(nil).SyncCoinsList), c)
}

// SyncExchangeRate mocks base method.
func (m *MockAPIHandler) SyncExchangeRate(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SyncExchangeRate", c)
}

// SyncExchangeRate indicates an expected call of SyncExchangeRate.
func (mr *MockAPIHandlerMockRecorder) SyncExchangeRate(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncExchangeRate", reflect.TypeOf((*MockAPIHandler)(nil).SyncExchangeRate), c)
}

// SyncMarketChart mocks base method.
func (m *MockAPIHandler) SyncMarketChart(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SyncMarketChart", c)
}

// SyncMarketChart indicates an expected call of SyncMarketChart.
func (mr *MockAPIHandlerMockRecorder) SyncMarketChart(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncMarketChart", reflect.TypeOf((*MockAPIHandler)(nil).SyncMarketChart), c)
}

// SyncTrending mocks base method.
func (m *MockAPIHandler) SyncTrending(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "SyncTrending", c)
}

// SyncTrending indicates an expected call of SyncTrending.
func (mr *MockAPIHandlerMockRecorder) SyncTrending(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncTrending", reflect.TypeOf((*MockAPIHandler)(nil).SyncTrending), c)
}
