// Mocks for the interfaces in store.go

package mocks

import (
	context "context"
	reflect "reflect"
	time "time"

	domain "github.com/coinfolio/coinfolio-sync/internal/domain"
	store "github.com/coinfolio/coinfolio-sync/internal/store"
	schema "github.com/coinfolio/coinfolio-sync/internal/store/schema"
	gomock "github.com/golang/mock/gomock"
	decimal "github.com/shopspring/decimal"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// AcquireJobLock mocks base method.
func (m *MockStore) AcquireJobLock(ctx context.Context, name string, owner string, ttl time.Duration) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AcquireJobLock", ctx, name, owner, ttl)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AcquireJobLock indicates an expected call of AcquireJobLock.
func (mr *MockStoreMockRecorder) AcquireJobLock(ctx, name, owner, ttl interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AcquireJobLock", reflect.TypeOf((*MockStore)(nil).AcquireJobLock), ctx, name, owner, ttl)
}

// AddUserCoinTransaction mocks base method.
func (m *MockStore) AddUserCoinTransaction(ctx context.Context, input store.CreateTransactionInput, recompute store.RecomputeFunc) (*schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddUserCoinTransaction", ctx, input, recompute)
	ret0, _ := ret[0].(*schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AddUserCoinTransaction indicates an expected call of AddUserCoinTransaction.
func (mr *MockStoreMockRecorder) AddUserCoinTransaction(ctx, input, recompute interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddUserCoinTransaction", reflect.TypeOf((*MockStore)(nil).AddUserCoinTransaction), ctx, input, recompute)
}

// CreateJobRun mocks base method.
func (m *MockStore) CreateJobRun(ctx context.Context, run *schema.JobRun) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateJobRun", ctx, run)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateJobRun indicates an expected call of CreateJobRun.
func (mr *MockStoreMockRecorder) CreateJobRun(ctx, run interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateJobRun", reflect.TypeOf((*MockStore)(nil).CreateJobRun), ctx, run)
}

// CreateNotifications mocks base method.
func (m *MockStore) CreateNotifications(ctx context.Context, notifications []schema.Notification) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateNotifications", ctx, notifications)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateNotifications indicates an expected call of CreateNotifications.
func (mr *MockStoreMockRecorder) CreateNotifications(ctx, notifications interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateNotifications", reflect.TypeOf((*MockStore)(nil).CreateNotifications), ctx, notifications)
}

// DeleteNotificationsBefore mocks base method.
func (m *MockStore) DeleteNotificationsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteNotificationsBefore", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteNotificationsBefore indicates an expected call of DeleteNotificationsBefore.
func (mr *MockStoreMockRecorder) DeleteNotificationsBefore(ctx, cutoff interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteNotificationsBefore", reflect.TypeOf((*MockStore)(nil).DeleteNotificationsBefore), ctx, cutoff)
}

// DeleteUserCoinTransaction mocks base method.
func (m *MockStore) DeleteUserCoinTransaction(ctx context.Context, userID string, transactionID int64, recompute store.RecomputeFunc) (*schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DeleteUserCoinTransaction", ctx, userID, transactionID, recompute)
	ret0, _ := ret[0].(*schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DeleteUserCoinTransaction indicates an expected call of DeleteUserCoinTransaction.
func (mr *MockStoreMockRecorder) DeleteUserCoinTransaction(ctx, userID, transactionID, recompute interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DeleteUserCoinTransaction", reflect.TypeOf((*MockStore)(nil).DeleteUserCoinTransaction), ctx, userID, transactionID, recompute)
}

// FinishJobRun mocks base method.
func (m *MockStore) FinishJobRun(ctx context.Context, input store.FinishJobRunInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FinishJobRun", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// FinishJobRun indicates an expected call of FinishJobRun.
func (mr *MockStoreMockRecorder) FinishJobRun(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FinishJobRun", reflect.TypeOf((*MockStore)(nil).FinishJobRun), ctx, input)
}

// GetCategories mocks base method.
func (m *MockStore) GetCategories(ctx context.Context) ([]schema.Category, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCategories", ctx)
	ret0, _ := ret[0].([]schema.Category)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCategories indicates an expected call of GetCategories.
func (mr *MockStoreMockRecorder) GetCategories(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCategories", reflect.TypeOf((*MockStore)(nil).GetCategories), ctx)
}

// GetCoin mocks base method.
func (m *MockStore) GetCoin(ctx context.Context, id string) (*schema.Coin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCoin", ctx, id)
	ret0, _ := ret[0].(*schema.Coin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCoin indicates an expected call of GetCoin.
func (mr *MockStoreMockRecorder) GetCoin(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoin", reflect.TypeOf((*MockStore)(nil).GetCoin), ctx, id)
}

// GetCoinIDs mocks base method.
func (m *MockStore) GetCoinIDs(ctx context.Context) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCoinIDs", ctx)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCoinIDs indicates an expected call of GetCoinIDs.
func (mr *MockStoreMockRecorder) GetCoinIDs(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoinIDs", reflect.TypeOf((*MockStore)(nil).GetCoinIDs), ctx)
}

// GetCoinInfo mocks base method.
func (m *MockStore) GetCoinInfo(ctx context.Context, id string) (*schema.CoinsListIDMap, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCoinInfo", ctx, id)
	ret0, _ := ret[0].(*schema.CoinsListIDMap)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCoinInfo indicates an expected call of GetCoinInfo.
func (mr *MockStoreMockRecorder) GetCoinInfo(ctx, id interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCoinInfo", reflect.TypeOf((*MockStore)(nil).GetCoinInfo), ctx, id)
}

// GetExchangeRate mocks base method.
func (m *MockStore) GetExchangeRate(ctx context.Context) (*schema.ExchangeRate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetExchangeRate", ctx)
	ret0, _ := ret[0].(*schema.ExchangeRate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetExchangeRate indicates an expected call of GetExchangeRate.
func (mr *MockStoreMockRecorder) GetExchangeRate(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetExchangeRate", reflect.TypeOf((*MockStore)(nil).GetExchangeRate), ctx)
}

// GetGlobalMetrics mocks base method.
func (m *MockStore) GetGlobalMetrics(ctx context.Context) (*schema.GlobalMetrics, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetGlobalMetrics", ctx)
	ret0, _ := ret[0].(*schema.GlobalMetrics)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetGlobalMetrics indicates an expected call of GetGlobalMetrics.
func (mr *MockStoreMockRecorder) GetGlobalMetrics(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetGlobalMetrics", reflect.TypeOf((*MockStore)(nil).GetGlobalMetrics), ctx)
}

// GetKeyValue mocks base method.
func (m *MockStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetKeyValue", ctx, key)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetKeyValue indicates an expected call of GetKeyValue.
func (mr *MockStoreMockRecorder) GetKeyValue(ctx, key interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetKeyValue", reflect.TypeOf((*MockStore)(nil).GetKeyValue), ctx, key)
}

// GetMarketChart mocks base method.
func (m *MockStore) GetMarketChart(ctx context.Context, coinID string) (*schema.MarketChart, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMarketChart", ctx, coinID)
	ret0, _ := ret[0].(*schema.MarketChart)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetMarketChart indicates an expected call of GetMarketChart.
func (mr *MockStoreMockRecorder) GetMarketChart(ctx, coinID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMarketChart", reflect.TypeOf((*MockStore)(nil).GetMarketChart), ctx, coinID)
}

// GetNewsArticles mocks base method.
func (m *MockStore) GetNewsArticles(ctx context.Context, limit int) ([]schema.NewsArticle, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNewsArticles", ctx, limit)
	ret0, _ := ret[0].([]schema.NewsArticle)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNewsArticles indicates an expected call of GetNewsArticles.
func (mr *MockStoreMockRecorder) GetNewsArticles(ctx, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNewsArticles", reflect.TypeOf((*MockStore)(nil).GetNewsArticles), ctx, limit)
}

// GetNotifications mocks base method.
func (m *MockStore) GetNotifications(ctx context.Context, userID string, limit int) ([]schema.Notification, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetNotifications", ctx, userID, limit)
	ret0, _ := ret[0].([]schema.Notification)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetNotifications indicates an expected call of GetNotifications.
func (mr *MockStoreMockRecorder) GetNotifications(ctx, userID, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetNotifications", reflect.TypeOf((*MockStore)(nil).GetNotifications), ctx, userID, limit)
}

// GetPriceTargetHoldings mocks base method.
func (m *MockStore) GetPriceTargetHoldings(ctx context.Context) ([]schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetPriceTargetHoldings", ctx)
	ret0, _ := ret[0].([]schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetPriceTargetHoldings indicates an expected call of GetPriceTargetHoldings.
func (mr *MockStoreMockRecorder) GetPriceTargetHoldings(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetPriceTargetHoldings", reflect.TypeOf((*MockStore)(nil).GetPriceTargetHoldings), ctx)
}

// GetRecentJobRuns mocks base method.
func (m *MockStore) GetRecentJobRuns(ctx context.Context, jobName string, limit int) ([]schema.JobRun, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetRecentJobRuns", ctx, jobName, limit)
	ret0, _ := ret[0].([]schema.JobRun)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetRecentJobRuns indicates an expected call of GetRecentJobRuns.
func (mr *MockStoreMockRecorder) GetRecentJobRuns(ctx, jobName, limit interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetRecentJobRuns", reflect.TypeOf((*MockStore)(nil).GetRecentJobRuns), ctx, jobName, limit)
}

// GetTrendingCoins mocks base method.
func (m *MockStore) GetTrendingCoins(ctx context.Context) ([]schema.TrendingCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetTrendingCoins", ctx)
	ret0, _ := ret[0].([]schema.TrendingCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetTrendingCoins indicates an expected call of GetTrendingCoins.
func (mr *MockStoreMockRecorder) GetTrendingCoins(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTrendingCoins", reflect.TypeOf((*MockStore)(nil).GetTrendingCoins), ctx)
}

// GetUserCoin mocks base method.
func (m *MockStore) GetUserCoin(ctx context.Context, userID string, coinID string) (*schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserCoin", ctx, userID, coinID)
	ret0, _ := ret[0].(*schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserCoin indicates an expected call of GetUserCoin.
func (mr *MockStoreMockRecorder) GetUserCoin(ctx, userID, coinID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserCoin", reflect.TypeOf((*MockStore)(nil).GetUserCoin), ctx, userID, coinID)
}

// GetUserCoinTransactions mocks base method.
func (m *MockStore) GetUserCoinTransactions(ctx context.Context, userCoinID int64) ([]schema.UserCoinTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserCoinTransactions", ctx, userCoinID)
	ret0, _ := ret[0].([]schema.UserCoinTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserCoinTransactions indicates an expected call of GetUserCoinTransactions.
func (mr *MockStoreMockRecorder) GetUserCoinTransactions(ctx, userCoinID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserCoinTransactions", reflect.TypeOf((*MockStore)(nil).GetUserCoinTransactions), ctx, userCoinID)
}

// GetUserCoins mocks base method.
func (m *MockStore) GetUserCoins(ctx context.Context, userID string) ([]schema.UserCoin, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetUserCoins", ctx, userID)
	ret0, _ := ret[0].([]schema.UserCoin)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetUserCoins indicates an expected call of GetUserCoins.
func (mr *MockStoreMockRecorder) GetUserCoins(ctx, userID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetUserCoins", reflect.TypeOf((*MockStore)(nil).GetUserCoins), ctx, userID)
}

// HasRecentNotification mocks base method.
func (m *MockStore) HasRecentNotification(ctx context.Context, userID string, coinID string, kind schema.NotificationKind, since time.Time) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasRecentNotification", ctx, userID, coinID, kind, since)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HasRecentNotification indicates an expected call of HasRecentNotification.
func (mr *MockStoreMockRecorder) HasRecentNotification(ctx, userID, coinID, kind, since interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasRecentNotification", reflect.TypeOf((*MockStore)(nil).HasRecentNotification), ctx, userID, coinID, kind, since)
}

// ReleaseJobLock mocks base method.
func (m *MockStore) ReleaseJobLock(ctx context.Context, name string, owner string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReleaseJobLock", ctx, name, owner)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReleaseJobLock indicates an expected call of ReleaseJobLock.
func (mr *MockStoreMockRecorder) ReleaseJobLock(ctx, name, owner interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReleaseJobLock", reflect.TypeOf((*MockStore)(nil).ReleaseJobLock), ctx, name, owner)
}

// ReplaceCategories mocks base method.
func (m *MockStore) ReplaceCategories(ctx context.Context, categories []schema.Category) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceCategories", ctx, categories)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceCategories indicates an expected call of ReplaceCategories.
func (mr *MockStoreMockRecorder) ReplaceCategories(ctx, categories interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceCategories", reflect.TypeOf((*MockStore)(nil).ReplaceCategories), ctx, categories)
}

// ReplaceNewsArticles mocks base method.
func (m *MockStore) ReplaceNewsArticles(ctx context.Context, articles []schema.NewsArticle) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceNewsArticles", ctx, articles)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceNewsArticles indicates an expected call of ReplaceNewsArticles.
func (mr *MockStoreMockRecorder) ReplaceNewsArticles(ctx, articles interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceNewsArticles", reflect.TypeOf((*MockStore)(nil).ReplaceNewsArticles), ctx, articles)
}

// ReplaceTrendingCoins mocks base method.
func (m *MockStore) ReplaceTrendingCoins(ctx context.Context, coins []schema.TrendingCoin) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ReplaceTrendingCoins", ctx, coins)
	ret0, _ := ret[0].(error)
	return ret0
}

// ReplaceTrendingCoins indicates an expected call of ReplaceTrendingCoins.
func (mr *MockStoreMockRecorder) ReplaceTrendingCoins(ctx, coins interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ReplaceTrendingCoins", reflect.TypeOf((*MockStore)(nil).ReplaceTrendingCoins), ctx, coins)
}

// SaveExchangeRate mocks base method.
func (m *MockStore) SaveExchangeRate(ctx context.Context, eur decimal.Decimal, uah decimal.Decimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveExchangeRate", ctx, eur, uah)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveExchangeRate indicates an expected call of SaveExchangeRate.
func (mr *MockStoreMockRecorder) SaveExchangeRate(ctx, eur, uah interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveExchangeRate", reflect.TypeOf((*MockStore)(nil).SaveExchangeRate), ctx, eur, uah)
}

// SaveGlobalMetrics mocks base method.
func (m *MockStore) SaveGlobalMetrics(ctx context.Context, metrics schema.GlobalMetrics) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SaveGlobalMetrics", ctx, metrics)
	ret0, _ := ret[0].(error)
	return ret0
}

// SaveGlobalMetrics indicates an expected call of SaveGlobalMetrics.
func (mr *MockStoreMockRecorder) SaveGlobalMetrics(ctx, metrics interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SaveGlobalMetrics", reflect.TypeOf((*MockStore)(nil).SaveGlobalMetrics), ctx, metrics)
}

// SetKeyValue mocks base method.
func (m *MockStore) SetKeyValue(ctx context.Context, key string, value string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetKeyValue", ctx, key, value)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetKeyValue indicates an expected call of SetKeyValue.
func (mr *MockStoreMockRecorder) SetKeyValue(ctx, key, value interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetKeyValue", reflect.TypeOf((*MockStore)(nil).SetKeyValue), ctx, key, value)
}

// UpdateDesiredSellPrice mocks base method.
func (m *MockStore) UpdateDesiredSellPrice(ctx context.Context, userID string, coinID string, price decimal.NullDecimal) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateDesiredSellPrice", ctx, userID, coinID, price)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateDesiredSellPrice indicates an expected call of UpdateDesiredSellPrice.
func (mr *MockStoreMockRecorder) UpdateDesiredSellPrice(ctx, userID, coinID, price interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateDesiredSellPrice", reflect.TypeOf((*MockStore)(nil).UpdateDesiredSellPrice), ctx, userID, coinID, price)
}

// UpsertCoins mocks base method.
func (m *MockStore) UpsertCoins(ctx context.Context, inputs []store.UpsertCoinInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertCoins", ctx, inputs)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertCoins indicates an expected call of UpsertCoins.
func (mr *MockStoreMockRecorder) UpsertCoins(ctx, inputs interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertCoins", reflect.TypeOf((*MockStore)(nil).UpsertCoins), ctx, inputs)
}

// UpsertMarketChart mocks base method.
func (m *MockStore) UpsertMarketChart(ctx context.Context, coinID string, days domain.ChartDays, prices [][]float64, updatedAt time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertMarketChart", ctx, coinID, days, prices, updatedAt)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertMarketChart indicates an expected call of UpsertMarketChart.
func (mr *MockStoreMockRecorder) UpsertMarketChart(ctx, coinID, days, prices, updatedAt interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertMarketChart", reflect.TypeOf((*MockStore)(nil).UpsertMarketChart), ctx, coinID, days, prices, updatedAt)
}

// UpsertUser mocks base method.
func (m *MockStore) UpsertUser(ctx context.Context, input store.UpsertUserInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpsertUser", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpsertUser indicates an expected call of UpsertUser.
func (mr *MockStoreMockRecorder) UpsertUser(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpsertUser", reflect.TypeOf((*MockStore)(nil).UpsertUser), ctx, input)
}
