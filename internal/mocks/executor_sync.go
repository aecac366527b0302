// Mocks for the interfaces in executor.go

package mocks

import (
	context "context"
	reflect "reflect"

	jobs "github.com/coinfolio/coinfolio-sync/internal/jobs"
	workflows "github.com/coinfolio/coinfolio-sync/internal/workflows"
	gomock "github.com/golang/mock/gomock"
)

// MockSyncExecutor is a mock of Executor interface.
type MockSyncExecutor struct {
	ctrl     *gomock.Controller
	recorder *MockSyncExecutorMockRecorder
}

// MockSyncExecutorMockRecorder is the mock recorder for MockSyncExecutor.
type MockSyncExecutorMockRecorder struct {
	mock *MockSyncExecutor
}

// NewMockSyncExecutor creates a new mock instance.
func NewMockSyncExecutor(ctrl *gomock.Controller) *MockSyncExecutor {
	mock := &MockSyncExecutor{ctrl: ctrl}
	mock.recorder = &MockSyncExecutorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSyncExecutor) EXPECT() *MockSyncExecutorMockRecorder {
	return m.recorder
}

// RunJob mocks base method.
func (m *MockSyncExecutor) RunJob(ctx context.Context, req workflows.JobRequest) (*jobs.RunResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RunJob", ctx, req)
	ret0, _ := ret[0].(*jobs.RunResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RunJob indicates an expected call of RunJob.
func (mr *MockSyncExecutorMockRecorder) RunJob(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RunJob", reflect.TypeOf((*MockSyncExecutor)(nil).RunJob), ctx, req)
}
