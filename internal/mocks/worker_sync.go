// Mocks for the interfaces in worker.go

package mocks

import (
	reflect "reflect"

	jobs "github.com/coinfolio/coinfolio-sync/internal/jobs"
	workflows "github.com/coinfolio/coinfolio-sync/internal/workflows"
	gomock "github.com/golang/mock/gomock"
	workflow "go.temporal.io/sdk/workflow"
)

// MockSyncWorker is a mock of WorkerSync interface.
type MockSyncWorker struct {
	ctrl     *gomock.Controller
	recorder *MockSyncWorkerMockRecorder
}

// MockSyncWorkerMockRecorder is the mock recorder for MockSyncWorker.
type MockSyncWorkerMockRecorder struct {
	mock *MockSyncWorker
}

// NewMockSyncWorker creates a new mock instance.
func NewMockSyncWorker(ctrl *gomock.Controller) *MockSyncWorker {
	mock := &MockSyncWorker{ctrl: ctrl}
	mock.recorder = &MockSyncWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSyncWorker) EXPECT() *MockSyncWorkerMockRecorder {
	return m.recorder
}

// SyncJob mocks base method.
func (m *MockSyncWorker) SyncJob(ctx workflow.Context, req workflows.JobRequest) (*jobs.RunResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SyncJob", ctx, req)
	ret0, _ := ret[0].(*jobs.RunResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SyncJob indicates an expected call of SyncJob.
func (mr *MockSyncWorkerMockRecorder) SyncJob(ctx, req interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SyncJob", reflect.TypeOf((*MockSyncWorker)(nil).SyncJob), ctx, req)
}
