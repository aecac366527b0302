// Mocks for the interfaces in runner.go

package mocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/coinfolio/coinfolio-sync/internal/domain"
	jobs "github.com/coinfolio/coinfolio-sync/internal/jobs"
	gomock "github.com/golang/mock/gomock"
)

// MockRunner is a mock of Runner interface.
type MockRunner struct {
	ctrl     *gomock.Controller
	recorder *MockRunnerMockRecorder
}

// MockRunnerMockRecorder is the mock recorder for MockRunner.
type MockRunnerMockRecorder struct {
	mock *MockRunner
}

// NewMockRunner creates a new mock instance.
func NewMockRunner(ctrl *gomock.Controller) *MockRunner {
	mock := &MockRunner{ctrl: ctrl}
	mock.recorder = &MockRunnerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRunner) EXPECT() *MockRunnerMockRecorder {
	return m.recorder
}

// Jobs mocks base method.
func (m *MockRunner) Jobs() []domain.JobName {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Jobs")
	ret0, _ := ret[0].([]domain.JobName)
	return ret0
}

// Jobs indicates an expected call of Jobs.
func (mr *MockRunnerMockRecorder) Jobs() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Jobs", reflect.TypeOf((*MockRunner)(nil).Jobs))
}

// Run mocks base method.
func (m *MockRunner) Run(ctx context.Context, name domain.JobName, params domain.JobParams, triggeredBy string) (*jobs.RunResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Run", ctx, name, params, triggeredBy)
	ret0, _ := ret[0].(*jobs.RunResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Run indicates an expected call of Run.
func (mr *MockRunnerMockRecorder) Run(ctx, name, params, triggeredBy interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Run", reflect.TypeOf((*MockRunner)(nil).Run), ctx, name, params, triggeredBy)
}
