// Mocks for the interfaces in orchestrator.go

package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	client "go.temporal.io/sdk/client"
)

// MockScheduleOrchestrator is a mock of ScheduleOrchestrator interface.
type MockScheduleOrchestrator struct {
	ctrl     *gomock.Controller
	recorder *MockScheduleOrchestratorMockRecorder
}

// MockScheduleOrchestratorMockRecorder is the mock recorder for MockScheduleOrchestrator.
type MockScheduleOrchestratorMockRecorder struct {
	mock *MockScheduleOrchestrator
}

// NewMockScheduleOrchestrator creates a new mock instance.
func NewMockScheduleOrchestrator(ctrl *gomock.Controller) *MockScheduleOrchestrator {
	mock := &MockScheduleOrchestrator{ctrl: ctrl}
	mock.recorder = &MockScheduleOrchestratorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockScheduleOrchestrator) EXPECT() *MockScheduleOrchestratorMockRecorder {
	return m.recorder
}

// CreateSchedule mocks base method.
func (m *MockScheduleOrchestrator) CreateSchedule(ctx context.Context, options client.ScheduleOptions) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateSchedule", ctx, options)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateSchedule indicates an expected call of CreateSchedule.
func (mr *MockScheduleOrchestratorMockRecorder) CreateSchedule(ctx, options interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateSchedule", reflect.TypeOf((*MockScheduleOrchestrator)(nil).CreateSchedule), ctx, options)
}

// UpdateSchedule mocks base method.
func (m *MockScheduleOrchestrator) UpdateSchedule(ctx context.Context, options client.ScheduleOptions) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateSchedule", ctx, options)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateSchedule indicates an expected call of UpdateSchedule.
func (mr *MockScheduleOrchestratorMockRecorder) UpdateSchedule(ctx, options interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateSchedule", reflect.TypeOf((*MockScheduleOrchestrator)(nil).UpdateSchedule), ctx, options)
}
