// Mocks for the interfaces in publisher.go

package mocks

import (
	context "context"
	reflect "reflect"

	domain "github.com/coinfolio/coinfolio-sync/internal/domain"
	gomock "github.com/golang/mock/gomock"
)

// MockPublisher is a mock of Publisher interface.
type MockPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockPublisherMockRecorder
}

// MockPublisherMockRecorder is the mock recorder for MockPublisher.
type MockPublisherMockRecorder struct {
	mock *MockPublisher
}

// NewMockPublisher creates a new mock instance.
func NewMockPublisher(ctrl *gomock.Controller) *MockPublisher {
	mock := &MockPublisher{ctrl: ctrl}
	mock.recorder = &MockPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPublisher) EXPECT() *MockPublisherMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockPublisher) Close() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Close")
}

// Close indicates an expected call of Close.
func (mr *MockPublisherMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockPublisher)(nil).Close))
}

// PublishJobCompleted mocks base method.
func (m *MockPublisher) PublishJobCompleted(ctx context.Context, event *domain.JobCompletedEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishJobCompleted", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishJobCompleted indicates an expected call of PublishJobCompleted.
func (mr *MockPublisherMockRecorder) PublishJobCompleted(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishJobCompleted", reflect.TypeOf((*MockPublisher)(nil).PublishJobCompleted), ctx, event)
}

// PublishNotification mocks base method.
func (m *MockPublisher) PublishNotification(ctx context.Context, event *domain.NotificationEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublishNotification", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// PublishNotification indicates an expected call of PublishNotification.
func (mr *MockPublisherMockRecorder) PublishNotification(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublishNotification", reflect.TypeOf((*MockPublisher)(nil).PublishNotification), ctx, event)
}
