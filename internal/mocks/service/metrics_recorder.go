package service

import (
	"github.com/stretchr/testify/mock"
)

// MockMetricsRecorder is a mock type for the MetricsRecorder type
type MockMetricsRecorder struct {
	mock.Mock
}

func (_m *MockMetricsRecorder) UserRegistered() { _m.Called() }
func (_m *MockMetricsRecorder) LoginSucceeded() { _m.Called() }
func (_m *MockMetricsRecorder) RecipeCreated()  { _m.Called() }
func (_m *MockMetricsRecorder) RecipeDeleted()  { _m.Called() }
func (_m *MockMetricsRecorder) ImageUploaded()  { _m.Called() }

// NewMockMetricsRecorder creates a new instance of MockMetricsRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMetricsRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetricsRecorder {
	m := &MockMetricsRecorder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
