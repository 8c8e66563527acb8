package service

import (
	"github.com/stretchr/testify/mock"
)

// MockTokenGenerator is a mock type for the TokenGenerator type
type MockTokenGenerator struct {
	mock.Mock
}

type MockTokenGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenGenerator) EXPECT() *MockTokenGenerator_Expecter {
	return &MockTokenGenerator_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenGenerator) Generate() (string, error) {
	ret := _m.Called()

	return ret.String(0), ret.Error(1)
}

func (_e *MockTokenGenerator_Expecter) Generate() *mock.Call {
	return _e.mock.On("Generate")
}

// NewMockTokenGenerator creates a new instance of MockTokenGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenGenerator {
	m := &MockTokenGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
