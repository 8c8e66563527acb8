package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCaptchaVerifier is a mock type for the CaptchaVerifier type
type MockCaptchaVerifier struct {
	mock.Mock
}

type MockCaptchaVerifier_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCaptchaVerifier) EXPECT() *MockCaptchaVerifier_Expecter {
	return &MockCaptchaVerifier_Expecter{mock: &_m.Mock}
}

func (_m *MockCaptchaVerifier) Enabled() bool {
	ret := _m.Called()

	return ret.Bool(0)
}

func (_e *MockCaptchaVerifier_Expecter) Enabled() *mock.Call {
	return _e.mock.On("Enabled")
}

func (_m *MockCaptchaVerifier) Verify(ctx context.Context, token string) (bool, error) {
	ret := _m.Called(ctx, token)

	return ret.Bool(0), ret.Error(1)
}

func (_e *MockCaptchaVerifier_Expecter) Verify(ctx any, token any) *mock.Call {
	return _e.mock.On("Verify", ctx, token)
}

// NewMockCaptchaVerifier creates a new instance of MockCaptchaVerifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCaptchaVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCaptchaVerifier {
	m := &MockCaptchaVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
