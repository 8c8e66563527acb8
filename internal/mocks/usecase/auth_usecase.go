package usecase

import (
	"context"

	"cromptch/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockAuthUsecase) IssueToken(ctx context.Context, user *entity.User) (string, error) {
	ret := _m.Called(ctx, user)

	return ret.String(0), ret.Error(1)
}

func (_e *MockAuthUsecase_Expecter) IssueToken(ctx any, user any) *mock.Call {
	return _e.mock.On("IssueToken", ctx, user)
}

func (_m *MockAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	ret := _m.Called(ctx, token)

	user, _ := ret.Get(0).(*entity.User)

	return user, ret.Error(1)
}

func (_e *MockAuthUsecase_Expecter) Authenticate(ctx any, token any) *mock.Call {
	return _e.mock.On("Authenticate", ctx, token)
}

func (_m *MockAuthUsecase) RevokeToken(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)

	return ret.Error(0)
}

func (_e *MockAuthUsecase_Expecter) RevokeToken(ctx any, token any) *mock.Call {
	return _e.mock.On("RevokeToken", ctx, token)
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
