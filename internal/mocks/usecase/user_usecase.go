// Package usecase holds testify mocks of the usecase interfaces.
package usecase

import (
	"context"

	"cromptch/internal/domain/entity"
	"cromptch/internal/usecase"

	"github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock type for the UserUsecase type
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	ret := _m.Called(ctx, input)

	user, _ := ret.Get(0).(*entity.User)

	return user, ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) Register(ctx any, input any) *mock.Call {
	return _e.mock.On("Register", ctx, input)
}

func (_m *MockUserUsecase) Verify(ctx context.Context, email, password string) (*entity.User, error) {
	ret := _m.Called(ctx, email, password)

	user, _ := ret.Get(0).(*entity.User)

	return user, ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) Verify(ctx any, email any, password any) *mock.Call {
	return _e.mock.On("Verify", ctx, email, password)
}

func (_m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	ret := _m.Called(ctx, input)

	out, _ := ret.Get(0).(*usecase.LoginOutput)

	return out, ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) Login(ctx any, input any) *mock.Call {
	return _e.mock.On("Login", ctx, input)
}

func (_m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	ret := _m.Called(ctx)

	users, _ := ret.Get(0).([]*entity.User)

	return users, ret.Error(1)
}

func (_e *MockUserUsecase_Expecter) ListUsers(ctx any) *mock.Call {
	return _e.mock.On("ListUsers", ctx)
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
