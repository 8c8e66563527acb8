package repository

import (
	"context"
	"time"

	"cromptch/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockTokenRepository is a mock type for the TokenRepository type
type MockTokenRepository struct {
	mock.Mock
}

type MockTokenRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenRepository) EXPECT() *MockTokenRepository_Expecter {
	return &MockTokenRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenRepository) Create(ctx context.Context, token *entity.Token) error {
	ret := _m.Called(ctx, token)

	return ret.Error(0)
}

func (_e *MockTokenRepository_Expecter) Create(ctx any, token any) *mock.Call {
	return _e.mock.On("Create", ctx, token)
}

func (_m *MockTokenRepository) FindOwner(ctx context.Context, token string) (*entity.TokenOwner, error) {
	ret := _m.Called(ctx, token)

	owner, _ := ret.Get(0).(*entity.TokenOwner)

	return owner, ret.Error(1)
}

func (_e *MockTokenRepository_Expecter) FindOwner(ctx any, token any) *mock.Call {
	return _e.mock.On("FindOwner", ctx, token)
}

func (_m *MockTokenRepository) Touch(ctx context.Context, token string, at time.Time) error {
	ret := _m.Called(ctx, token, at)

	return ret.Error(0)
}

func (_e *MockTokenRepository_Expecter) Touch(ctx any, token any, at any) *mock.Call {
	return _e.mock.On("Touch", ctx, token, at)
}

func (_m *MockTokenRepository) Delete(ctx context.Context, token string) error {
	ret := _m.Called(ctx, token)

	return ret.Error(0)
}

func (_e *MockTokenRepository_Expecter) Delete(ctx any, token any) *mock.Call {
	return _e.mock.On("Delete", ctx, token)
}

// NewMockTokenRepository creates a new instance of MockTokenRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenRepository {
	m := &MockTokenRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
