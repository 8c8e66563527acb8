package repository

import (
	"context"

	"cromptch/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock type for the TransactionManager type
type MockTransactionManager struct {
	mock.Mock
}

type MockTransactionManager_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionManager) EXPECT() *MockTransactionManager_Expecter {
	return &MockTransactionManager_Expecter{mock: &_m.Mock}
}

func (_m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return ret.Error(0)
}

func (_e *MockTransactionManager_Expecter) Execute(ctx any, fn any) *mock.Call {
	return _e.mock.On("Execute", ctx, fn)
}

// RunWith makes Execute invoke fn with factory and return fn's error, like a committed
// or rolled back transaction would.
func (_m *MockTransactionManager) RunWith(ctx any, factory repository.RepositoryFactory) *mock.Call {
	return _m.On("Execute", ctx, mock.Anything).Return(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		},
	)
}

// NewMockTransactionManager creates a new instance of MockTransactionManager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRepositoryFactory is a mock type for the RepositoryFactory type
type MockRepositoryFactory struct {
	mock.Mock
}

func (_m *MockRepositoryFactory) UserRepo() repository.UserRepository {
	ret := _m.Called()

	repo, _ := ret.Get(0).(repository.UserRepository)

	return repo
}

func (_m *MockRepositoryFactory) TokenRepo() repository.TokenRepository {
	ret := _m.Called()

	repo, _ := ret.Get(0).(repository.TokenRepository)

	return repo
}

func (_m *MockRepositoryFactory) RecipeRepo() repository.RecipeRepository {
	ret := _m.Called()

	repo, _ := ret.Get(0).(repository.RecipeRepository)

	return repo
}

func (_m *MockRepositoryFactory) ImageRepo() repository.ImageRepository {
	ret := _m.Called()

	repo, _ := ret.Get(0).(repository.ImageRepository)

	return repo
}

// NewMockRepositoryFactory creates a new instance of MockRepositoryFactory. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
