package repository

import (
	"context"

	"cromptch/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockImageRepository is a mock type for the ImageRepository type
type MockImageRepository struct {
	mock.Mock
}

type MockImageRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockImageRepository) EXPECT() *MockImageRepository_Expecter {
	return &MockImageRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockImageRepository) Create(ctx context.Context, image *entity.Image) error {
	ret := _m.Called(ctx, image)

	return ret.Error(0)
}

func (_e *MockImageRepository_Expecter) Create(ctx any, image any) *mock.Call {
	return _e.mock.On("Create", ctx, image)
}

// NewMockImageRepository creates a new instance of MockImageRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockImageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageRepository {
	m := &MockImageRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
