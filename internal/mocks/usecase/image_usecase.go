package usecase

import (
	"context"
	"io"

	"cromptch/internal/domain/entity"
	"cromptch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockImageUsecase is a mock type for the ImageUsecase type
type MockImageUsecase struct {
	mock.Mock
}

type MockImageUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockImageUsecase) EXPECT() *MockImageUsecase_Expecter {
	return &MockImageUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockImageUsecase) Upload(ctx context.Context, owner *entity.User, filename string, content io.Reader) (*entity.Image, error) {
	ret := _m.Called(ctx, owner, filename, content)

	image, _ := ret.Get(0).(*entity.Image)

	return image, ret.Error(1)
}

func (_e *MockImageUsecase_Expecter) Upload(ctx any, owner any, filename any, content any) *mock.Call {
	return _e.mock.On("Upload", ctx, owner, filename, content)
}

func (_m *MockImageUsecase) Fetch(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	ret := _m.Called(ctx, id)

	object, _ := ret.Get(0).(*service.MediaObject)

	return object, ret.Error(1)
}

func (_e *MockImageUsecase_Expecter) Fetch(ctx any, id any) *mock.Call {
	return _e.mock.On("Fetch", ctx, id)
}

func (_m *MockImageUsecase) Thumbnail(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	ret := _m.Called(ctx, id)

	object, _ := ret.Get(0).(*service.MediaObject)

	return object, ret.Error(1)
}

func (_e *MockImageUsecase_Expecter) Thumbnail(ctx any, id any) *mock.Call {
	return _e.mock.On("Thumbnail", ctx, id)
}

// NewMockImageUsecase creates a new instance of MockImageUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockImageUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageUsecase {
	m := &MockImageUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
