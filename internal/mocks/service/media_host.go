package service

import (
	"context"
	"io"

	"cromptch/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockMediaHost is a mock type for the MediaHost type
type MockMediaHost struct {
	mock.Mock
}

type MockMediaHost_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMediaHost) EXPECT() *MockMediaHost_Expecter {
	return &MockMediaHost_Expecter{mock: &_m.Mock}
}

func (_m *MockMediaHost) Upload(ctx context.Context, filename string, content io.Reader) (*service.UploadedMedia, error) {
	ret := _m.Called(ctx, filename, content)

	uploaded, _ := ret.Get(0).(*service.UploadedMedia)

	return uploaded, ret.Error(1)
}

func (_e *MockMediaHost_Expecter) Upload(ctx any, filename any, content any) *mock.Call {
	return _e.mock.On("Upload", ctx, filename, content)
}

func (_m *MockMediaHost) Fetch(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	ret := _m.Called(ctx, id)

	object, _ := ret.Get(0).(*service.MediaObject)

	return object, ret.Error(1)
}

func (_e *MockMediaHost_Expecter) Fetch(ctx any, id any) *mock.Call {
	return _e.mock.On("Fetch", ctx, id)
}

func (_m *MockMediaHost) Thumbnail(ctx context.Context, id uuid.UUID) (*service.MediaObject, error) {
	ret := _m.Called(ctx, id)

	object, _ := ret.Get(0).(*service.MediaObject)

	return object, ret.Error(1)
}

func (_e *MockMediaHost_Expecter) Thumbnail(ctx any, id any) *mock.Call {
	return _e.mock.On("Thumbnail", ctx, id)
}

// NewMockMediaHost creates a new instance of MockMediaHost. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMediaHost(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMediaHost {
	m := &MockMediaHost{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
