package service

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GenerateRecipeQR(recipeID uuid.UUID) ([]byte, error) {
	ret := _m.Called(recipeID)

	png, _ := ret.Get(0).([]byte)

	return png, ret.Error(1)
}

func (_e *MockQRCodeService_Expecter) GenerateRecipeQR(recipeID any) *mock.Call {
	return _e.mock.On("GenerateRecipeQR", recipeID)
}

func (_m *MockQRCodeService) RecipeURL(recipeID uuid.UUID) string {
	ret := _m.Called(recipeID)

	return ret.String(0)
}

func (_e *MockQRCodeService_Expecter) RecipeURL(recipeID any) *mock.Call {
	return _e.mock.On("RecipeURL", recipeID)
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
