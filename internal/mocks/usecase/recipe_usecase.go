package usecase

import (
	"context"

	"cromptch/internal/domain/entity"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecipeUsecase is a mock type for the RecipeUsecase type
type MockRecipeUsecase struct {
	mock.Mock
}

type MockRecipeUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRecipeUsecase) EXPECT() *MockRecipeUsecase_Expecter {
	return &MockRecipeUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockRecipeUsecase) Create(ctx context.Context, author *entity.User, input *entity.RecipeCreation) (*usecase.RecipeDetails, error) {
	ret := _m.Called(ctx, author, input)

	details, _ := ret.Get(0).(*usecase.RecipeDetails)

	return details, ret.Error(1)
}

func (_e *MockRecipeUsecase_Expecter) Create(ctx any, author any, input any) *mock.Call {
	return _e.mock.On("Create", ctx, author, input)
}

func (_m *MockRecipeUsecase) Get(ctx context.Context, id uuid.UUID) (*usecase.RecipeDetails, error) {
	ret := _m.Called(ctx, id)

	details, _ := ret.Get(0).(*usecase.RecipeDetails)

	return details, ret.Error(1)
}

func (_e *MockRecipeUsecase_Expecter) Get(ctx any, id any) *mock.Call {
	return _e.mock.On("Get", ctx, id)
}

func (_m *MockRecipeUsecase) List(ctx context.Context, input usecase.ListRecipesInput) ([]*entity.RecipeMetadata, error) {
	ret := _m.Called(ctx, input)

	recipes, _ := ret.Get(0).([]*entity.RecipeMetadata)

	return recipes, ret.Error(1)
}

func (_e *MockRecipeUsecase_Expecter) List(ctx any, input any) *mock.Call {
	return _e.mock.On("List", ctx, input)
}

func (_m *MockRecipeUsecase) Delete(ctx context.Context, actor *entity.User, id uuid.UUID) error {
	ret := _m.Called(ctx, actor, id)

	return ret.Error(0)
}

func (_e *MockRecipeUsecase_Expecter) Delete(ctx any, actor any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, actor, id)
}

func (_m *MockRecipeUsecase) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	ret := _m.Called(ctx, id)

	png, _ := ret.Get(0).([]byte)

	return png, ret.Error(1)
}

func (_e *MockRecipeUsecase_Expecter) ShareQR(ctx any, id any) *mock.Call {
	return _e.mock.On("ShareQR", ctx, id)
}

// NewMockRecipeUsecase creates a new instance of MockRecipeUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRecipeUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecipeUsecase {
	m := &MockRecipeUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
