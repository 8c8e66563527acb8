package repository

import (
	"context"

	"cromptch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository is a mock type for the RecipeRepository type
type MockRecipeRepository struct {
	mock.Mock
}

type MockRecipeRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRecipeRepository) EXPECT() *MockRecipeRepository_Expecter {
	return &MockRecipeRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockRecipeRepository) CreateMetadata(ctx context.Context, meta *entity.RecipeMetadata) error {
	ret := _m.Called(ctx, meta)

	return ret.Error(0)
}

func (_e *MockRecipeRepository_Expecter) CreateMetadata(ctx any, meta any) *mock.Call {
	return _e.mock.On("CreateMetadata", ctx, meta)
}

func (_m *MockRecipeRepository) CreateIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []entity.Ingredient) error {
	ret := _m.Called(ctx, recipeID, ingredients)

	return ret.Error(0)
}

func (_e *MockRecipeRepository_Expecter) CreateIngredients(ctx any, recipeID any, ingredients any) *mock.Call {
	return _e.mock.On("CreateIngredients", ctx, recipeID, ingredients)
}

func (_m *MockRecipeRepository) CreateSteps(ctx context.Context, recipeID uuid.UUID, steps []entity.Step) error {
	ret := _m.Called(ctx, recipeID, steps)

	return ret.Error(0)
}

func (_e *MockRecipeRepository_Expecter) CreateSteps(ctx any, recipeID any, steps any) *mock.Call {
	return _e.mock.On("CreateSteps", ctx, recipeID, steps)
}

func (_m *MockRecipeRepository) FindMetadata(ctx context.Context, id uuid.UUID) (*entity.RecipeMetadata, error) {
	ret := _m.Called(ctx, id)

	meta, _ := ret.Get(0).(*entity.RecipeMetadata)

	return meta, ret.Error(1)
}

func (_e *MockRecipeRepository_Expecter) FindMetadata(ctx any, id any) *mock.Call {
	return _e.mock.On("FindMetadata", ctx, id)
}

func (_m *MockRecipeRepository) FindIngredients(ctx context.Context, recipeID uuid.UUID) ([]entity.Ingredient, error) {
	ret := _m.Called(ctx, recipeID)

	ingredients, _ := ret.Get(0).([]entity.Ingredient)

	return ingredients, ret.Error(1)
}

func (_e *MockRecipeRepository_Expecter) FindIngredients(ctx any, recipeID any) *mock.Call {
	return _e.mock.On("FindIngredients", ctx, recipeID)
}

func (_m *MockRecipeRepository) FindSteps(ctx context.Context, recipeID uuid.UUID) ([]entity.Step, error) {
	ret := _m.Called(ctx, recipeID)

	steps, _ := ret.Get(0).([]entity.Step)

	return steps, ret.Error(1)
}

func (_e *MockRecipeRepository_Expecter) FindSteps(ctx any, recipeID any) *mock.Call {
	return _e.mock.On("FindSteps", ctx, recipeID)
}

func (_m *MockRecipeRepository) List(ctx context.Context, limit int, sort entity.RecipeSort) ([]*entity.RecipeMetadata, error) {
	ret := _m.Called(ctx, limit, sort)

	recipes, _ := ret.Get(0).([]*entity.RecipeMetadata)

	return recipes, ret.Error(1)
}

func (_e *MockRecipeRepository_Expecter) List(ctx any, limit any, sort any) *mock.Call {
	return _e.mock.On("List", ctx, limit, sort)
}

func (_m *MockRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

func (_e *MockRecipeRepository_Expecter) Delete(ctx any, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// NewMockRecipeRepository creates a new instance of MockRecipeRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRecipeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRecipeRepository {
	m := &MockRecipeRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
