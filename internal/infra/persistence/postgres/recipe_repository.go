package postgres

import (
	"context"
	"time"

	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/domain/repository"
	"cromptch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recipeRepository implements the repository.RecipeRepository interface.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateMetadata inserts the recipe row. The entity receives the generated ID and timestamps.
func (repo *recipeRepository) CreateMetadata(ctx context.Context, meta *entity.RecipeMetadata) error {
	recipeM := fromRecipeMetadataDomain(meta)
	if recipeM.ID == uuid.Nil {
		recipeM.ID = uuid.New()
	}
	if recipeM.CreatedAt.IsZero() {
		recipeM.CreatedAt = time.Now().UTC()
	}
	if recipeM.EditedAt.IsZero() {
		recipeM.EditedAt = recipeM.CreatedAt
	}

	if err := repo.db.WithContext(ctx).Create(recipeM).Error; err != nil {
		return translateWriteError(err, "failed to create recipe")
	}

	meta.ID = recipeM.ID
	meta.CreatedAt = recipeM.CreatedAt
	meta.EditedAt = recipeM.EditedAt

	return nil
}

func (repo *recipeRepository) CreateIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []entity.Ingredient) error {
	if len(ingredients) == 0 {
		return nil
	}

	rows := make([]*model.RecipeIngredientModel, 0, len(ingredients))
	for i, ingredient := range ingredients {
		rows = append(rows, &model.RecipeIngredientModel{
			RecipeID: recipeID,
			Num:      i,
			Quantity: ingredient.Quantity,
			Unit:     ingredient.Unit,
			Name:     ingredient.Name,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return translateWriteError(err, "failed to create recipe ingredients")
	}

	return nil
}

func (repo *recipeRepository) CreateSteps(ctx context.Context, recipeID uuid.UUID, steps []entity.Step) error {
	if len(steps) == 0 {
		return nil
	}

	rows := make([]*model.RecipeStepModel, 0, len(steps))
	for i, step := range steps {
		rows = append(rows, &model.RecipeStepModel{
			RecipeID:    recipeID,
			Num:         i,
			Description: step.Description,
			ImageID:     step.ImageID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return translateWriteError(err, "failed to create recipe steps")
	}

	return nil
}

func (repo *recipeRepository) FindMetadata(ctx context.Context, id uuid.UUID) (*entity.RecipeMetadata, error) {
	var recipeM model.RecipeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recipeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return toRecipeMetadataDomain(&recipeM), nil
}

func (repo *recipeRepository) FindIngredients(ctx context.Context, recipeID uuid.UUID) ([]entity.Ingredient, error) {
	var rows []*model.RecipeIngredientModel

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("num ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipe ingredients")
	}

	ingredients := make([]entity.Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, entity.Ingredient{
			Quantity: row.Quantity,
			Unit:     row.Unit,
			Name:     row.Name,
		})
	}

	return ingredients, nil
}

func (repo *recipeRepository) FindSteps(ctx context.Context, recipeID uuid.UUID) ([]entity.Step, error) {
	var rows []*model.RecipeStepModel

	if err := repo.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("num ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recipe steps")
	}

	steps := make([]entity.Step, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, entity.Step{
			Description: row.Description,
			ImageID:     row.ImageID,
		})
	}

	return steps, nil
}

// List returns up to limit recipes. Ties on the sort column are broken by id.
func (repo *recipeRepository) List(ctx context.Context, limit int, sort entity.RecipeSort) ([]*entity.RecipeMetadata, error) {
	column, desc := recipeOrderColumn(sort)

	var recipeModels []*model.RecipeModel
	if err := repo.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Limit(limit).
		Find(&recipeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	recipes := make([]*entity.RecipeMetadata, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeMetadataDomain(recipeM))
	}

	return recipes, nil
}

// Delete removes the recipe row. Ingredient and step rows go with it via ON DELETE CASCADE.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecipeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete recipe")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRecipeNotFound
	}

	return nil
}

func recipeOrderColumn(sort entity.RecipeSort) (string, bool) {
	switch sort {
	case entity.RecipeSortCreatedDesc:
		return "created_at", true
	case entity.RecipeSortTitleAsc:
		return "title", false
	case entity.RecipeSortTitleDesc:
		return "title", true
	default:
		return "created_at", false
	}
}

// translateWriteError maps constraint failures to repository sentinels.
func translateWriteError(err error, details string) error {
	switch {
	case isForeignKeyConstraintViolation(err):
		return repository.ErrInvalidReference
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicate
	case isCheckConstraintViolation(err):
		return repository.ErrConstraintViolated
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

func toRecipeMetadataDomain(data *model.RecipeModel) *entity.RecipeMetadata {
	if data == nil {
		return nil
	}

	return &entity.RecipeMetadata{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		Author:             data.Author,
		ImageID:            data.ImageID,
		TimeEstimateActive: fromNullDecimal(data.TimeEstimateActive),
		TimeEstimateTotal:  fromNullDecimal(data.TimeEstimateTotal),
		SourceURL:          data.SourceURL,
		CreatedAt:          data.CreatedAt,
		EditedAt:           data.EditedAt,
	}
}

func fromRecipeMetadataDomain(data *entity.RecipeMetadata) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:                 data.ID,
		Title:              data.Title,
		Description:        data.Description,
		Author:             data.Author,
		ImageID:            data.ImageID,
		TimeEstimateActive: toNullDecimal(data.TimeEstimateActive),
		TimeEstimateTotal:  toNullDecimal(data.TimeEstimateTotal),
		SourceURL:          data.SourceURL,
		CreatedAt:          data.CreatedAt,
		EditedAt:           data.EditedAt,
	}
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}

	v := d.Decimal

	return &v
}
