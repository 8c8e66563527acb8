package handler

import (
	"bytes"
	"encoding/json"

	"cromptch/internal/domain/entity"
	"cromptch/internal/errors"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView is the public shape of an account. The password hash never leaves the server.
type UserView struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	IsAdmin  bool      `json:"isAdmin"`
}

func newUserView(user *entity.User) UserView {
	return UserView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
}

type RegisterRequest struct {
	Username      string `json:"username"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	HCaptchaToken string `json:"hcaptchaToken"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserView

	Token string `json:"token"`
}

// IngredientInput accepts {"quantity","unit","name"} or the legacy [quantity, unit, name] tuple.
type IngredientInput struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Name     string          `json:"name"`
}

func (in *IngredientInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return errors.Wrap(err, "ingredient tuple")
		}
		if len(tuple) != 3 {
			return errors.Errorf("ingredient tuple needs 3 elements, got %d", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &in.Quantity); err != nil {
			return errors.Wrap(err, "ingredient quantity")
		}
		if err := json.Unmarshal(tuple[1], &in.Unit); err != nil {
			return errors.Wrap(err, "ingredient unit")
		}
		if err := json.Unmarshal(tuple[2], &in.Name); err != nil {
			return errors.Wrap(err, "ingredient name")
		}

		return nil
	}

	type plain IngredientInput

	return json.Unmarshal(data, (*plain)(in))
}

// StepInput accepts {"description","imageId"} or a bare description string.
type StepInput struct {
	Description string     `json:"description"`
	ImageID     *uuid.UUID `json:"imageId"`
}

func (in *StepInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &in.Description)
	}

	type plain StepInput

	return json.Unmarshal(data, (*plain)(in))
}

type CreateRecipeRequest struct {
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Ingredients        []IngredientInput `json:"ingredients"`
	Steps              []StepInput       `json:"steps"`
	ImageID            *uuid.UUID        `json:"imageId"`
	TimeEstimateActive *decimal.Decimal  `json:"timeEstimateActive"`
	TimeEstimateTotal  *decimal.Decimal  `json:"timeEstimateTotal"`
	SourceURL          *string           `json:"sourceUrl"`
}

func (req *CreateRecipeRequest) toEntity() *entity.RecipeCreation {
	creation := &entity.RecipeCreation{
		Title:              req.Title,
		Description:        req.Description,
		ImageID:            req.ImageID,
		TimeEstimateActive: req.TimeEstimateActive,
		TimeEstimateTotal:  req.TimeEstimateTotal,
		SourceURL:          req.SourceURL,
		Ingredients:        make([]entity.Ingredient, 0, len(req.Ingredients)),
		Steps:              make([]entity.Step, 0, len(req.Steps)),
	}

	for _, in := range req.Ingredients {
		creation.Ingredients = append(creation.Ingredients, entity.Ingredient{
			Quantity: in.Quantity,
			Unit:     in.Unit,
			Name:     in.Name,
		})
	}
	for _, in := range req.Steps {
		creation.Steps = append(creation.Steps, entity.Step{
			Description: in.Description,
			ImageID:     in.ImageID,
		})
	}

	return creation
}

type IDResponse struct {
	ID uuid.UUID `json:"id"`
}

// RecipeMetadataView is a listing entry. Timestamps are unix seconds; decimals are strings.
type RecipeMetadataView struct {
	ID                 uuid.UUID        `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Author             uuid.UUID        `json:"author"`
	ImageID            *uuid.UUID       `json:"imageId"`
	TimeEstimateActive *decimal.Decimal `json:"timeEstimateActive"`
	TimeEstimateTotal  *decimal.Decimal `json:"timeEstimateTotal"`
	SourceURL          *string          `json:"sourceUrl"`
	CreatedAt          int64            `json:"createdAt"`
	EditedAt           int64            `json:"editedAt"`
}

func newRecipeMetadataView(meta *entity.RecipeMetadata) RecipeMetadataView {
	return RecipeMetadataView{
		ID:                 meta.ID,
		Title:              meta.Title,
		Description:        meta.Description,
		Author:             meta.Author,
		ImageID:            meta.ImageID,
		TimeEstimateActive: meta.TimeEstimateActive,
		TimeEstimateTotal:  meta.TimeEstimateTotal,
		SourceURL:          meta.SourceURL,
		CreatedAt:          meta.CreatedAt.Unix(),
		EditedAt:           meta.EditedAt.Unix(),
	}
}

type IngredientView struct {
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
	Name     string          `json:"name"`
}

type StepView struct {
	Description string     `json:"description"`
	ImageID     *uuid.UUID `json:"imageId"`
}

// RecipeView is the full aggregate plus the author's username.
type RecipeView struct {
	RecipeMetadataView

	AuthorName  string           `json:"authorName"`
	Ingredients []IngredientView `json:"ingredients"`
	Steps       []StepView       `json:"steps"`
}

func newRecipeView(details *usecase.RecipeDetails) RecipeView {
	recipe := details.Recipe
	view := RecipeView{
		RecipeMetadataView: newRecipeMetadataView(&recipe.RecipeMetadata),
		AuthorName:         details.AuthorName,
		Ingredients:        make([]IngredientView, 0, len(recipe.Ingredients)),
		Steps:              make([]StepView, 0, len(recipe.Steps)),
	}

	for _, in := range recipe.Ingredients {
		view.Ingredients = append(view.Ingredients, IngredientView{Quantity: in.Quantity, Unit: in.Unit, Name: in.Name})
	}
	for _, step := range recipe.Steps {
		view.Steps = append(view.Steps, StepView{Description: step.Description, ImageID: step.ImageID})
	}

	return view
}
