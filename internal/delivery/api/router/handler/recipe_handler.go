package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cromptch/internal/delivery/api/middleware"
	"cromptch/internal/delivery/api/response"
	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipeHandlerParams holds dependencies for RecipeHandler, injected by Fx.
type RecipeHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	Logger   *slog.Logger
}

type RecipeHandler struct {
	recipeUC usecase.RecipeUsecase
	logger   *slog.Logger
}

func NewRecipeHandler(params RecipeHandlerParams) *RecipeHandler {
	return &RecipeHandler{
		recipeUC: params.RecipeUC,
		logger:   params.Logger,
	}
}

// Create handles POST /recipe/create for the authenticated author.
func (h *RecipeHandler) Create(c echo.Context) error {
	author, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req CreateRecipeRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}

	details, err := h.recipeUC.Create(c.Request().Context(), author, req.toEntity())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, IDResponse{ID: details.Recipe.ID})
}

func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrRecipeNotFound
	}

	details, err := h.recipeUC.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, newRecipeView(details))
}

// List handles GET /recipe/list?limit=&order=.
func (h *RecipeHandler) List(c echo.Context) error {
	input := usecase.ListRecipesInput{
		Sort: entity.ParseRecipeSort(c.QueryParam("order")),
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return domainerrors.ErrInvalidListLimit
		}
		input.Limit = &limit
	}

	recipes, err := h.recipeUC.List(c.Request().Context(), input)
	if err != nil {
		return err
	}

	views := make([]RecipeMetadataView, 0, len(recipes))
	for _, meta := range recipes {
		views = append(views, newRecipeMetadataView(meta))
	}

	return response.JSON(c, http.StatusOK, views)
}

// ShareQR serves a PNG QR code linking to the recipe page.
func (h *RecipeHandler) ShareQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrRecipeNotFound
	}

	png, err := h.recipeUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Blob(c, "image/png", png)
}
