package handler

import (
	"log/slog"
	"net/http"

	"cromptch/internal/delivery/api/middleware"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	RecipeUC usecase.RecipeUsecase
	UserUC   usecase.UserUsecase
	Logger   *slog.Logger
}

// AdminHandler serves moderation routes. Every route sits behind RequireAdmin.
type AdminHandler struct {
	recipeUC usecase.RecipeUsecase
	userUC   usecase.UserUsecase
	logger   *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		recipeUC: params.RecipeUC,
		userUC:   params.UserUC,
		logger:   params.Logger,
	}
}

func (h *AdminHandler) DeleteRecipe(c echo.Context) error {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidID
	}

	if err := h.recipeUC.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	views := make([]UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return c.JSON(http.StatusOK, views)
}
