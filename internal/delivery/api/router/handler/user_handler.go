// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"cromptch/internal/delivery/api/middleware"
	"cromptch/internal/delivery/api/response"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Register handles POST /user. It answers with plain text like the original frontend expects.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}

	_, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:     req.Username,
		Email:        req.Email,
		Password:     req.Password,
		CaptchaToken: req.HCaptchaToken,
	})
	if err != nil {
		return err
	}

	return response.Text(c, http.StatusOK, "User created")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidBody
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidBody.Wrap(err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, LoginResponse{
		UserView: newUserView(output.User),
		Token:    output.Token,
	})
}

// Self returns the authenticated user.
func (h *UserHandler) Self(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	return response.JSON(c, http.StatusOK, newUserView(user))
}

// Logout revokes the bearer token used for this request.
func (h *UserHandler) Logout(c echo.Context) error {
	token, ok := middleware.CurrentToken(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	if err := h.authUC.RevokeToken(c.Request().Context(), token); err != nil {
		return err
	}

	return response.Text(c, http.StatusOK, "Logged out")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
