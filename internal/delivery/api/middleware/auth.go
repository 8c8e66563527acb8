// Package middleware contains the API-specific echo middleware: authentication and error rendering.
package middleware

import (
	"strings"

	"cromptch/internal/domain/entity"
	domainerrors "cromptch/internal/domain/errors"
	"cromptch/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	contextKeyUser  = "user"
	contextKeyToken = "token"
)

// AuthMiddleware resolves bearer tokens to users and gates admin routes.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate requires "Authorization: Bearer <token>" and stores the owning user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrMissingAuthHeader
		}

		token, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || token == "" {
			return domainerrors.ErrInvalidAuthHeader
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(contextKeyUser, user)
		c.Set(contextKeyToken, token)

		return next(c)
	}
}

// RequireAdmin must run after Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			return domainerrors.ErrNotAdmin
		}

		return next(c)
	}
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok && user != nil
}

// CurrentToken returns the raw bearer token stored by Authenticate.
func CurrentToken(c echo.Context) (string, bool) {
	token, ok := c.Get(contextKeyToken).(string)

	return token, ok
}
