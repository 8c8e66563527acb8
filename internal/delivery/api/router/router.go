// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cromptch/config"
	"cromptch/internal/delivery/api/middleware"
	"cromptch/internal/delivery/api/router/handler"
	"cromptch/internal/domain/service"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	RecipeHandler  *handler.RecipeHandler
	AdminHandler   *handler.AdminHandler
	ImageHandler   *handler.ImageHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config

	// MediaHost is nil when no provider is configured; image routes are then not mounted.
	MediaHost service.MediaHost `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	recipeHandler  *handler.RecipeHandler
	adminHandler   *handler.AdminHandler
	imageHandler   *handler.ImageHandler
	authMiddleware *middleware.AuthMiddleware
	config         *config.Config
	imagesEnabled  bool
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		recipeHandler:  params.RecipeHandler,
		adminHandler:   params.AdminHandler,
		imageHandler:   params.ImageHandler,
		authMiddleware: params.AuthMiddleware,
		config:         params.Config,
		imagesEnabled:  params.MediaHost != nil,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	userGroup := e.Group("/user")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/create", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/self", r.userHandler.Self, r.authMiddleware.Authenticate)
		userGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
	}

	recipeGroup := e.Group("/recipe")
	{
		recipeGroup.POST("/create", r.recipeHandler.Create, r.authMiddleware.Authenticate)
		recipeGroup.GET("/list", r.recipeHandler.List)
		recipeGroup.GET("/:id", r.recipeHandler.Get)
		recipeGroup.GET("/:id/qr", r.recipeHandler.ShareQR)
	}

	// The original deployment served moderation under both prefixes.
	r.registerAdminRoutes(e.Group("/admin"))
	r.registerAdminRoutes(e.Group("/api/admin"))

	if r.imagesEnabled {
		imageGroup := e.Group("/api/image")
		{
			imageGroup.POST("", r.imageHandler.Upload,
				echomiddleware.BodyLimit(r.maxUploadSize()),
				r.authMiddleware.Authenticate,
			)
			imageGroup.GET("/thumbnail/:id", r.imageHandler.Thumbnail)
			imageGroup.GET("/:id", r.imageHandler.Fetch)
		}
	}
}

func (r *router) registerAdminRoutes(adminGroup *echo.Group) {
	adminGroup.Use(r.authMiddleware.Authenticate) // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireAdmin) // Then, check for the admin flag
	{
		adminGroup.DELETE("/recipe/:id", r.adminHandler.DeleteRecipe)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
	}
}

func (r *router) maxUploadSize() string {
	if r.config.Media != nil && r.config.Media.MaxUploadSize != "" {
		return r.config.Media.MaxUploadSize
	}

	return "10M"
}
