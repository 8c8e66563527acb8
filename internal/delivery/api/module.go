package api

import (
	"cromptch/internal/delivery/api/middleware"
	"cromptch/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

// Module provides the API delivery: handlers, auth middleware and the server itself.
// The server is tagged into the "deliveries" group that main starts.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewUserHandler,
		handler.NewRecipeHandler,
		handler.NewAdminHandler,
		handler.NewImageHandler,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
