// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ogfinder/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	PlatformHandler *handler.PlatformHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	platformHandler *handler.PlatformHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		platformHandler: params.PlatformHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.platformHandler.Root)
	e.GET("/health", r.platformHandler.Health)
	e.GET("/sitemap.xml", r.platformHandler.Sitemap)

	api := e.Group("/api")
	{
		api.GET("/status", r.platformHandler.Status)
		api.GET("/stats", r.platformHandler.Stats)
		api.GET("/market-data", r.platformHandler.MarketData)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}
}
