// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tabiptv/internal/delivery/http/middleware"
	"tabiptv/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PlaylistHandler *handler.PlaylistHandler
	CatalogHandler  *handler.CatalogHandler
	AuthHandler     *handler.AuthHandler
	PathHandler     *handler.PathHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	playlistHandler *handler.PlaylistHandler
	catalogHandler  *handler.CatalogHandler
	authHandler     *handler.AuthHandler
	pathHandler     *handler.PathHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		playlistHandler: params.PlaylistHandler,
		catalogHandler:  params.CatalogHandler,
		authHandler:     params.AuthHandler,
		pathHandler:     params.PathHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes: login and one-time admin bootstrap
	e.POST("/token", r.authHandler.Token)
	e.POST("/users", r.authHandler.Bootstrap)

	// Admin routes behind the bearer token gate
	e.GET("/users/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	e.POST("/urledit", r.catalogHandler.UpdateChannelURL, r.authMiddleware.Authenticate)

	tabsGroup := e.Group("/tabs")
	tabsGroup.Use(r.authMiddleware.Authenticate)
	{
		tabsGroup.POST("", r.catalogHandler.CreateChannel)
		tabsGroup.GET("", r.catalogHandler.ListChannels)
		tabsGroup.GET("/:id", r.catalogHandler.GetChannel)
		tabsGroup.PATCH("/:id", r.catalogHandler.UpdateChannel)
		tabsGroup.DELETE("/:id", r.catalogHandler.DeleteChannel)
	}

	pathGroup := e.Group("/tab_path")
	pathGroup.Use(r.authMiddleware.Authenticate)
	{
		pathGroup.POST("", r.pathHandler.CreatePath)
		pathGroup.GET("", r.pathHandler.ListPaths)
		pathGroup.GET("/:id", r.pathHandler.GetPath)
		pathGroup.PATCH("/:id", r.pathHandler.UpdatePath)
		pathGroup.GET("/:id/qrcode", r.pathHandler.QRCode)
	}

	// Playlist delivery for players. Static routes above win over the
	// two-segment wildcard, so a registered path cannot shadow the admin API.
	e.GET("/:path/:format", r.playlistHandler.GetPlaylist)
}
