// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"checkpoint/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	MapHandler      *handler.MapHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	mapHandler      *handler.MapHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		mapHandler:      params.MapHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.locationHandler.ListLocations)
		locationGroup.GET("/nearby", r.locationHandler.FindNearby)
		locationGroup.POST("/enrich", r.locationHandler.EnrichLocations)
		locationGroup.GET("/:id", r.locationHandler.GetLocation)
		locationGroup.GET("/:id/qr", r.locationHandler.GetLocationQR)
	}

	mapGroup := e.Group("/map")
	{
		mapGroup.GET("", r.mapHandler.GetMapState)
		mapGroup.POST("/refresh", r.mapHandler.RefreshMap)
		mapGroup.POST("/markers/:id/select", r.mapHandler.SelectMarker)
	}
}
