// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"koerplan/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	TripHandler   *handler.TripHandler
	LedgerHandler *handler.LedgerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	tripHandler   *handler.TripHandler
	ledgerHandler *handler.LedgerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		tripHandler:   params.TripHandler,
		ledgerHandler: params.LedgerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	tripGroup := e.Group("/trip")
	{
		tripGroup.GET("", r.tripHandler.GetState)
		tripGroup.DELETE("", r.tripHandler.Reset)
		tripGroup.POST("/search", r.tripHandler.Search)
		tripGroup.POST("/search/ferry", r.tripHandler.SearchFerry)
		tripGroup.GET("/geojson", r.tripHandler.GeoJSON)
	}

	ledgerGroup := e.Group("/ledger")
	{
		ledgerGroup.PUT("", r.ledgerHandler.SelectLedger)
		ledgerGroup.POST("/entries", r.ledgerHandler.Save)
	}
}
