package service

import (
	"context"

	"koerplan/internal/domain/entity"
)

// Router computes driving routes
type Router interface {
	// Route returns the route through the ordered waypoints. It returns
	// ErrRouteNotFound when no route exists (including fewer than two waypoints)
	// and ErrServiceUnavailable when the service could not be reached.
	Route(ctx context.Context, waypoints []entity.Coordinates) (*entity.RouteData, error)
}
