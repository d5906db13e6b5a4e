package haversine

import (
	"context"
	"math"

	"koerplan/config"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	"koerplan/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Router estimates routes as great-circle distances between the waypoints.
// It needs no network access and every valid pair of points is reachable.
type Router struct {
	speedKmh float64
}

// NewRouter creates an offline router from configuration
func NewRouter(cfg *config.Config) service.Router {
	return &Router{speedKmh: cfg.Router.DefaultSpeedKmh}
}

// Route sums the haversine distance over consecutive waypoints
func (r *Router) Route(ctx context.Context, waypoints []entity.Coordinates) (*entity.RouteData, error) {
	if len(waypoints) < 2 {
		return nil, domainerrors.ErrRouteNotFound.WithDetails("at least two waypoints are required")
	}
	if err := ctx.Err(); err != nil {
		return nil, domainerrors.ErrServiceUnavailable.WithCause(err)
	}

	path := make(orb.LineString, 0, len(waypoints))
	for _, wp := range waypoints {
		if !isValidCoordinate(wp) {
			return nil, domainerrors.ErrRouteNotFound.WithDetails("coordinate is outside valid bounds")
		}
		path = append(path, wp.Point())
	}

	distance := geo.LengthHaversine(path)
	duration := distance / 1000 / r.speedKmh * 3600

	return &entity.RouteData{
		DistanceMeters:  distance,
		DurationSeconds: duration,
		Geometry:        entity.EncodePath(path),
	}, nil
}

func isValidCoordinate(c entity.Coordinates) bool {
	if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) ||
		math.IsInf(c.Lat, 0) || math.IsInf(c.Lon, 0) {
		return false
	}

	return c.Lat >= -90 && c.Lat <= 90 &&
		c.Lon >= -180 && c.Lon <= 180
}
