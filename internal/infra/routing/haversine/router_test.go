package haversine

import (
	"context"
	"math"
	"testing"

	"koerplan/config"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(speedKmh float64) *Router {
	cfg := &config.Config{Router: &config.RouterConfig{DefaultSpeedKmh: speedKmh}}
	cfg.ApplyDefaults()

	return NewRouter(cfg).(*Router)
}

func TestRouter_Route(t *testing.T) {
	router := newTestRouter(60)

	copenhagen := entity.Coordinates{Lat: 55.6761, Lon: 12.5683}
	aarhus := entity.Coordinates{Lat: 56.1629, Lon: 10.2039}

	route, err := router.Route(context.Background(), []entity.Coordinates{copenhagen, aarhus})
	require.NoError(t, err)

	// Roughly 157 km as the crow flies
	assert.InDelta(t, 157, route.DistanceKm(), 3)
	assert.InDelta(t, route.DistanceKm()/60*3600, route.DurationSeconds, 1e-6)

	path, err := route.Path()
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.InDelta(t, copenhagen.Lat, path[0].Lat(), 1e-5)
	assert.InDelta(t, aarhus.Lon, path[1].Lon(), 1e-5)
}

func TestRouter_Route_SumsLegs(t *testing.T) {
	router := newTestRouter(0)

	a := entity.Coordinates{Lat: 56.0, Lon: 10.0}
	b := entity.Coordinates{Lat: 56.0, Lon: 11.0}

	there, err := router.Route(context.Background(), []entity.Coordinates{a, b})
	require.NoError(t, err)

	roundTrip, err := router.Route(context.Background(), []entity.Coordinates{a, b, a})
	require.NoError(t, err)

	assert.InDelta(t, 2*there.DistanceMeters, roundTrip.DistanceMeters, 1e-6)
	// default speed of 50 km/h applies when unset
	assert.InDelta(t, there.DistanceKm()/50*3600, there.DurationSeconds, 1e-6)
}

func TestRouter_Route_Errors(t *testing.T) {
	router := newTestRouter(50)

	_, err := router.Route(context.Background(), []entity.Coordinates{{Lat: 56, Lon: 10}})
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)

	_, err = router.Route(context.Background(), []entity.Coordinates{{Lat: 56, Lon: 10}, {Lat: math.NaN(), Lon: 10}})
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)

	_, err = router.Route(context.Background(), []entity.Coordinates{{Lat: 56, Lon: 10}, {Lat: 91, Lon: 10}})
	assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = router.Route(ctx, []entity.Coordinates{{Lat: 56, Lon: 10}, {Lat: 56, Lon: 11}})
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
}
