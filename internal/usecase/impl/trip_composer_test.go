package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"koerplan/config"
	"koerplan/internal/domain/entity"
	domainerrors "koerplan/internal/domain/errors"
	mockService "koerplan/internal/mocks/service"
	"koerplan/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	homeCoords = entity.Coordinates{Lat: 55.6761, Lon: 12.5683} // Copenhagen, nearer Odden
	destCoords = entity.Coordinates{Lat: 56.4606, Lon: 10.0364} // Randers
	workCoords = entity.Coordinates{Lat: 55.7000, Lon: 12.5000}

	odden  = entity.Coordinates{Lat: 55.9725, Lon: 11.4280}
	aarhus = entity.Coordinates{Lat: 56.1495, Lon: 10.2190}
)

type composerMocks struct {
	geocoder *mockService.MockGeocoder
	router   *mockService.MockRouter
	aliases  *mockService.MockAliasResolver
}

func newTestComposer(t *testing.T, parallel bool) (usecase.TripUsecase, *composerMocks) {
	t.Helper()

	m := &composerMocks{
		geocoder: mockService.NewMockGeocoder(t),
		router:   mockService.NewMockRouter(t),
		aliases:  mockService.NewMockAliasResolver(t),
	}

	cfg := &config.Config{Composer: &config.ComposerConfig{ParallelLegs: parallel}}
	cfg.ApplyDefaults()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewTripComposer(m.geocoder, m.router, m.aliases, cfg, logger), m
}

func candidate(name string, c entity.Coordinates) []entity.SearchResult {
	return []entity.SearchResult{{
		DisplayName: name,
		Lat:         formatCoord(c.Lat),
		Lon:         formatCoord(c.Lon),
	}}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func routeOf(km float64) *entity.RouteData {
	return &entity.RouteData{DistanceMeters: km * 1000, DurationSeconds: km * 45, Geometry: "_p~iF~ps|U"}
}

func (m *composerMocks) expectAddress(raw, query, name string, c entity.Coordinates) {
	m.aliases.EXPECT().Resolve(mock.Anything, raw).Return(query)
	m.geocoder.EXPECT().Search(mock.Anything, query).Return(candidate(name, c), nil)
}

func (m *composerMocks) expectRoute(from, to entity.Coordinates, route *entity.RouteData, err error) {
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{from, to}).Return(route, err)
}

func TestTripComposer_Compose_DirectWithoutWork(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		composer, m := newTestComposer(t, parallel)
		ctx := context.Background()

		m.expectAddress("X", "X", "X, Danmark", homeCoords)
		m.expectAddress("Y", "Y", "Y, Danmark", destCoords)
		m.expectRoute(homeCoords, destCoords, routeOf(250), nil)
		m.expectRoute(destCoords, homeCoords, routeOf(252), nil)

		trip, err := composer.Compose(ctx, &usecase.ComposeInput{Home: "X", Destination: "Y", Mode: entity.RouteModeDirect})
		require.NoError(t, err)

		assert.Equal(t, entity.RouteModeDirect, trip.Mode)
		require.NotNil(t, trip.Trip)
		require.NotNil(t, trip.ReturnTrip)
		assert.Nil(t, trip.Commute)
		assert.Nil(t, trip.ReturnCommute)
		assert.Equal(t, "X, Danmark", trip.Resolved.Home)
		assert.Equal(t, "Y, Danmark", trip.Resolved.Destination)
		assert.Empty(t, trip.Resolved.Work)

		summary := CalculateNetDistance(trip)
		assert.InDelta(t, 502, summary.NetKm, 1e-9)
	}
}

func TestTripComposer_Compose_MissingAddresses(t *testing.T) {
	composer, _ := newTestComposer(t, false)

	tests := []*usecase.ComposeInput{
		nil,
		{Home: "", Destination: "Y"},
		{Home: "X", Destination: "   "},
		{Home: "\t", Destination: ""},
	}

	for _, input := range tests {
		trip, err := composer.Compose(context.Background(), input)
		assert.Nil(t, trip)
		require.ErrorIs(t, err, domainerrors.ErrMissingAddresses)
		assert.Equal(t, "Udfyld venligst Hjem og Destination", userMessage(err))
	}
}

func TestTripComposer_Compose_InvalidMode(t *testing.T) {
	composer, _ := newTestComposer(t, false)

	_, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Destination: "Y", Mode: "walk"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTripComposer_Compose_DestinationNotFound(t *testing.T) {
	composer, m := newTestComposer(t, false)

	m.expectAddress("X", "X", "X", homeCoords)
	m.aliases.EXPECT().Resolve(mock.Anything, "Y").Return("Y")
	m.geocoder.EXPECT().Search(mock.Anything, "Y").Return([]entity.SearchResult{}, nil)

	trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Destination: "Y"})
	assert.Nil(t, trip)
	require.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	assert.Equal(t, "Kunne ikke finde destination: Y", userMessage(err))

	// no routing calls were issued
	m.router.AssertNotCalled(t, "Route", mock.Anything, mock.Anything)
}

func TestTripComposer_Compose_HomeGeocoderFailureIsNotFound(t *testing.T) {
	composer, m := newTestComposer(t, false)

	m.aliases.EXPECT().Resolve(mock.Anything, "kontor").Return("Nørregade 3")
	m.geocoder.EXPECT().Search(mock.Anything, "Nørregade 3").
		Return(nil, domainerrors.ErrServiceUnavailable.WithCause(errors.New("timeout")))

	_, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "kontor", Destination: "Y"})
	require.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	assert.ErrorIs(t, err, domainerrors.ErrServiceUnavailable)
	assert.Equal(t, "Kunne ikke finde hjem: kontor", userMessage(err))
}

func TestTripComposer_Compose_UsesAliasAndFirstCandidate(t *testing.T) {
	composer, m := newTestComposer(t, false)

	m.aliases.EXPECT().Resolve(mock.Anything, "Sano Aarhus").Return("Egernvej 5, 8270 Højbjerg")
	m.geocoder.EXPECT().Search(mock.Anything, "Egernvej 5, 8270 Højbjerg").Return([]entity.SearchResult{
		{DisplayName: "Egernvej 5, Højbjerg", Lat: "56.1", Lon: "10.2"},
		{DisplayName: "Egernvej, elsewhere", Lat: "55.0", Lon: "9.0"},
	}, nil)
	m.expectAddress("Y", "Y", "Y", destCoords)

	first := entity.Coordinates{Lat: 56.1, Lon: 10.2}
	m.expectRoute(first, destCoords, routeOf(30), nil)
	m.expectRoute(destCoords, first, nil, domainerrors.ErrRouteNotFound)

	trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "Sano Aarhus", Destination: "Y"})
	require.NoError(t, err)
	assert.Equal(t, "Egernvej 5, Højbjerg", trip.Resolved.Home)
	assert.Equal(t, "Sano Aarhus", trip.Inputs.Home)
	// return leg is optional
	assert.Nil(t, trip.ReturnTrip)
}

func TestTripComposer_Compose_NoRouteToDestination(t *testing.T) {
	composer, m := newTestComposer(t, false)

	m.expectAddress("X", "X", "X", homeCoords)
	m.expectAddress("Y", "Y", "Y", destCoords)
	m.expectRoute(homeCoords, destCoords, nil, domainerrors.ErrServiceUnavailable)

	trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Work: "W", Destination: "Y"})
	assert.Nil(t, trip)
	require.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
	assert.Equal(t, "Kunne ikke finde rute til destination", userMessage(err))

	// work lookup happens after the trip legs
	m.aliases.AssertNotCalled(t, "Resolve", mock.Anything, "W")
}

func TestTripComposer_Compose_WithCommute(t *testing.T) {
	composer, m := newTestComposer(t, false)

	m.expectAddress("X", "X", "X", homeCoords)
	m.expectAddress("Y", "Y", "Y", destCoords)
	m.expectAddress(" W ", " W ", "Work place", workCoords)
	m.expectRoute(homeCoords, destCoords, routeOf(100), nil)
	m.expectRoute(destCoords, homeCoords, routeOf(101), nil)
	m.expectRoute(homeCoords, workCoords, routeOf(20), nil)
	m.expectRoute(workCoords, homeCoords, nil, domainerrors.ErrRouteNotFound)

	trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Work: " W ", Destination: "Y"})
	require.NoError(t, err)

	require.NotNil(t, trip.Commute)
	assert.Nil(t, trip.ReturnCommute)
	assert.Equal(t, "Work place", trip.Resolved.Work)

	summary := CalculateNetDistance(trip)
	assert.InDelta(t, 80+101, summary.NetKm, 1e-9)
}

func TestTripComposer_Compose_WorkNotFoundAborts(t *testing.T) {
	for _, mode := range []entity.RouteMode{entity.RouteModeDirect, entity.RouteModeFerry} {
		composer, m := newTestComposer(t, false)

		m.expectAddress("X", "X", "X", homeCoords)
		m.expectAddress("Y", "Y", "Y", destCoords)
		m.router.EXPECT().Route(mock.Anything, mock.Anything).Return(routeOf(10), nil)
		m.aliases.EXPECT().Resolve(mock.Anything, "W").Return("W")
		m.geocoder.EXPECT().Search(mock.Anything, "W").Return(nil, nil)

		trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Work: "W", Destination: "Y", Mode: mode})
		assert.Nil(t, trip)
		require.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
		assert.Equal(t, "Kunne ikke finde arbejdsadresse: W", userMessage(err))
	}
}

func TestTripComposer_Compose_FerryNearOdden(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		composer, m := newTestComposer(t, parallel)

		m.expectAddress("X", "X", "X", homeCoords)
		m.expectAddress("Y", "Y", "Y", destCoords)

		part1 := &entity.RouteData{DistanceMeters: 90000, DurationSeconds: 4000, Geometry: "part1"}
		part2 := &entity.RouteData{DistanceMeters: 40000, DurationSeconds: 2000, Geometry: "part2"}
		ret1 := &entity.RouteData{DistanceMeters: 41000, DurationSeconds: 2100, Geometry: "ret1"}
		ret2 := &entity.RouteData{DistanceMeters: 91000, DurationSeconds: 4100, Geometry: "ret2"}

		m.expectRoute(homeCoords, odden, part1, nil)
		m.expectRoute(aarhus, destCoords, part2, nil)
		m.expectRoute(destCoords, aarhus, ret1, nil)
		m.expectRoute(odden, homeCoords, ret2, nil)

		trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Destination: "Y", Mode: entity.RouteModeFerry})
		require.NoError(t, err)

		assert.Equal(t, entity.RouteModeFerry, trip.Mode)
		assert.InDelta(t, 130000, trip.Trip.DistanceMeters, 1e-9)
		assert.InDelta(t, 4000+2000+5400, trip.Trip.DurationSeconds, 1e-9)
		assert.Equal(t, "part1", trip.Trip.Geometry)
		assert.InDelta(t, 132000, trip.ReturnTrip.DistanceMeters, 1e-9)
		assert.InDelta(t, 2100+4100+5400, trip.ReturnTrip.DurationSeconds, 1e-9)
		assert.Equal(t, "ret1", trip.ReturnTrip.Geometry)
		assert.Equal(t, []entity.RouteData{*part1, *part2}, trip.FerrySegments)
		assert.Equal(t, []entity.RouteData{*ret1, *ret2}, trip.ReturnFerrySegments)
	}
}

func TestTripComposer_Compose_FerryNearAarhus(t *testing.T) {
	composer, m := newTestComposer(t, false)

	vejle := entity.Coordinates{Lat: 55.7113, Lon: 9.5364}
	roskilde := entity.Coordinates{Lat: 55.6415, Lon: 12.0803}

	m.expectAddress("Vejle", "Vejle", "Vejle", vejle)
	m.expectAddress("Roskilde", "Roskilde", "Roskilde", roskilde)

	m.expectRoute(vejle, aarhus, routeOf(70), nil)
	m.expectRoute(odden, roskilde, routeOf(60), nil)
	m.expectRoute(roskilde, odden, routeOf(61), nil)
	m.expectRoute(aarhus, vejle, routeOf(71), nil)

	trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "Vejle", Destination: "Roskilde", Mode: entity.RouteModeFerry})
	require.NoError(t, err)
	assert.InDelta(t, 130, trip.Trip.DistanceKm(), 1e-9)
	assert.InDelta(t, 132, trip.ReturnTrip.DistanceKm(), 1e-9)
}

func TestTripComposer_Compose_FerryTieChoosesSecondTerminal(t *testing.T) {
	m := &composerMocks{
		geocoder: mockService.NewMockGeocoder(t),
		router:   mockService.NewMockRouter(t),
		aliases:  mockService.NewMockAliasResolver(t),
	}
	cfg := &config.Config{Ferry: &config.FerryConfig{Terminals: []config.FerryTerminalConfig{
		{Name: "West", Lat: 56, Lon: 10},
		{Name: "East", Lat: 56, Lon: 12},
	}}}
	cfg.ApplyDefaults()
	composer := NewTripComposer(m.geocoder, m.router, m.aliases, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	west := entity.Coordinates{Lat: 56, Lon: 10}
	east := entity.Coordinates{Lat: 56, Lon: 12}
	midpoint := entity.Coordinates{Lat: 56, Lon: 11}

	m.expectAddress("Mid", "Mid", "Mid", midpoint)
	m.expectAddress("Y", "Y", "Y", destCoords)

	m.expectRoute(midpoint, east, routeOf(1), nil)
	m.expectRoute(west, destCoords, routeOf(1), nil)
	m.expectRoute(destCoords, west, routeOf(1), nil)
	m.expectRoute(east, midpoint, routeOf(1), nil)

	_, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "Mid", Destination: "Y", Mode: entity.RouteModeFerry})
	require.NoError(t, err)
}

func TestTripComposer_Compose_FerryLegMissingAborts(t *testing.T) {
	composer, m := newTestComposer(t, true)

	m.expectAddress("X", "X", "X", homeCoords)
	m.expectAddress("Y", "Y", "Y", destCoords)

	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{homeCoords, odden}).Return(routeOf(90), nil).Maybe()
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{aarhus, destCoords}).Return(nil, domainerrors.ErrRouteNotFound).Maybe()
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{destCoords, aarhus}).Return(routeOf(41), nil).Maybe()
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{odden, homeCoords}).Return(routeOf(91), nil).Maybe()

	trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Destination: "Y", Mode: entity.RouteModeFerry})
	assert.Nil(t, trip)
	require.ErrorIs(t, err, domainerrors.ErrFerryRouteNotFound)
	assert.Equal(t, "Kunne ikke beregne rute via færgehavnene", userMessage(err))
}

func TestTripComposer_Compose_ParallelFerryLegFailureWins(t *testing.T) {
	composer, m := newTestComposer(t, true)

	m.expectAddress("X", "X", "X", homeCoords)
	m.expectAddress("Y", "Y", "Y", destCoords)

	waitForCancel := func(ctx context.Context, _ []entity.Coordinates) (*entity.RouteData, error) {
		select {
		case <-ctx.Done():
			return nil, domainerrors.ErrServiceUnavailable.WithCause(ctx.Err())
		case <-time.After(5 * time.Second):
			return routeOf(1), nil
		}
	}
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{homeCoords, odden}).RunAndReturn(waitForCancel).Maybe()
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{aarhus, destCoords}).RunAndReturn(waitForCancel).Maybe()
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{destCoords, aarhus}).RunAndReturn(waitForCancel).Maybe()
	m.router.EXPECT().Route(mock.Anything, []entity.Coordinates{odden, homeCoords}).Return(nil, domainerrors.ErrRouteNotFound)

	for range 3 {
		trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Destination: "Y", Mode: entity.RouteModeFerry})
		assert.Nil(t, trip)
		require.ErrorIs(t, err, domainerrors.ErrFerryRouteNotFound)
		assert.ErrorIs(t, err, domainerrors.ErrRouteNotFound)
		assert.NotErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domainerrors.ErrServiceUnavailable)
	}
}

func TestTripComposer_Compose_CustomCrossingDuration(t *testing.T) {
	m := &composerMocks{
		geocoder: mockService.NewMockGeocoder(t),
		router:   mockService.NewMockRouter(t),
		aliases:  mockService.NewMockAliasResolver(t),
	}
	cfg := &config.Config{Ferry: &config.FerryConfig{CrossingDuration: 75 * time.Minute}}
	cfg.ApplyDefaults()
	composer := NewTripComposer(m.geocoder, m.router, m.aliases, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	m.expectAddress("X", "X", "X", homeCoords)
	m.expectAddress("Y", "Y", "Y", destCoords)
	m.router.EXPECT().Route(mock.Anything, mock.Anything).Return(&entity.RouteData{DistanceMeters: 1000, DurationSeconds: 100}, nil)

	trip, err := composer.Compose(context.Background(), &usecase.ComposeInput{Home: "X", Destination: "Y", Mode: entity.RouteModeFerry})
	require.NoError(t, err)
	assert.InDelta(t, 200+4500, trip.Trip.DurationSeconds, 1e-9)
}

func TestTripComposer_Compose_CanceledContext(t *testing.T) {
	composer, m := newTestComposer(t, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m.aliases.EXPECT().Resolve(mock.Anything, "X").Return("X")
	m.geocoder.EXPECT().Search(mock.Anything, "X").Return(nil, domainerrors.ErrServiceUnavailable.WithCause(context.Canceled))

	_, err := composer.Compose(ctx, &usecase.ComposeInput{Home: "X", Destination: "Y"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domainerrors.ErrAddressNotFound)
}
