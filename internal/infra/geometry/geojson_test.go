package geometry

import (
	"encoding/json"
	"testing"

	"koerplan/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func route(km float64, points ...orb.Point) *entity.RouteData {
	return &entity.RouteData{
		DistanceMeters:  km * 1000,
		DurationSeconds: km * 60,
		Geometry:        entity.EncodePath(orb.LineString(points)),
	}
}

func TestTripFeatureCollection(t *testing.T) {
	trip := &entity.Trip{
		Mode:       entity.RouteModeDirect,
		Trip:       route(100, orb.Point{10, 56}, orb.Point{11, 55}),
		ReturnTrip: route(101, orb.Point{11, 55}, orb.Point{10, 56}),
		Commute:    route(20, orb.Point{10, 56}, orb.Point{10.2, 56.1}),
	}

	fc, err := TripFeatureCollection(trip)
	require.NoError(t, err)
	require.Len(t, fc.Features, 3)

	assert.Equal(t, string(entity.LegRoleTrip), fc.Features[0].Properties["role"])
	assert.Equal(t, string(entity.LegRoleReturnTrip), fc.Features[1].Properties["role"])
	assert.Equal(t, true, fc.Features[2].Properties["dashed"])

	line, ok := fc.Features[0].Geometry.(orb.LineString)
	require.True(t, ok)
	assert.InDelta(t, 10.0, line[0].Lon(), 1e-5)
	assert.InDelta(t, 56.0, line[0].Lat(), 1e-5)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
	assert.Contains(t, string(raw), `"LineString"`)
}

func TestTripFeatureCollection_BadGeometry(t *testing.T) {
	trip := &entity.Trip{
		Mode: entity.RouteModeDirect,
		Trip: &entity.RouteData{Geometry: "\xff"},
	}

	_, err := TripFeatureCollection(trip)
	assert.Error(t, err)
}
