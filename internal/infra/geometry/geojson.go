package geometry

import (
	"koerplan/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// TripFeatureCollection renders the trip as GeoJSON, one LineString feature
// per drawn route segment
func TripFeatureCollection(trip *entity.Trip) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()

	for _, leg := range trip.Legs() {
		for i, route := range leg.Routes {
			path, err := route.Path()
			if err != nil {
				return nil, errors.Wrapf(err, "%s segment %d", leg.Role, i)
			}

			feature := geojson.NewFeature(path)
			feature.Properties["role"] = string(leg.Role)
			feature.Properties["segment"] = i
			feature.Properties["dashed"] = leg.Dashed
			feature.Properties["distanceKm"] = route.DistanceKm()
			feature.Properties["durationSeconds"] = route.DurationSeconds
			fc.Append(feature)
		}
	}

	return fc, nil
}
