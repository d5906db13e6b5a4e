package entity

import (
	"time"

	"koerplan/internal/errors"

	"github.com/paulmach/orb"
	"github.com/twpayne/go-polyline"
)

// RouteData is the result of one routing call
type RouteData struct {
	DistanceMeters  float64 `json:"distance"` // meters
	DurationSeconds float64 `json:"duration"` // seconds
	Geometry        string  `json:"geometry"` // encoded polyline, precision 5
}

// DistanceKm returns the route distance in kilometers
func (r RouteData) DistanceKm() float64 {
	return r.DistanceMeters / 1000
}

// Duration returns the travel time
func (r RouteData) Duration() time.Duration {
	return time.Duration(r.DurationSeconds * float64(time.Second))
}

// Path decodes the encoded geometry into a line string
func (r RouteData) Path() (orb.LineString, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(r.Geometry))
	if err != nil {
		return nil, errors.Wrap(err, "decode route geometry")
	}
	if len(rest) > 0 {
		return nil, errors.Errorf("decode route geometry: %d trailing bytes", len(rest))
	}

	path := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		path = append(path, orb.Point{c[1], c[0]})
	}

	return path, nil
}

// EncodePath encodes a line string as a precision-5 polyline
func EncodePath(path orb.LineString) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}

	return string(polyline.EncodeCoords(coords))
}
