package entity

import (
	"strconv"

	"koerplan/internal/errors"

	"github.com/paulmach/orb"
)

// Coordinates is a WGS84 latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point returns the coordinates as an orb point (lon, lat order)
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// CoordinatesFromPoint converts an orb point back to Coordinates
func CoordinatesFromPoint(p orb.Point) Coordinates {
	return Coordinates{Lat: p.Lat(), Lon: p.Lon()}
}

// SearchResult is one geocoder candidate. Latitude and longitude are kept as
// text the way the geocoding service returns them.
type SearchResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Coordinates parses the textual latitude and longitude
func (r SearchResult) Coordinates() (Coordinates, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return Coordinates{}, errors.Wrapf(err, "invalid latitude %q", r.Lat)
	}

	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return Coordinates{}, errors.Wrapf(err, "invalid longitude %q", r.Lon)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}
