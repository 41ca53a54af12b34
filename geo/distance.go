// Package geo computes great-circle distances between coordinates.
package geo

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the IUGG mean Earth radius
const EarthRadiusMeters = 6371008.8

// Point is a latitude/longitude pair in decimal degrees
type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between a and b in meters.
// Coordinates are not range checked.
func Distance(a, b Point) float64 {
	if a == b {
		return 0
	}
	// Fixed argument order keeps the result bit-for-bit symmetric
	if b.Latitude < a.Latitude || (b.Latitude == a.Latitude && b.Longitude < a.Longitude) {
		a, b = b, a
	}
	from := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	to := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return from.Distance(to).Radians() * EarthRadiusMeters
}
