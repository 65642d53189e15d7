// Package geo implements great-circle distance math on a spherical Earth
// model (Haversine) plus coordinate display formatting. It is a pure leaf
// package with no side effects.
package geo

import (
	"fmt"
	"math"
)

const (
	// EarthRadiusMeters is the mean Earth radius used for meter-scale results.
	EarthRadiusMeters = 6371000.0
	// EarthRadiusKm is the mean Earth radius used for kilometer-scale results.
	EarthRadiusKm = 6371.0
)

// haversine returns the central angle in radians between two points given in
// degrees. The square-root argument is clamped into [0,1] so floating-point
// noise near antipodal points cannot escape the asin/atan2 domain.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	deltaPhi := (lat2 - lat1) * math.Pi / 180
	deltaLambda := (lon2 - lon1) * math.Pi / 180

	sinPhi := math.Sin(deltaPhi / 2)
	sinLambda := math.Sin(deltaLambda / 2)

	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// DistanceMeters returns the great-circle distance between two coordinate
// pairs in meters. It is symmetric and exactly zero for identical points.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	return EarthRadiusMeters * haversine(lat1, lon1, lat2, lon2)
}

// DistanceKm returns the great-circle distance between two coordinate pairs
// in kilometers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return EarthRadiusKm * haversine(lat1, lon1, lat2, lon2)
}

// FormatLatLon renders a coordinate pair as "lat, lon" with prec decimal
// places, the display form used in posts and location payloads.
func FormatLatLon(lat, lon float64, prec int) string {
	return fmt.Sprintf("%.*f, %.*f", prec, lat, prec, lon)
}
