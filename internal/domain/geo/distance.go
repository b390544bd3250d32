// Package geo provides pure great-circle distance math. It performs no I/O
// and has no failure mode.
package geo

import (
	"fmt"
	"math"

	"checkpoint/internal/domain/entity"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance between two points in
// kilometres, computed with the haversine formula on a spherical Earth.
func DistanceKm(a, b entity.Coordinates) float64 {
	latA := toRadians(a.Latitude)
	latB := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLng*sinLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// FormatDistance renders a kilometre value for display: metres without
// decimals under one kilometre, one decimal place and a "km" suffix
// otherwise. Ranking always compares raw kilometre floats, never this
// string.
func FormatDistance(km float64) string {
	if km < 1.0 {
		return fmt.Sprintf("%.0f m", km*1000)
	}

	return fmt.Sprintf("%.1f km", km)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
