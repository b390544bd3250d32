package geo

import (
	"strings"
	"testing"

	"checkpoint/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Identity(t *testing.T) {
	milan := entity.Coordinates{Latitude: 45.4642, Longitude: 9.1900}

	assert.Zero(t, DistanceKm(milan, milan))
}

func TestDistanceKm_Symmetry(t *testing.T) {
	milan := entity.Coordinates{Latitude: 45.4642, Longitude: 9.1900}
	rome := entity.Coordinates{Latitude: 41.9028, Longitude: 12.4964}

	assert.Equal(t, DistanceKm(milan, rome), DistanceKm(rome, milan))
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	milan := entity.Coordinates{Latitude: 45.4642, Longitude: 9.1900}
	rome := entity.Coordinates{Latitude: 41.9028, Longitude: 12.4964}

	// Milan to Rome is roughly 477 km great-circle.
	assert.InDelta(t, 477, DistanceKm(milan, rome), 5)
}

func TestDistanceKm_TriangleOnMeridian(t *testing.T) {
	// Three points on the 9°E meridian: the middle point splits the
	// great-circle path, so the legs must sum to the full distance.
	a := entity.Coordinates{Latitude: 44.0, Longitude: 9.0}
	b := entity.Coordinates{Latitude: 45.0, Longitude: 9.0}
	c := entity.Coordinates{Latitude: 46.5, Longitude: 9.0}

	assert.InDelta(t, DistanceKm(a, c), DistanceKm(a, b)+DistanceKm(b, c), 1e-9)
}

func TestDistanceKm_MetreScale(t *testing.T) {
	center := entity.Coordinates{Latitude: 45.4643, Longitude: 9.1895}
	reference := entity.Coordinates{Latitude: 45.4642, Longitude: 9.1900}

	km := DistanceKm(center, reference)
	assert.InDelta(t, 0.04, km, 0.005)

	formatted := FormatDistance(km)
	assert.True(t, strings.HasSuffix(formatted, " m"), "expected metre-scale string, got %q", formatted)
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		name string
		km   float64
		want string
	}{
		{"metres", 0.04, "40 m"},
		{"metres rounded", 0.8449, "845 m"},
		{"just under a kilometre", 0.999, "999 m"},
		{"exactly one kilometre", 1.0, "1.0 km"},
		{"kilometres", 12.345, "12.3 km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDistance(tt.km))
		})
	}
}
