// Package service defines interfaces for external collaborators consumed by
// the application layer: geocoding, geolocation, event publishing, and user
// notification.
package service

import (
	"context"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/errors"
)

// ErrNoMatch is returned when the geocoding provider answered but found no
// result for the query. It is recoverable: the location simply stays
// coordinate-less until a later pass.
var ErrNoMatch = errors.New("no geocoding match")

// Geocoder resolves a free-text address into coordinates through an external
// provider. It owns exactly one synchronous call and has no knowledge of
// rate limits; those are enforced by the enrichment pipeline above it.
//
// Errors other than ErrNoMatch indicate a transport or provider failure and
// are likewise recoverable on a later pass.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*entity.Coordinates, error)
}
