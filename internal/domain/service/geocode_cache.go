package service

import (
	"context"

	"checkpoint/internal/domain/entity"
)

// GeocodeCache memoizes geocoding results by normalized address string
// (lowercased, trimmed). Only successful resolutions are cached; ErrNoMatch
// and provider failures are retried on every call, so a repeatedly-failing
// address keeps hitting the provider.
//
// Injected as an explicit collaborator so tests can substitute a
// deterministic fake and assert provider call counts.
type GeocodeCache interface {
	// Resolve returns cached coordinates for the address or falls through
	// to the wrapped Geocoder on a miss.
	Resolve(ctx context.Context, address string) (*entity.Coordinates, error)
}
