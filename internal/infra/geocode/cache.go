package geocode

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/service"
)

// memoCache implements service.GeocodeCache with a process-local map keyed
// by normalized address. Unbounded for the lifetime of the process, never
// persisted. Guarded by a RWMutex because enrichment batches for different
// requests may resolve addresses concurrently.
type memoCache struct {
	mu       sync.RWMutex
	entries  map[string]entity.Coordinates
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewMemoCache wraps a Geocoder with address memoization. This is the only
// de-duplication mechanism in the geocoding path; there is no negative-result
// caching, so a failing address is retried on every call.
func NewMemoCache(geocoder service.Geocoder, logger *slog.Logger) service.GeocodeCache {
	return &memoCache{
		entries:  make(map[string]entity.Coordinates),
		geocoder: geocoder,
		logger:   logger,
	}
}

func (c *memoCache) Resolve(ctx context.Context, address string) (*entity.Coordinates, error) {
	key := normalizeAddress(address)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		c.logger.Debug("geocode cache hit", slog.String("address", key))

		return &entity.Coordinates{Latitude: cached.Latitude, Longitude: cached.Longitude}, nil
	}

	coords, err := c.geocoder.Geocode(ctx, strings.TrimSpace(address))
	if err != nil {
		// NotFound and provider errors are never cached.
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = *coords
	c.mu.Unlock()

	return coords, nil
}

func normalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
