package geocode

import (
	"context"
	"log/slog"
	"testing"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingGeocoder records how often the provider was actually called.
type countingGeocoder struct {
	calls  int
	coords *entity.Coordinates
	err    error
}

func (g *countingGeocoder) Geocode(_ context.Context, _ string) (*entity.Coordinates, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}

	return g.coords, nil
}

func TestMemoCache_HitAvoidsProviderCall(t *testing.T) {
	provider := &countingGeocoder{coords: &entity.Coordinates{Latitude: 45.46, Longitude: 9.19}}
	cache := NewMemoCache(provider, slog.Default())

	ctx := context.Background()

	first, err := cache.Resolve(ctx, "Via Sammartini 21, Milano, Italy")
	require.NoError(t, err)

	second, err := cache.Resolve(ctx, "Via Sammartini 21, Milano, Italy")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls, "second resolve must be served from cache")
}

func TestMemoCache_NormalizesKey(t *testing.T) {
	provider := &countingGeocoder{coords: &entity.Coordinates{Latitude: 41.9, Longitude: 12.49}}
	cache := NewMemoCache(provider, slog.Default())

	ctx := context.Background()

	_, err := cache.Resolve(ctx, "  Via Aldo Moro 5, Roma  ")
	require.NoError(t, err)

	_, err = cache.Resolve(ctx, "VIA ALDO MORO 5, ROMA")
	require.NoError(t, err)

	assert.Equal(t, 1, provider.calls, "case and whitespace variants share one entry")
}

func TestMemoCache_NoMatchIsNotCached(t *testing.T) {
	provider := &countingGeocoder{err: service.ErrNoMatch}
	cache := NewMemoCache(provider, slog.Default())

	ctx := context.Background()

	_, err := cache.Resolve(ctx, "nowhere")
	assert.ErrorIs(t, err, service.ErrNoMatch)

	_, err = cache.Resolve(ctx, "nowhere")
	assert.ErrorIs(t, err, service.ErrNoMatch)

	assert.Equal(t, 2, provider.calls, "failures must be retried, not cached")
}

func TestMemoCache_ProviderErrorIsNotCached(t *testing.T) {
	provider := &countingGeocoder{err: errors.New("connection refused")}
	cache := NewMemoCache(provider, slog.Default())

	ctx := context.Background()

	_, err := cache.Resolve(ctx, "Via Roma 1, Torino")
	require.Error(t, err)

	_, err = cache.Resolve(ctx, "Via Roma 1, Torino")
	require.Error(t, err)

	assert.Equal(t, 2, provider.calls)
}

func TestMemoCache_ReturnsCopy(t *testing.T) {
	provider := &countingGeocoder{coords: &entity.Coordinates{Latitude: 45.0, Longitude: 9.0}}
	cache := NewMemoCache(provider, slog.Default())

	ctx := context.Background()

	first, err := cache.Resolve(ctx, "Piazza Duomo, Milano")
	require.NoError(t, err)

	first.Latitude = 0

	second, err := cache.Resolve(ctx, "Piazza Duomo, Milano")
	require.NoError(t, err)
	assert.Equal(t, 45.0, second.Latitude, "mutating a result must not poison the cache")
}
