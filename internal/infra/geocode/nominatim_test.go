package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"checkpoint/config"
	"checkpoint/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) service.Geocoder {
	cfg := &config.Config{
		Geocoding: &config.GeocodingConfig{
			BaseURL:     baseURL,
			CountryCode: "it",
			CountryName: "Italy",
			BatchSize:   5,
			Timeout:     2 * time.Second,
		},
	}

	return NewNominatimClient(cfg)
}

func TestNominatimClient_Geocode_Success(t *testing.T) {
	var gotQuery, gotCountry, gotLimit string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotCountry = r.URL.Query().Get("countrycodes")
		gotLimit = r.URL.Query().Get("limit")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"45.4642","lon":"9.1900","display_name":"Milano, Italia"}]`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	coords, err := client.Geocode(context.Background(), "Via Sammartini 21, Milano, Italy")
	require.NoError(t, err)

	assert.Equal(t, "Via Sammartini 21, Milano, Italy", gotQuery)
	assert.Equal(t, "it", gotCountry)
	assert.Equal(t, "1", gotLimit)
	assert.InDelta(t, 45.4642, coords.Latitude, 1e-9)
	assert.InDelta(t, 9.19, coords.Longitude, 1e-9)
}

func TestNominatimClient_Geocode_ZeroMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	coords, err := client.Geocode(context.Background(), "nowhere at all")
	assert.Nil(t, coords)
	assert.ErrorIs(t, err, service.ErrNoMatch)
}

func TestNominatimClient_Geocode_ProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testClient(server.URL)

	coords, err := client.Geocode(context.Background(), "Via Roma 1, Torino")
	assert.Nil(t, coords)
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrNoMatch)
}

func TestNominatimClient_Geocode_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // connection refused from here on

	client := testClient(server.URL)

	coords, err := client.Geocode(context.Background(), "Via Roma 1, Torino")
	assert.Nil(t, coords)
	assert.Error(t, err)
}

func TestNominatimClient_Geocode_SendsUserAgent(t *testing.T) {
	var gotUA string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"41.9028","lon":"12.4964"}]`))
	}))
	defer server.Close()

	client := testClient(server.URL)

	_, err := client.Geocode(context.Background(), "Roma")
	require.NoError(t, err)
	assert.NotEmpty(t, gotUA)
}
