// Package geocode contains the external geocoding client and the in-memory
// memoization cache in front of it.
package geocode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"checkpoint/config"
	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/errors"
)

const userAgent = "checkpoint/1.0 (testing-center directory)"

// nominatimClient implements service.Geocoder against a Nominatim-style
// search endpoint. It performs exactly one synchronous call per Geocode and
// knows nothing about rate limits; the enrichment pipeline bounds call
// volume one layer up.
type nominatimClient struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
}

// NewNominatimClient creates a geocoder scoped to the configured country.
func NewNominatimClient(cfg *config.Config) service.Geocoder {
	return &nominatimClient{
		baseURL:     cfg.Geocoding.BaseURL,
		countryCode: cfg.Geocoding.CountryCode,
		httpClient: &http.Client{
			Timeout: cfg.Geocoding.Timeout,
		},
	}
}

// nominatimResult is the subset of the provider response we consume.
// Nominatim serializes coordinates as strings.
type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (c *nominatimClient) Geocode(ctx context.Context, query string) (*entity.Coordinates, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse geocoding base URL")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")
	params.Set("countrycodes", c.countryCode)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build geocoding request")
	}
	// Nominatim usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geocoding provider returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decode geocoding response")
	}

	if len(results) == 0 {
		return nil, service.ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse latitude")
	}

	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse longitude")
	}

	return &entity.Coordinates{Latitude: lat, Longitude: lng}, nil
}
