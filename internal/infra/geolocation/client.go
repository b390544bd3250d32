// Package geolocation resolves the caller's current position once per "find
// near me" action through an IP-geolocation endpoint.
package geolocation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"checkpoint/config"
	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/errors"
)

// client implements service.Geolocator. The request is bounded by the
// configured timeout (5 s by default) and is not cancellable once issued;
// failures map onto the three distinguished position error classes.
type client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a one-shot position resolver.
func NewClient(cfg *config.Config, logger *slog.Logger) service.Geolocator {
	return &client{
		endpoint: cfg.Geolocation.Endpoint,
		httpClient: &http.Client{
			Timeout: cfg.Geolocation.Timeout,
		},
		logger: logger,
	}
}

type positionResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (c *client) CurrentPosition(ctx context.Context) (*entity.UserPosition, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build position request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, service.ErrPositionTimeout
		}

		// Client-side timeout fires as a url.Error with Timeout() true.
		var timeoutErr interface{ Timeout() bool }
		if errors.As(err, &timeoutErr) && timeoutErr.Timeout() {
			return nil, service.ErrPositionTimeout
		}

		return nil, service.ErrPositionUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusUnauthorized {
		return nil, service.ErrPositionDenied
	}
	if resp.StatusCode != http.StatusOK {
		return nil, service.ErrPositionUnavailable
	}

	var body positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, service.ErrPositionUnavailable
	}

	if body.Status != "success" {
		c.logger.Debug("position lookup refused",
			slog.String("status", body.Status),
			slog.String("message", body.Message),
		)

		return nil, service.ErrPositionUnavailable
	}

	return &entity.UserPosition{Latitude: body.Lat, Longitude: body.Lon}, nil
}
