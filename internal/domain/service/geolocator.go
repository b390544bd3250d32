package service

import (
	"context"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/errors"
)

// Distinguished geolocation failure classes, each mapped to a distinct
// user-facing message by the delivery layer. Any other error maps to a
// generic failure.
var (
	ErrPositionDenied      = errors.New("position permission denied")
	ErrPositionUnavailable = errors.New("position unavailable")
	ErrPositionTimeout     = errors.New("position request timed out")
)

// Geolocator obtains the user's current position once per "find near me"
// action. The request is not cancellable once issued but is bounded by the
// implementation's timeout.
type Geolocator interface {
	CurrentPosition(ctx context.Context) (*entity.UserPosition, error)
}
