// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"checkpoint/internal/domain/entity"

	"github.com/google/uuid"
)

// DiscoveryQuery represents the filter criteria for a location search.
// All criteria are optional; a zero query returns the full directory.
type DiscoveryQuery struct {
	// Search is matched case-insensitively as a substring against name,
	// address, city, region and test types.
	Search string `json:"search"`

	// Categories is a facet filter; a location matches when its filter
	// category equals any entry.
	Categories []string `json:"categories"`

	// Position, when set, switches the result ordering to ascending
	// distance and annotates each located result with its distance.
	Position *entity.UserPosition `json:"position,omitempty"`
}

// DiscoveryUsecase defines the interface for browsing the testing-center
// directory.
type DiscoveryUsecase interface {
	// ListLocations loads the directory, backfills missing coordinates on a
	// best-effort basis, and applies the query's filters and ordering.
	ListLocations(ctx context.Context, query *DiscoveryQuery) ([]*entity.Location, error)

	// FindNearby resolves the caller's position and returns the directory
	// ranked by distance from it.
	FindNearby(ctx context.Context, query *DiscoveryQuery) (*entity.UserPosition, []*entity.Location, error)

	// GetLocation retrieves a single center by ID.
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
}
