// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/errors"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when a location is not found.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository is the contract for testing-center persistence. It is
// the only place raw store records exist; everything it returns is a
// normalized entity.Location.
type LocationRepository interface {
	// ListLocations returns every location ordered by name, normalized.
	// When the store is empty it performs one-time seeding from the
	// built-in sample set before re-fetching; a failed individual seed
	// insert is logged and skipped, never aborting the rest.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// FindLocationByID retrieves a single normalized location.
	// Returns ErrLocationNotFound when no record matches.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// UpdateLocationCoordinates is the narrow write-back used exclusively
	// by the enrichment pipeline. It must not touch any other field.
	UpdateLocationCoordinates(ctx context.Context, id uuid.UUID, coords entity.Coordinates) error

	// InsertLocations persists new records. Used by seeding and the
	// importer CLI.
	InsertLocations(ctx context.Context, locations []*entity.Location) error
}
