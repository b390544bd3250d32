// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coordinates is a geographic point in WGS84.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is the canonical record for a testing center. Raw store records
// never cross the repository boundary; they are normalized into this shape
// exactly once at load time.
type Location struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Region  string    `json:"region,omitempty"`

	// Coordinates is nil until the enrichment pipeline resolves the address
	// (or the source record already carried a pair). A nil value is valid:
	// the location stays visible to text and category search, it is only
	// excluded from map markers and distance ranking.
	Coordinates *Coordinates `json:"coordinates,omitempty"`

	TestTypes []string `json:"test_types"`
	Category  string   `json:"category,omitempty"`

	Phone       string            `json:"phone,omitempty"`
	Email       string            `json:"email,omitempty"`
	Website     string            `json:"website,omitempty"`
	Hours       string            `json:"hours,omitempty"`
	Description string            `json:"description,omitempty"`
	Social      map[string]string `json:"social,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Source      string            `json:"source,omitempty"`

	LastVerifiedAt *time.Time `json:"last_verified_at,omitempty"`

	// Distance and DistanceKm are query-scoped annotations set only on the
	// results of a distance-ranked query. They are never persisted.
	Distance   string   `json:"distance,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// FilterCategory returns the category used for faceted filtering: the
// explicit Category when set, otherwise the first test type. The fallback is
// applied at filter time only and never written back to the record.
func (l *Location) FilterCategory() string {
	if l.Category != "" {
		return l.Category
	}
	if len(l.TestTypes) > 0 {
		return l.TestTypes[0]
	}

	return ""
}

// HasCoordinates reports whether the location can be placed on a map.
func (l *Location) HasCoordinates() bool {
	return l.Coordinates != nil
}
