// Package model holds the GORM-specific raw record shapes. These never cross
// the repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel is the GORM struct for the 'locations' table. Coordinates is
// the source schema's [lat, lng] pair; it stays empty until the enrichment
// pipeline resolves the address.
type LocationModel struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name             string            `gorm:"type:varchar(255);not null;uniqueIndex:idx_locations_name_region"`
	Address          string            `gorm:"type:text;not null"`
	Region           string            `gorm:"type:varchar(100);uniqueIndex:idx_locations_name_region"`
	Services         []string          `gorm:"serializer:json"`
	Contacts         string            `gorm:"type:varchar(100)"`
	Website          string            `gorm:"type:varchar(255)"`
	OpeningHours     string            `gorm:"type:jsonb"`
	Description      string            `gorm:"type:text"`
	Coordinates      []float64         `gorm:"serializer:json"`
	Category         string            `gorm:"type:varchar(100)"`
	Email            string            `gorm:"type:varchar(255)"`
	Social           map[string]string `gorm:"serializer:json"`
	Images           []string          `gorm:"serializer:json"`
	Source           string            `gorm:"type:varchar(255)"`
	LastVerifiedDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
