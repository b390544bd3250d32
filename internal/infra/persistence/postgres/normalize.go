package postgres

import (
	"strings"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/infra/persistence/model"
)

// defaultTestTypes is substituted when a raw record carries no service list.
var defaultTestTypes = []string{"HIV test", "Syphilis test"}

// toLocationDomain converts a raw store record into the canonical Location.
// Normalization happens exactly once, here; raw shapes never pass this
// boundary.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	loc := &entity.Location{
		ID:             data.ID,
		Name:           data.Name,
		Address:        data.Address,
		Region:         data.Region,
		TestTypes:      data.Services,
		Category:       data.Category,
		Phone:          data.Contacts,
		Email:          data.Email,
		Website:        data.Website,
		Hours:          data.OpeningHours,
		Description:    data.Description,
		Social:         data.Social,
		Images:         data.Images,
		Source:         data.Source,
		LastVerifiedAt: data.LastVerifiedDate,
	}

	if len(data.Coordinates) == 2 {
		loc.Coordinates = &entity.Coordinates{
			Latitude:  data.Coordinates[0],
			Longitude: data.Coordinates[1],
		}
	}

	return normalizeLocation(loc)
}

// fromLocationDomain converts a canonical Location back into the raw store
// shape for inserts.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	m := &model.LocationModel{
		ID:               data.ID,
		Name:             data.Name,
		Address:          data.Address,
		Region:           data.Region,
		Services:         data.TestTypes,
		Contacts:         data.Phone,
		Website:          data.Website,
		OpeningHours:     data.Hours,
		Description:      data.Description,
		Category:         data.Category,
		Email:            data.Email,
		Social:           data.Social,
		Images:           data.Images,
		Source:           data.Source,
		LastVerifiedDate: data.LastVerifiedAt,
	}

	if data.Coordinates != nil {
		m.Coordinates = []float64{data.Coordinates.Latitude, data.Coordinates.Longitude}
	}

	return m
}

// normalizeLocation makes a raw-loaded record canonical: the city is derived
// from the region or parsed out of the address, and an empty service list
// falls back to the default pair. Idempotent: normalizing an already
// normalized record changes nothing.
func normalizeLocation(loc *entity.Location) *entity.Location {
	if loc.City == "" {
		loc.City = deriveCity(loc.Region, loc.Address)
	}

	if len(loc.TestTypes) == 0 {
		loc.TestTypes = append([]string(nil), defaultTestTypes...)
	}

	return loc
}

// deriveCity prefers the explicit region and otherwise takes the trailing
// comma-segment of the address.
func deriveCity(region, address string) string {
	if trimmed := strings.TrimSpace(region); trimmed != "" {
		return trimmed
	}

	segments := strings.Split(address, ",")
	last := strings.TrimSpace(segments[len(segments)-1])

	return last
}
