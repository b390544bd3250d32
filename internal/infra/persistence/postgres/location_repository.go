// Package postgres contains the concrete implementation of the persistence
// layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/repository"
	"checkpoint/internal/errors"
	"checkpoint/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// locationRepository implements repository.LocationRepository.
type locationRepository struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB, logger *slog.Logger) repository.LocationRepository {
	return &locationRepository{db: db, logger: logger}
}

// ListLocations returns every location ordered by name, normalized. An empty
// store triggers the one-time seeding pass before the re-fetch.
func (repo *locationRepository) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locationModels, err := repo.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(locationModels) == 0 {
		repo.seed(ctx)

		locationModels, err = repo.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

func (repo *locationRepository) fetchAll(ctx context.Context) ([]*model.LocationModel, error) {
	var locationModels []*model.LocationModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locationModels, nil
}

// seed inserts the built-in sample set record by record. A failed insert is
// logged and skipped; the remaining samples still go in.
func (repo *locationRepository) seed(ctx context.Context) {
	repo.logger.Info("location store is empty, seeding sample testing centers")

	for _, sample := range sampleLocations() {
		if err := repo.db.WithContext(ctx).Create(sample).Error; err != nil {
			repo.logger.Warn("failed to seed sample location",
				slog.String("name", sample.Name),
				slog.Any("error", err),
			)
		}
	}
}

// FindLocationByID retrieves a single normalized location by its unique ID.
func (repo *locationRepository) FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// UpdateLocationCoordinates writes back exactly the coordinate pair for one
// record. No other column is touched.
func (repo *locationRepository) UpdateLocationCoordinates(ctx context.Context, id uuid.UUID, coords entity.Coordinates) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Select("coordinates", "updated_at").
		Updates(&model.LocationModel{
			Coordinates: []float64{coords.Latitude, coords.Longitude},
			UpdatedAt:   time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update location coordinates")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// InsertLocations persists new records for seeding and the importer CLI.
func (repo *locationRepository) InsertLocations(ctx context.Context, locations []*entity.Location) error {
	locationModels := make([]*model.LocationModel, 0, len(locations))
	for _, loc := range locations {
		locationModels = append(locationModels, fromLocationDomain(loc))
	}

	if err := repo.db.WithContext(ctx).Create(locationModels).Error; err != nil {
		return errors.Wrap(err, "failed to insert locations")
	}

	return nil
}
