package postgres

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by CHECKPOINT_TEST_DSN and
// resets the locations table. Tests are skipped when the variable is unset.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("CHECKPOINT_TEST_DSN")
	if dsn == "" {
		t.Skip("CHECKPOINT_TEST_DSN not set, skipping integration test")
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.LocationModel{}))
	require.NoError(t, db.Exec("DELETE FROM locations").Error)

	return db
}

func TestLocationRepository_ListLocations_SeedsEmptyStore(t *testing.T) {
	db := openTestDB(t)
	repo := NewLocationRepository(db, slog.Default())

	ctx := context.Background()

	locations, err := repo.ListLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 7, "empty store must be seeded with the built-in sample set")

	for _, loc := range locations {
		assert.NotEmpty(t, loc.City, "normalization must populate the city for %q", loc.Name)
		assert.NotEmpty(t, loc.TestTypes)
	}

	// A second load returns the same set without re-seeding.
	again, err := repo.ListLocations(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 7)
}

func TestLocationRepository_UpdateLocationCoordinates_NarrowWrite(t *testing.T) {
	db := openTestDB(t)
	repo := NewLocationRepository(db, slog.Default())

	ctx := context.Background()

	locations, err := repo.ListLocations(ctx)
	require.NoError(t, err)

	var target *entity.Location
	for _, loc := range locations {
		if !loc.HasCoordinates() {
			target = loc

			break
		}
	}
	require.NotNil(t, target, "seed set must contain a coordinate-less record")

	coords := entity.Coordinates{Latitude: 44.4949, Longitude: 11.3426}
	require.NoError(t, repo.UpdateLocationCoordinates(ctx, target.ID, coords))

	reloaded, err := repo.FindLocationByID(ctx, target.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Coordinates)
	assert.InDelta(t, coords.Latitude, reloaded.Coordinates.Latitude, 1e-9)
	assert.Equal(t, target.Name, reloaded.Name, "write-back must not touch other fields")
	assert.Equal(t, target.Address, reloaded.Address)
}
