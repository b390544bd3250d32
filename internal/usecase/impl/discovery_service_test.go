package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/service"
	mockRepo "checkpoint/internal/mocks/repository"
	mockSvc "checkpoint/internal/mocks/service"
	mockUsecase "checkpoint/internal/mocks/usecase"
	"checkpoint/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDiscoveryService(t *testing.T) (
	usecase.DiscoveryUsecase,
	*mockRepo.MockLocationRepository,
	*mockUsecase.MockEnrichmentUsecase,
	*mockSvc.MockGeolocator,
) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	enricher := mockUsecase.NewMockEnrichmentUsecase(t)
	geolocator := mockSvc.NewMockGeolocator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewDiscoveryService(locationRepo, enricher, geolocator, logger)

	return svc, locationRepo, enricher, geolocator
}

func sampleDirectory() []*entity.Location {
	return []*entity.Location{
		{
			ID:          uuid.New(),
			Name:        "Milano Check Point",
			Address:     "Via Mauro Macchi 44",
			City:        "Milano",
			Region:      "Lombardia",
			TestTypes:   []string{"HIV test", "Syphilis test"},
			Category:    "Community center",
			Coordinates: &entity.Coordinates{Latitude: 45.4895, Longitude: 9.2037},
		},
		{
			ID:        uuid.New(),
			Name:      "Checkpoint Bologna",
			Address:   "Via San Carlo 42",
			City:      "Bologna",
			Region:    "Emilia-Romagna",
			TestTypes: []string{"HIV test"},
		},
		{
			ID:          uuid.New(),
			Name:        "Ambulatorio IST San Raffaele",
			Address:     "Via Olgettina 60",
			City:        "Milano",
			Region:      "Lombardia",
			TestTypes:   []string{"IST screening"},
			Category:    "Hospital",
			Coordinates: &entity.Coordinates{Latitude: 45.5055, Longitude: 9.2664},
		},
	}
}

func TestFilterLocations_SearchMatchesAnyField(t *testing.T) {
	directory := sampleDirectory()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"matches name", "check point", []string{"Milano Check Point"}},
		{"matches city case-insensitively", "milano", []string{"Milano Check Point", "Ambulatorio IST San Raffaele"}},
		{"matches region", "emilia", []string{"Checkpoint Bologna"}},
		{"matches test type", "syphilis", []string{"Milano Check Point"}},
		{"matches address", "olgettina", []string{"Ambulatorio IST San Raffaele"}},
		{"no match", "palermo", nil},
		{"empty search is a no-op", "", []string{"Milano Check Point", "Checkpoint Bologna", "Ambulatorio IST San Raffaele"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterLocations(directory, tt.search, nil)

			names := make([]string, 0, len(got))
			for _, loc := range got {
				names = append(names, loc.Name)
			}
			if tt.want == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.want, names)
			}
		})
	}
}

func TestFilterLocations_CategoryFacet(t *testing.T) {
	directory := sampleDirectory()

	got := FilterLocations(directory, "", []string{"Hospital"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ambulatorio IST San Raffaele", got[0].Name)

	// Bologna has no explicit category; its first test type is the facet.
	got = FilterLocations(directory, "", []string{"HIV test"})
	require.Len(t, got, 1)
	assert.Equal(t, "Checkpoint Bologna", got[0].Name)
}

func TestFilterLocations_SearchAndCategoryCompose(t *testing.T) {
	directory := sampleDirectory()

	got := FilterLocations(directory, "milano", []string{"Hospital"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ambulatorio IST San Raffaele", got[0].Name)

	got = FilterLocations(directory, "bologna", []string{"Hospital"})
	assert.Empty(t, got)
}

func TestRankByDistance_AscendingWithUnlocatedTail(t *testing.T) {
	directory := sampleDirectory()

	// Duomo di Milano: San Raffaele is farther from here than the Check Point.
	position := entity.UserPosition{Latitude: 45.4642, Longitude: 9.1900}

	ranked := RankByDistance(position, directory)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Milano Check Point", ranked[0].Name)
	assert.Equal(t, "Ambulatorio IST San Raffaele", ranked[1].Name)
	assert.Equal(t, "Checkpoint Bologna", ranked[2].Name)

	require.NotNil(t, ranked[0].DistanceKm)
	require.NotNil(t, ranked[1].DistanceKm)
	assert.Less(t, *ranked[0].DistanceKm, *ranked[1].DistanceKm)
	assert.NotEmpty(t, ranked[0].Distance)

	// Unlocated entries carry no annotation.
	assert.Nil(t, ranked[2].DistanceKm)
	assert.Empty(t, ranked[2].Distance)
}

func TestRankByDistance_DoesNotMutateInput(t *testing.T) {
	directory := sampleDirectory()
	position := entity.UserPosition{Latitude: 45.4642, Longitude: 9.1900}

	_ = RankByDistance(position, directory)

	for _, loc := range directory {
		assert.Nil(t, loc.DistanceKm, "stored record %q must stay unannotated", loc.Name)
		assert.Empty(t, loc.Distance)
	}
}

func TestDiscoveryService_ListLocations_FiltersAndRanks(t *testing.T) {
	svc, locationRepo, enricher, _ := createTestDiscoveryService(t)

	ctx := context.Background()
	directory := sampleDirectory()

	locationRepo.EXPECT().ListLocations(ctx).Return(directory, nil)
	enricher.EXPECT().EnrichLocations(ctx, directory).Return(&usecase.EnrichmentResult{}, nil)

	query := &usecase.DiscoveryQuery{
		Search:   "milano",
		Position: &entity.UserPosition{Latitude: 45.4642, Longitude: 9.1900},
	}

	got, err := svc.ListLocations(ctx, query)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Milano Check Point", got[0].Name)
	assert.Equal(t, "Ambulatorio IST San Raffaele", got[1].Name)
}

func TestDiscoveryService_ListLocations_EnrichmentFailureDoesNotBlock(t *testing.T) {
	svc, locationRepo, enricher, _ := createTestDiscoveryService(t)

	ctx := context.Background()
	directory := sampleDirectory()

	locationRepo.EXPECT().ListLocations(ctx).Return(directory, nil)
	enricher.EXPECT().EnrichLocations(ctx, directory).Return(nil, assert.AnError)

	got, err := svc.ListLocations(ctx, &usecase.DiscoveryQuery{})

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestDiscoveryService_FindNearby_RanksLoadedSet(t *testing.T) {
	svc, locationRepo, enricher, geolocator := createTestDiscoveryService(t)

	ctx := context.Background()
	directory := sampleDirectory()
	position := &entity.UserPosition{Latitude: 45.4642, Longitude: 9.1900}

	geolocator.EXPECT().CurrentPosition(ctx).Return(position, nil)
	locationRepo.EXPECT().ListLocations(ctx).Return(directory, nil)
	enricher.EXPECT().EnrichLocations(ctx, directory).Return(&usecase.EnrichmentResult{}, nil)

	gotPosition, got, err := svc.FindNearby(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, position, gotPosition)
	require.Len(t, got, 3)
	assert.Equal(t, "Milano Check Point", got[0].Name)
	assert.Equal(t, "Checkpoint Bologna", got[2].Name)
}

func TestDiscoveryService_FindNearby_PositionDenied(t *testing.T) {
	svc, _, _, geolocator := createTestDiscoveryService(t)

	ctx := context.Background()
	geolocator.EXPECT().CurrentPosition(ctx).Return(nil, service.ErrPositionDenied)

	_, _, err := svc.FindNearby(ctx, nil)

	require.ErrorIs(t, err, service.ErrPositionDenied)
}

func TestDiscoveryService_GetLocation(t *testing.T) {
	svc, locationRepo, _, _ := createTestDiscoveryService(t)

	ctx := context.Background()
	directory := sampleDirectory()

	locationRepo.EXPECT().FindLocationByID(ctx, directory[0].ID).Return(directory[0], nil)

	got, err := svc.GetLocation(ctx, directory[0].ID)

	require.NoError(t, err)
	assert.Equal(t, directory[0], got)
}

func TestDiscoveryService_ListLocations_NilQueryReturnsAll(t *testing.T) {
	svc, locationRepo, enricher, _ := createTestDiscoveryService(t)

	ctx := context.Background()
	directory := sampleDirectory()

	locationRepo.EXPECT().ListLocations(ctx).Return(directory, nil)
	enricher.EXPECT().EnrichLocations(ctx, directory).Return(&usecase.EnrichmentResult{}, nil)

	got, err := svc.ListLocations(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, directory, got)
}

func TestDiscoveryService_ListLocations_RepositoryError(t *testing.T) {
	svc, locationRepo, _, _ := createTestDiscoveryService(t)

	ctx := context.Background()
	locationRepo.EXPECT().ListLocations(ctx).Return(nil, assert.AnError)

	_, err := svc.ListLocations(ctx, nil)

	require.Error(t, err)
}

func TestDiscoveryService_FindNearby_MergesQueryFilters(t *testing.T) {
	svc, locationRepo, enricher, geolocator := createTestDiscoveryService(t)

	ctx := context.Background()
	directory := sampleDirectory()
	position := &entity.UserPosition{Latitude: 45.4642, Longitude: 9.1900}

	geolocator.EXPECT().CurrentPosition(ctx).Return(position, nil)
	locationRepo.EXPECT().ListLocations(ctx).Return(directory, nil)
	enricher.EXPECT().EnrichLocations(ctx, mock.Anything).Return(&usecase.EnrichmentResult{}, nil)

	_, got, err := svc.FindNearby(ctx, &usecase.DiscoveryQuery{Search: "milano"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Milano Check Point", got[0].Name)
}
