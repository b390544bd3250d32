package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/geo"
	"checkpoint/internal/domain/repository"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/usecase"

	"github.com/google/uuid"
)

type discoveryService struct {
	locationRepo repository.LocationRepository
	enricher     usecase.EnrichmentUsecase
	geolocator   service.Geolocator
	logger       *slog.Logger
}

// NewDiscoveryService creates a new discovery service instance
func NewDiscoveryService(
	locationRepo repository.LocationRepository,
	enricher usecase.EnrichmentUsecase,
	geolocator service.Geolocator,
	logger *slog.Logger,
) usecase.DiscoveryUsecase {
	return &discoveryService{
		locationRepo: locationRepo,
		enricher:     enricher,
		geolocator:   geolocator,
		logger:       logger,
	}
}

// ListLocations loads the directory, runs one best-effort enrichment pass,
// then filters and optionally ranks the result.
func (s *discoveryService) ListLocations(ctx context.Context, query *usecase.DiscoveryQuery) ([]*entity.Location, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	// Coordinate backfill never blocks browsing; failures are already
	// reported through the notifier.
	if _, err := s.enricher.EnrichLocations(ctx, locations); err != nil {
		s.logger.Warn("enrichment pass failed", slog.Any("error", err))
	}

	if query == nil {
		return locations, nil
	}

	result := FilterLocations(locations, query.Search, query.Categories)
	if query.Position != nil {
		result = RankByDistance(*query.Position, result)
	}

	return result, nil
}

// FindNearby resolves the caller's position, then returns the directory
// ranked by distance from it. The set loaded for this call is the one that
// gets ranked; there is no second fetch.
func (s *discoveryService) FindNearby(ctx context.Context, query *usecase.DiscoveryQuery) (*entity.UserPosition, []*entity.Location, error) {
	position, err := s.geolocator.CurrentPosition(ctx)
	if err != nil {
		return nil, nil, err
	}

	if query == nil {
		query = &usecase.DiscoveryQuery{}
	}
	ranked := *query
	ranked.Position = position

	locations, err := s.ListLocations(ctx, &ranked)
	if err != nil {
		return nil, nil, err
	}

	return position, locations, nil
}

// GetLocation retrieves a single center by ID.
func (s *discoveryService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	return s.locationRepo.FindLocationByID(ctx, id)
}

// FilterLocations applies the text search and the category facet. The two
// criteria AND-compose; an empty search or empty category selection is a
// no-op for that criterion.
func FilterLocations(locations []*entity.Location, search string, categories []string) []*entity.Location {
	search = strings.ToLower(strings.TrimSpace(search))

	result := make([]*entity.Location, 0, len(locations))
	for _, loc := range locations {
		if search != "" && !matchesSearch(loc, search) {
			continue
		}
		if len(categories) > 0 && !matchesCategory(loc, categories) {
			continue
		}
		result = append(result, loc)
	}

	return result
}

func matchesSearch(loc *entity.Location, search string) bool {
	fields := []string{loc.Name, loc.Address, loc.City, loc.Region}
	fields = append(fields, loc.TestTypes...)

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}

	return false
}

func matchesCategory(loc *entity.Location, categories []string) bool {
	facet := loc.FilterCategory()
	for _, category := range categories {
		if facet == category {
			return true
		}
	}

	return false
}

// RankByDistance orders locations by ascending distance from the given
// position. Each located entry is returned as a copy annotated with its
// distance; coordinate-less entries keep their relative order at the tail
// and carry no annotation. The stored records are never mutated.
func RankByDistance(position entity.UserPosition, locations []*entity.Location) []*entity.Location {
	origin := position.Coordinates()

	result := make([]*entity.Location, 0, len(locations))
	for _, loc := range locations {
		if !loc.HasCoordinates() {
			clone := *loc

			result = append(result, &clone)

			continue
		}

		clone := *loc
		km := geo.DistanceKm(origin, *loc.Coordinates)
		clone.DistanceKm = &km
		clone.Distance = geo.FormatDistance(km)
		result = append(result, &clone)
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i].DistanceKm, result[j].DistanceKm
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}

		return *a < *b
	})

	return result
}
