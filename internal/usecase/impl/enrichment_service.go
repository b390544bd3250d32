// Package impl contains the usecase implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"checkpoint/config"
	"checkpoint/internal/domain/entity"
	"checkpoint/internal/domain/repository"
	"checkpoint/internal/domain/service"
	"checkpoint/internal/usecase"
)

const defaultBatchSize = 5

type enrichmentService struct {
	locationRepo repository.LocationRepository
	cache        service.GeocodeCache
	notifier     service.Notifier
	publisher    service.EventPublisher
	cfg          *config.GeocodingConfig
	logger       *slog.Logger
}

// NewEnrichmentService creates a new enrichment service instance
func NewEnrichmentService(
	locationRepo repository.LocationRepository,
	cache service.GeocodeCache,
	notifier service.Notifier,
	publisher service.EventPublisher,
	cfg *config.GeocodingConfig,
	logger *slog.Logger,
) usecase.EnrichmentUsecase {
	return &enrichmentService{
		locationRepo: locationRepo,
		cache:        cache,
		notifier:     notifier,
		publisher:    publisher,
		cfg:          cfg,
		logger:       logger,
	}
}

// EnrichLocations resolves coordinates for up to one batch of locations.
// The batch size doubles as the concurrency ceiling, which keeps the load on
// the shared geocoding provider bounded per pass.
func (s *enrichmentService) EnrichLocations(ctx context.Context, locations []*entity.Location) (*usecase.EnrichmentResult, error) {
	batch := s.selectCandidates(locations)
	if len(batch) == 0 {
		return &usecase.EnrichmentResult{}, nil
	}

	type outcome struct {
		location *entity.Location
		coords   *entity.Coordinates
		err      error
	}

	outcomes := make([]outcome, len(batch))

	var wg sync.WaitGroup
	for i, loc := range batch {
		wg.Add(1)
		go func(i int, loc *entity.Location) {
			defer wg.Done()

			coords, err := s.cache.Resolve(ctx, s.buildQuery(loc))
			outcomes[i] = outcome{location: loc, coords: coords, err: err}
		}(i, loc)
	}
	wg.Wait()

	result := &usecase.EnrichmentResult{Attempted: len(batch)}
	for _, out := range outcomes {
		if out.err != nil {
			s.logger.Warn("geocoding failed",
				slog.String("location", out.location.Name),
				slog.Any("error", out.err),
			)
			result.Failed++
			result.FailedNames = append(result.FailedNames, out.location.Name)

			continue
		}

		// The session keeps the resolved pin even when the write-back
		// fails; only the persisted copy is stale.
		out.location.Coordinates = out.coords

		if err := s.locationRepo.UpdateLocationCoordinates(ctx, out.location.ID, *out.coords); err != nil {
			s.logger.Warn("coordinate write-back failed",
				slog.String("location", out.location.Name),
				slog.Any("error", err),
			)
			result.Failed++
			result.FailedNames = append(result.FailedNames, out.location.Name)

			continue
		}

		result.Resolved++
	}

	s.report(ctx, result)

	return result, nil
}

// EnrichAll loads the stored directory and runs one pass over it.
func (s *enrichmentService) EnrichAll(ctx context.Context) (*usecase.EnrichmentResult, error) {
	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	return s.EnrichLocations(ctx, locations)
}

// selectCandidates picks at most one batch of coordinate-less locations with
// a usable address, preserving the caller's order.
func (s *enrichmentService) selectCandidates(locations []*entity.Location) []*entity.Location {
	batchSize := defaultBatchSize
	if s.cfg != nil && s.cfg.BatchSize > 0 {
		batchSize = s.cfg.BatchSize
	}

	var batch []*entity.Location
	for _, loc := range locations {
		if loc.HasCoordinates() || strings.TrimSpace(loc.Address) == "" {
			continue
		}
		batch = append(batch, loc)
		if len(batch) == batchSize {
			break
		}
	}

	return batch
}

// buildQuery composes the geocoding query as "address, locality, country".
func (s *enrichmentService) buildQuery(loc *entity.Location) string {
	parts := []string{strings.TrimSpace(loc.Address)}

	locality := loc.City
	if locality == "" {
		locality = loc.Region
	}
	if locality != "" {
		parts = append(parts, locality)
	}

	if s.cfg != nil && s.cfg.CountryName != "" {
		parts = append(parts, s.cfg.CountryName)
	}

	return strings.Join(parts, ", ")
}

// report emits the aggregated user warning and the summary event. At most
// one notification per pass, regardless of how many items failed.
func (s *enrichmentService) report(ctx context.Context, result *usecase.EnrichmentResult) {
	if result.Failed > 0 {
		message := fmt.Sprintf("Could not locate %d of %d centers: %s",
			result.Failed, result.Attempted, strings.Join(result.FailedNames, ", "))
		s.notifier.Notify(ctx, service.SeverityWarning, message)
	}

	country := ""
	if s.cfg != nil {
		country = s.cfg.CountryName
	}
	event := &service.EnrichmentEvent{
		Country:     country,
		Attempted:   result.Attempted,
		Resolved:    result.Resolved,
		Failed:      result.Failed,
		FailedNames: result.FailedNames,
	}
	if err := s.publisher.PublishEnrichmentEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish enrichment event", slog.Any("error", err))
	}
}
