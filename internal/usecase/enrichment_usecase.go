package usecase

import (
	"context"

	"checkpoint/internal/domain/entity"
)

// EnrichmentResult summarizes one coordinate-backfill pass.
type EnrichmentResult struct {
	Attempted   int      `json:"attempted"`
	Resolved    int      `json:"resolved"`
	Failed      int      `json:"failed"`
	FailedNames []string `json:"failed_names,omitempty"`
}

// EnrichmentUsecase defines the interface for resolving missing coordinates.
type EnrichmentUsecase interface {
	// EnrichLocations geocodes up to the configured batch of coordinate-less
	// locations in the given set, updating them in place and persisting
	// resolved pairs. Individual failures never abort the batch.
	EnrichLocations(ctx context.Context, locations []*entity.Location) (*EnrichmentResult, error)

	// EnrichAll loads the stored directory and runs one pass over it.
	EnrichAll(ctx context.Context) (*EnrichmentResult, error)
}
