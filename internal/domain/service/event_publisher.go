package service

import (
	"context"
)

// EnrichmentEvent summarizes one coordinate-backfill pass. Published after
// each non-empty batch so downstream consumers (dashboards, audits) can
// track geocoding health without scraping logs.
type EnrichmentEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	Country     string   `json:"country"`
	Attempted   int      `json:"attempted"`
	Resolved    int      `json:"resolved"`
	Failed      int      `json:"failed"`
	FailedNames []string `json:"failed_names,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message
// queue.
type EventPublisher interface {
	// PublishEnrichmentEvent publishes a batch summary for async consumers.
	PublishEnrichmentEvent(ctx context.Context, event *EnrichmentEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
