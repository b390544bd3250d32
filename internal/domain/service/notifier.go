package service

import "context"

// Severity classifies a user notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier is the caller-supplied toast/log callback. The core never renders
// UI itself; it hands messages to this interface and moves on. The
// enrichment pipeline emits at most one aggregated message per batch.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string)
}
