// Package notify provides the default Notifier backed by structured logging.
package notify

import (
	"context"
	"log/slog"

	"checkpoint/internal/domain/service"
)

type slogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier returns a Notifier that writes user-facing messages to the
// structured log. Frontends replace this with a toast renderer; the pipeline
// only sees the interface.
func NewSlogNotifier(logger *slog.Logger) service.Notifier {
	return &slogNotifier{logger: logger}
}

func (n *slogNotifier) Notify(ctx context.Context, severity service.Severity, message string) {
	attrs := []any{slog.String("severity", string(severity))}

	switch severity {
	case service.SeverityError:
		n.logger.ErrorContext(ctx, message, attrs...)
	case service.SeverityWarning:
		n.logger.WarnContext(ctx, message, attrs...)
	default:
		n.logger.InfoContext(ctx, message, attrs...)
	}
}
