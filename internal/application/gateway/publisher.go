package gateway

import (
	"context"
	"log/slog"

	"github.com/go-baas-api/internal/domain"
)

type logPublisher struct {
	log *slog.Logger
}

// NewLogPublisher returns a Publisher that only records events in the log.
// It is used when no SNS topic is configured.
func NewLogPublisher(logger *slog.Logger) Publisher {
	return &logPublisher{log: logger}
}

func (p *logPublisher) Publish(_ context.Context, ev domain.Event) error {
	p.log.Info("resource event", "type", ev.Type, "kind", string(ev.Kind), "id", ev.ResourceID)
	return nil
}
