package ports

import (
	"context"

	"harvest/internal/core/domain/model/job"
)

// EventPublisher hands committed job events to the outside world.
type EventPublisher interface {
	Publish(ctx context.Context, events ...job.Event) error
}
