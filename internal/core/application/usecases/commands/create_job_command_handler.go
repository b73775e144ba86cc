package commands

import (
	"context"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
)

// CreateJobCommandHandler stores a new job in pending/pending/pending state.
type CreateJobCommandHandler struct {
	uowFactory JobUoWFactory
	clock      kernel.Clock
}

// NewCreateJobCommandHandler creates the handler. The clock stamps creation time.
func NewCreateJobCommandHandler(uowFactory JobUoWFactory, clock kernel.Clock) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle assigns a new identifier, builds the aggregate and persists it.
// Validation errors from the aggregate are returned before a transaction is opened.
func (h CreateJobCommandHandler) Handle(ctx context.Context, command CreateJobCommand) (*job.HarvestJob, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := job.NewHarvestJob(
		kernel.NewUUID(),
		command.FarmerID(),
		command.Acres(),
		command.DistanceKm(),
		command.PickupLocation(),
		command.DeliveryLocation(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
