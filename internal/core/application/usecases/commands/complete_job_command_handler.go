package commands

import (
	"context"

	"harvest/internal/core/domain/model/job"
)

// CompleteJobCommandHandler marks a pending job completed. Neither track has
// to be accepted first.
type CompleteJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewCompleteJobCommandHandler(uowFactory JobUoWFactory) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns an *errs.ConflictError for a job that is already completed.
func (h CompleteJobCommandHandler) Handle(ctx context.Context, command CompleteJobCommand) (*job.HarvestJob, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobs := uow.JobRepository()

	aggregate, err := jobs.Get(ctx, command.JobID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Complete(); err != nil {
		return nil, err
	}

	if err = jobs.UpdateCompletion(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
