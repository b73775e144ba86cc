package commands

import (
	"context"

	"harvest/internal/core/domain/model/job"
)

// AcceptJobCommandHandler records a provider on one track of a job.
//
// The in-memory check on the loaded aggregate rejects the common case early;
// the repository's conditional update decides races between concurrent
// acceptances. Either way the loser gets an *errs.ConflictError naming the
// provider that holds the track.
//
// Example:
//
//	cmd, _ := NewAcceptLabourCommand(jobID, providerID)
//	j, err := handler.Handle(ctx, cmd)
//	var conflict *errs.ConflictError
//	if errors.As(err, &conflict) {
//	    fmt.Printf("labour already taken by %v\n", conflict.Holder)
//	}
type AcceptJobCommandHandler struct {
	uowFactory JobUoWFactory
}

func NewAcceptJobCommandHandler(uowFactory JobUoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the job, applies the acceptance and writes it back.
// The other track is neither read nor written.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, command AcceptJobCommand) (*job.HarvestJob, error) {
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

	if err = aggregate.Accept(command.Track(), command.ProviderID()); err != nil {
		return nil, err
	}

	if err = jobs.UpdateAcceptance(ctx, aggregate, command.Track()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
