// Package ports defines the contracts between the harvest core and its
// collaborators: storage, the provider directory, the trained cost model and
// the event bus.
package ports

import (
	"context"
	"iter"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
)

// JobReader reads harvest jobs.
type JobReader interface {
	// Get returns the job or an *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*job.HarvestJob, error)

	// ListOpen yields jobs whose track is pending, or every job for a nil
	// track, in creation order. Each range over the sequence queries storage
	// again, so it can be consumed more than once. A storage error is yielded
	// once and ends the sequence.
	ListOpen(ctx context.Context, track *job.Track) iter.Seq2[*job.HarvestJob, error]
}

// JobRepository is the persistence contract for the HarvestJob aggregate.
//
// Updates are conditional: each one carries the state the aggregate was
// loaded in as a precondition, so two writers racing on the same track
// cannot both succeed.
type JobRepository interface {
	JobReader

	// Add stores a new job.
	Add(ctx context.Context, aggregate *job.HarvestJob) error

	// UpdateAcceptance writes the provider of track, provided the stored
	// track is still pending and the job is not completed. When the
	// precondition fails the current holder is reported in an
	// *errs.ConflictError.
	//
	// Example:
	//
	//	if err := j.AcceptLabour(providerID); err != nil {
	//	    return nil, err
	//	}
	//	if err := repo.UpdateAcceptance(ctx, j, job.Labour); err != nil {
	//	    return nil, err // conflict: another provider got there first
	//	}
	UpdateAcceptance(ctx context.Context, aggregate *job.HarvestJob, track job.Track) error

	// UpdateCompletion marks the stored job completed, provided it is
	// still pending.
	UpdateCompletion(ctx context.Context, aggregate *job.HarvestJob) error
}
