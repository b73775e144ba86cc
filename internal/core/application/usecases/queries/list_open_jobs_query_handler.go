package queries

import (
	"context"
	"iter"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/ports"
)

// ListOpenJobsQueryHandler returns a lazy sequence over the job store.
// Nothing is read until the caller ranges over it, and every range reads
// afresh.
type ListOpenJobsQueryHandler struct {
	jobs ports.JobReader
}

func NewListOpenJobsQueryHandler(jobs ports.JobReader) ListOpenJobsQueryHandler {
	return ListOpenJobsQueryHandler{jobs: jobs}
}

func (h ListOpenJobsQueryHandler) Handle(
	ctx context.Context,
	query ListOpenJobsQuery,
) (iter.Seq2[*job.HarvestJob, error], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.jobs.ListOpen(ctx, query.Track()), nil
}
