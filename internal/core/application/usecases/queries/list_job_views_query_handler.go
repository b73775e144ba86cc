package queries

import (
	"context"
	"iter"

	"harvest/internal/core/ports"
)

// ListJobViewsQueryHandler lists jobs like ListOpenJobsQueryHandler and
// resolves the provider details of every accepted track on the way, so a
// farmer's dashboard needs a single request.
type ListJobViewsQueryHandler struct {
	jobs      ports.JobReader
	providers ports.ProviderDirectory
}

func NewListJobViewsQueryHandler(jobs ports.JobReader, providers ports.ProviderDirectory) ListJobViewsQueryHandler {
	return ListJobViewsQueryHandler{jobs: jobs, providers: providers}
}

// Handle returns a lazy sequence. Details are looked up as each job is
// yielded; a lookup failure is yielded and ends the sequence.
func (h ListJobViewsQueryHandler) Handle(
	ctx context.Context,
	query ListOpenJobsQuery,
) (iter.Seq2[GetJobViewQueryResponse, error], error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := h.jobs.ListOpen(ctx, query.Track())
	return func(yield func(GetJobViewQueryResponse, error) bool) {
		for aggregate, err := range jobs {
			if err != nil {
				yield(GetJobViewQueryResponse{}, err)
				return
			}

			view, err := resolveView(ctx, h.providers, aggregate)
			if err != nil {
				yield(GetJobViewQueryResponse{}, err)
				return
			}

			if !yield(view, nil) {
				return
			}
		}
	}, nil
}
