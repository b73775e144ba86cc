package queries

import (
	"context"
	"errors"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/ports"
	"harvest/internal/pkg/errs"
)

// GetJobViewQueryHandler resolves provider references of a job into display details.
type GetJobViewQueryHandler struct {
	jobs      ports.JobReader
	providers ports.ProviderDirectory
}

func NewGetJobViewQueryHandler(jobs ports.JobReader, providers ports.ProviderDirectory) GetJobViewQueryHandler {
	return GetJobViewQueryHandler{jobs: jobs, providers: providers}
}

// Handle returns *errs.ObjectNotFoundError for an unknown job. A provider
// missing from the directory is not an error: its details keep the
// identifier and leave name and phone empty.
func (h GetJobViewQueryHandler) Handle(ctx context.Context, query GetJobViewQuery) (GetJobViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobViewQueryResponse{}, err
	}

	aggregate, err := h.jobs.Get(ctx, query.JobID())
	if err != nil {
		return GetJobViewQueryResponse{}, err
	}

	return resolveView(ctx, h.providers, aggregate)
}

// resolveView looks up the provider details of both tracks of aggregate.
func resolveView(
	ctx context.Context,
	providers ports.ProviderDirectory,
	aggregate *job.HarvestJob,
) (GetJobViewQueryResponse, error) {
	labour, err := resolveDetails(ctx, providers, aggregate, job.Labour)
	if err != nil {
		return GetJobViewQueryResponse{}, err
	}

	transport, err := resolveDetails(ctx, providers, aggregate, job.Transport)
	if err != nil {
		return GetJobViewQueryResponse{}, err
	}

	return GetJobViewQueryResponse{
		Job:              aggregate,
		LabourDetails:    labour,
		TransportDetails: transport,
	}, nil
}

func resolveDetails(
	ctx context.Context,
	providers ports.ProviderDirectory,
	aggregate *job.HarvestJob,
	track job.Track,
) (*ProviderDetails, error) {
	if aggregate.TrackStatus(track) != job.TrackAccepted {
		return nil, nil //nolint:nilnil // absent details are not an error
	}

	id := aggregate.Provider(track)
	details := &ProviderDetails{ID: *id}

	p, err := providers.Get(ctx, *id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return details, nil
	}
	if err != nil {
		return nil, err
	}

	details.Name = p.Name()
	details.Phone = p.Phone()
	return details, nil
}
