package queries

import (
	"errors"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"
	"harvest/internal/pkg/guard"
)

var ErrGetJobViewQueryIsNotConstructed = errors.New(
	"GetJobViewQuery must be created via NewGetJobViewQuery constructor",
)

// GetJobViewQuery fetches one job together with the display details of its providers.
type GetJobViewQuery struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetJobViewQuery(jobID kernel.UUID) (GetJobViewQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobViewQuery{}, errs.NewValueIsRequiredErrorWithCause("job_id", err)
	}
	return GetJobViewQuery{jobID: jobID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetJobViewQuery) Validate() error {
	return q.guard.Validate(ErrGetJobViewQueryIsNotConstructed)
}

func (q GetJobViewQuery) JobID() kernel.UUID {
	return q.jobID
}

// ProviderDetails is what a farmer sees of the provider on an accepted track.
// Name and Phone are empty when the provider is no longer in the directory.
type ProviderDetails struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// GetJobViewQueryResponse carries the job and, per track, the provider
// details. A details pointer is nil exactly when its track is pending.
type GetJobViewQueryResponse struct {
	Job              *job.HarvestJob
	LabourDetails    *ProviderDetails
	TransportDetails *ProviderDetails
}
