package commands

import (
	"errors"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"
	"harvest/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand closes a job.
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompleteJobCommand(jobID kernel.UUID) (CompleteJobCommand, error) {
	cmd := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setJobID(jobID); err != nil {
		return CompleteJobCommand{}, err
	}

	return cmd, nil
}

func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *CompleteJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("job_id", err)
	}

	c.jobID = jobID
	return nil
}
