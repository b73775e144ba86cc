package commands

import (
	"errors"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"
	"harvest/internal/pkg/guard"
)

var ErrAcceptJobCommandIsNotConstructed = errors.New(
	"AcceptJobCommand must be created via NewAcceptJobCommand constructor",
)

// AcceptJobCommand claims one track of a job for a provider. It covers both
// accept_as_labour and accept_as_transport.
type AcceptJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	providerID kernel.UUID
	track      job.Track

	guard guard.ConstructorGuard
}

func NewAcceptJobCommand(jobID, providerID kernel.UUID, track job.Track) (AcceptJobCommand, error) {
	cmd := AcceptJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setProviderID(providerID),
		cmd.setTrack(track),
	); err != nil {
		return AcceptJobCommand{}, err
	}

	return cmd, nil
}

// NewAcceptLabourCommand is NewAcceptJobCommand for the labour track.
func NewAcceptLabourCommand(jobID, providerID kernel.UUID) (AcceptJobCommand, error) {
	return NewAcceptJobCommand(jobID, providerID, job.Labour)
}

// NewAcceptTransportCommand is NewAcceptJobCommand for the transport track.
func NewAcceptTransportCommand(jobID, providerID kernel.UUID) (AcceptJobCommand, error) {
	return NewAcceptJobCommand(jobID, providerID, job.Transport)
}

func (c AcceptJobCommand) Validate() error {
	return c.guard.Validate(ErrAcceptJobCommandIsNotConstructed)
}

func (c AcceptJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c AcceptJobCommand) ProviderID() kernel.UUID {
	return c.providerID
}

func (c AcceptJobCommand) Track() job.Track {
	return c.track
}

func (c *AcceptJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("job_id", err)
	}

	c.jobID = jobID
	return nil
}

func (c *AcceptJobCommand) setProviderID(providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("provider_id", err)
	}

	c.providerID = providerID
	return nil
}

func (c *AcceptJobCommand) setTrack(track job.Track) error {
	if err := track.Validate(); err != nil {
		return err
	}

	c.track = track
	return nil
}
