package commands

import (
	"errors"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"
	"harvest/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a farmer's request to post a harvest job.
// Only the farmer identity is checked here; the physical parameters are
// validated by the HarvestJob aggregate so the rules live in one place.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(actor.ID, 5, 10, "Madurai", "Chennai")
//	if err != nil {
//	    return err
//	}
//	j, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	farmerID         kernel.UUID
	acres            float64
	distanceKm       float64
	pickupLocation   string
	deliveryLocation string

	guard guard.ConstructorGuard
}

func NewCreateJobCommand(
	farmerID kernel.UUID,
	acres, distanceKm float64,
	pickupLocation, deliveryLocation string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		acres:            acres,
		distanceKm:       distanceKm,
		pickupLocation:   pickupLocation,
		deliveryLocation: deliveryLocation,
		guard:            guard.NewConstructorGuard(),
	}

	if err := cmd.setFarmerID(farmerID); err != nil {
		return CreateJobCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

func (c CreateJobCommand) Acres() float64 {
	return c.acres
}

func (c CreateJobCommand) DistanceKm() float64 {
	return c.distanceKm
}

func (c CreateJobCommand) PickupLocation() string {
	return c.pickupLocation
}

func (c CreateJobCommand) DeliveryLocation() string {
	return c.deliveryLocation
}

func (c *CreateJobCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmer_id", err)
	}

	c.farmerID = farmerID
	return nil
}
