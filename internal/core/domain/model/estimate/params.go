package estimate

import (
	"errors"
	"fmt"
	"math"

	"harvest/internal/pkg/errs"
)

// DefaultFuelPrice is used when a request leaves fuel_price out.
const DefaultFuelPrice = 100.0

var ErrCostParamsIsNotConstructed = errors.New("CostParams must be created via NewCostParams constructor")

// CostParams are the physical inputs of an estimate.
type CostParams struct {
	acres       float64
	distanceKm  float64
	labourCount int
	fuelPrice   float64

	isConstructed bool
}

// NewCostParams validates the inputs of an estimate. A nil fuelPrice falls
// back to DefaultFuelPrice.
func NewCostParams(acres, distanceKm float64, labourCount int, fuelPrice *float64) (CostParams, error) {
	p := CostParams{fuelPrice: DefaultFuelPrice, isConstructed: true}

	var fuelErr error
	if fuelPrice != nil {
		fuelErr = p.setFuelPrice(*fuelPrice)
	}

	if err := errors.Join(
		p.setAcres(acres),
		p.setDistanceKm(distanceKm),
		p.setLabourCount(labourCount),
		fuelErr,
	); err != nil {
		return CostParams{}, err
	}

	return p, nil
}

func (p CostParams) Validate() error {
	if !p.isConstructed {
		return ErrCostParamsIsNotConstructed
	}
	return nil
}

func (p CostParams) Acres() float64 {
	return p.acres
}

func (p CostParams) DistanceKm() float64 {
	return p.distanceKm
}

func (p CostParams) LabourCount() int {
	return p.labourCount
}

func (p CostParams) FuelPrice() float64 {
	return p.fuelPrice
}

func (p *CostParams) setAcres(v float64) error {
	if err := nonNegative("acres", v); err != nil {
		return err
	}
	p.acres = v
	return nil
}

func (p *CostParams) setDistanceKm(v float64) error {
	if err := nonNegative("distance_km", v); err != nil {
		return err
	}
	p.distanceKm = v
	return nil
}

func (p *CostParams) setLabourCount(v int) error {
	if v < 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"labour_count", v, 0, nil, fmt.Errorf("%d is negative", v),
		)
	}
	p.labourCount = v
	return nil
}

func (p *CostParams) setFuelPrice(v float64) error {
	if err := nonNegative("fuel_price", v); err != nil {
		return err
	}
	p.fuelPrice = v
	return nil
}

func nonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(name, v, 0, nil, fmt.Errorf("%v is negative or not finite", v))
	}
	return nil
}
