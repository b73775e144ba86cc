package queries

import (
	"errors"

	"harvest/internal/core/domain/model/estimate"
	"harvest/internal/pkg/errs"
	"harvest/internal/pkg/guard"
)

var ErrEstimateCostQueryIsNotConstructed = errors.New(
	"EstimateCostQuery must be created via NewEstimateCostQuery constructor",
)

// EstimateCostQuery asks for a quote before a job is posted. acres,
// distanceKm and labourCount are required; fuelPrice may be nil.
type EstimateCostQuery struct { //nolint:recvcheck //using for validation
	params estimate.CostParams

	guard guard.ConstructorGuard
}

func NewEstimateCostQuery(acres, distanceKm *float64, labourCount *int, fuelPrice *float64) (EstimateCostQuery, error) {
	var missing []error
	if acres == nil {
		missing = append(missing, errs.NewValueIsRequiredError("acres"))
	}
	if distanceKm == nil {
		missing = append(missing, errs.NewValueIsRequiredError("distance_km"))
	}
	if labourCount == nil {
		missing = append(missing, errs.NewValueIsRequiredError("labour_count"))
	}
	if len(missing) > 0 {
		return EstimateCostQuery{}, errors.Join(missing...)
	}

	params, err := estimate.NewCostParams(*acres, *distanceKm, *labourCount, fuelPrice)
	if err != nil {
		return EstimateCostQuery{}, err
	}

	return EstimateCostQuery{params: params, guard: guard.NewConstructorGuard()}, nil
}

func (q EstimateCostQuery) Validate() error {
	return q.guard.Validate(ErrEstimateCostQueryIsNotConstructed)
}

func (q EstimateCostQuery) Params() estimate.CostParams {
	return q.params
}
