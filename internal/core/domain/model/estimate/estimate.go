package estimate

import (
	"errors"
	"math"

	"harvest/internal/pkg/errs"
)

// Formula coefficients.
const (
	BaseCost          = 1000.0
	CostPerAcre       = 550.0
	CostPerLabourer   = 450.0
	FuelCostPerKmUnit = 0.6
)

// ErrCostOverflow is the cause of range errors for inputs whose cost cannot
// be represented.
var ErrCostOverflow = errors.New("cost is too large to represent")

// Breakdown splits an estimate into explainable parts. It is always derived
// from the formula, whichever strategy produced the total, so Labour,
// Transport and Base need not add up to the total.
type Breakdown struct {
	Labour    float64
	Transport float64
	Base      float64
}

// CostEstimate is a derived value; it is never stored.
type CostEstimate struct {
	Total     float64
	Breakdown Breakdown
}

// NewCostEstimate rounds total to cents, clamps it at zero and attaches the
// formula breakdown of p.
func NewCostEstimate(total float64, p CostParams) CostEstimate {
	return CostEstimate{
		Total:     Round(math.Max(total, 0)),
		Breakdown: BreakdownOf(p),
	}
}

// BreakdownOf returns the formula's component terms for p.
func BreakdownOf(p CostParams) Breakdown {
	return Breakdown{
		Labour:    Round(float64(p.LabourCount()) * CostPerLabourer),
		Transport: Round(p.DistanceKm() * p.FuelPrice() * FuelCostPerKmUnit),
		Base:      BaseCost,
	}
}

// FormulaTotal is 1000 + acres*550 + labour_count*450 + distance_km*fuel_price*0.6, unrounded.
func FormulaTotal(p CostParams) float64 {
	return BaseCost +
		p.Acres()*CostPerAcre +
		float64(p.LabourCount())*CostPerLabourer +
		p.DistanceKm()*p.FuelPrice()*FuelCostPerKmUnit
}

// Round rounds half away from zero to two decimal places.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// CheckRange rejects params whose formula total or breakdown overflows once
// rounded to cents.
func CheckRange(p CostParams) error {
	total := FormulaTotal(p)
	b := BreakdownOf(p)
	if !isFinite(Round(total)) || !isFinite(b.Labour) || !isFinite(b.Transport) {
		return errs.NewValueIsOutOfRangeErrorWithCause("cost_params", total, 0, maxCost, ErrCostOverflow)
	}
	return nil
}

// Validate rejects an estimate whose total is not a finite amount.
func (e CostEstimate) Validate() error {
	if !isFinite(e.Total) {
		return errs.NewValueIsOutOfRangeErrorWithCause("predicted_cost", e.Total, 0, maxCost, ErrCostOverflow)
	}
	return nil
}

// maxCost is the largest amount that survives rounding to cents.
const maxCost = math.MaxFloat64 / 100

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
