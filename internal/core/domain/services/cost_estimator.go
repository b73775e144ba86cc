package services

import (
	"errors"
	"fmt"

	"harvest/internal/core/domain/model/estimate"
	"harvest/internal/core/ports"
)

// StrategyKind names the method producing estimate totals.
type StrategyKind string

const (
	StrategyFormula StrategyKind = "formula"
	StrategyLearned StrategyKind = "learned"
)

// Strategy produces the unrounded total of an estimate.
type Strategy interface {
	Kind() StrategyKind
	Total(p estimate.CostParams) (float64, error)
}

// FormulaStrategy is always available.
type FormulaStrategy struct{}

func (FormulaStrategy) Kind() StrategyKind {
	return StrategyFormula
}

func (FormulaStrategy) Total(p estimate.CostParams) (float64, error) {
	if err := estimate.CheckRange(p); err != nil {
		return 0, err
	}
	return estimate.FormulaTotal(p), nil
}

// LearnedStrategy delegates the total to a trained predictor.
type LearnedStrategy struct {
	predictor ports.CostPredictor
}

func NewLearnedStrategy(predictor ports.CostPredictor) LearnedStrategy {
	return LearnedStrategy{predictor: predictor}
}

func (LearnedStrategy) Kind() StrategyKind {
	return StrategyLearned
}

func (s LearnedStrategy) Total(p estimate.CostParams) (float64, error) {
	if err := estimate.CheckRange(p); err != nil {
		return 0, err
	}

	total, err := s.predictor.Predict(p.Acres(), p.DistanceKm(), p.LabourCount(), p.FuelPrice())
	if err != nil {
		return 0, fmt.Errorf("predict cost: %w", err)
	}
	return total, nil
}

// SelectStrategy picks the learned strategy when a predictor was loaded and
// the formula otherwise.
func SelectStrategy(predictor ports.CostPredictor) Strategy {
	if predictor == nil {
		return FormulaStrategy{}
	}
	return NewLearnedStrategy(predictor)
}

// CostEstimator is stateless apart from its strategy and safe for concurrent use.
//
// Example:
//
//	estimator := services.NewCostEstimator(services.SelectStrategy(predictor))
//	params, _ := estimate.NewCostParams(10, 20, 5, nil)
//	e, err := estimator.Estimate(params)
//	// e.Total == 9950 with the formula strategy
type CostEstimator struct {
	strategy Strategy
}

// NewCostEstimator falls back to FormulaStrategy for a nil strategy.
func NewCostEstimator(strategy Strategy) CostEstimator {
	if strategy == nil {
		strategy = FormulaStrategy{}
	}
	return CostEstimator{strategy: strategy}
}

// Strategy reports the strategy in effect.
func (e CostEstimator) Strategy() StrategyKind {
	return e.strategy.Kind()
}

// Estimate returns the rounded total from the strategy together with the
// formula breakdown. Inputs whose cost overflows are an
// *errs.ValueIsOutOfRangeError under either strategy. Predictor failures
// are returned wrapped and are not replaced by the formula.
func (e CostEstimator) Estimate(p estimate.CostParams) (estimate.CostEstimate, error) {
	if err := errors.Join(p.Validate(), estimate.CheckRange(p)); err != nil {
		return estimate.CostEstimate{}, err
	}

	total, err := e.strategy.Total(p)
	if err != nil {
		return estimate.CostEstimate{}, err
	}

	result := estimate.NewCostEstimate(total, p)
	if err = result.Validate(); err != nil {
		return estimate.CostEstimate{}, err
	}
	return result, nil
}
