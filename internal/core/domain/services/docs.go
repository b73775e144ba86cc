// Package services contains domain services that do not belong to a single
// aggregate. CostEstimator turns CostParams into a CostEstimate with either
// the formula or a trained predictor; the choice is made once, when the
// estimator is built.
package services
