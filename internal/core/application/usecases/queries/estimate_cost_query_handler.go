package queries

import (
	"context"

	"harvest/internal/core/domain/model/estimate"
	"harvest/internal/core/domain/services"
)

// EstimateCostQueryHandler quotes a job with the estimator chosen at startup.
type EstimateCostQueryHandler struct {
	estimator services.CostEstimator
}

func NewEstimateCostQueryHandler(estimator services.CostEstimator) EstimateCostQueryHandler {
	return EstimateCostQueryHandler{estimator: estimator}
}

func (h EstimateCostQueryHandler) Handle(_ context.Context, query EstimateCostQuery) (estimate.CostEstimate, error) {
	if err := query.Validate(); err != nil {
		return estimate.CostEstimate{}, err
	}

	return h.estimator.Estimate(query.Params())
}
