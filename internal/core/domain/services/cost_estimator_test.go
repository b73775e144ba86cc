package services_test

import (
	"errors"
	"testing"

	"harvest/internal/core/domain/model/estimate"
	"harvest/internal/core/domain/services"
	"harvest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCostPredictor struct{ mock.Mock }

func (m *MockCostPredictor) Predict(acres, distanceKm float64, labourCount int, fuelPrice float64) (float64, error) {
	args := m.Called(acres, distanceKm, labourCount, fuelPrice)
	return args.Get(0).(float64), args.Error(1)
}

func params(t *testing.T, acres, distance float64, labour int, fuel float64) estimate.CostParams {
	t.Helper()
	p, err := estimate.NewCostParams(acres, distance, labour, &fuel)
	require.NoError(t, err)
	return p
}

func TestSelectStrategy(t *testing.T) {
	t.Run("should use formula without predictor", func(t *testing.T) {
		s := services.SelectStrategy(nil)

		assert.Equal(t, services.StrategyFormula, s.Kind())
	})

	t.Run("should use learned strategy with predictor", func(t *testing.T) {
		s := services.SelectStrategy(new(MockCostPredictor))

		assert.Equal(t, services.StrategyLearned, s.Kind())
	})
}

func TestCostEstimator_Formula(t *testing.T) {
	estimator := services.NewCostEstimator(services.FormulaStrategy{})

	t.Run("should estimate the documented example", func(t *testing.T) {
		e, err := estimator.Estimate(params(t, 10, 20, 5, 100))

		require.NoError(t, err)
		assert.InDelta(t, 9950.00, e.Total, 1e-9)
		assert.Equal(t, estimate.Breakdown{Labour: 2250, Transport: 1200, Base: 1000}, e.Breakdown)
	})

	t.Run("should estimate only the base cost for empty input", func(t *testing.T) {
		e, err := estimator.Estimate(params(t, 0, 0, 0, 100))

		require.NoError(t, err)
		assert.InDelta(t, 1000.0, e.Total, 0)
	})

	t.Run("should reject inputs whose cost overflows", func(t *testing.T) {
		_, err := estimator.Estimate(params(t, 1e308, 1e308, 5, 1e308))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should reject unconstructed params", func(t *testing.T) {
		_, err := estimator.Estimate(estimate.CostParams{})

		require.ErrorIs(t, err, estimate.ErrCostParamsIsNotConstructed)
	})
}

func TestCostEstimator_Learned(t *testing.T) {
	t.Run("should take total from predictor and breakdown from formula", func(t *testing.T) {
		predictor := new(MockCostPredictor)
		predictor.On("Predict", 10.0, 20.0, 5, 100.0).Return(10123.456, nil).Once()
		estimator := services.NewCostEstimator(services.SelectStrategy(predictor))

		e, err := estimator.Estimate(params(t, 10, 20, 5, 100))

		require.NoError(t, err)
		assert.Equal(t, services.StrategyLearned, estimator.Strategy())
		assert.InDelta(t, 10123.46, e.Total, 1e-9)
		assert.Equal(t, estimate.Breakdown{Labour: 2250, Transport: 1200, Base: 1000}, e.Breakdown)
		predictor.AssertExpectations(t)
	})

	t.Run("should clamp negative prediction", func(t *testing.T) {
		predictor := new(MockCostPredictor)
		predictor.On("Predict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(-12.0, nil)
		estimator := services.NewCostEstimator(services.SelectStrategy(predictor))

		e, err := estimator.Estimate(params(t, 0, 0, 0, 0))

		require.NoError(t, err)
		assert.Zero(t, e.Total)
	})

	t.Run("should reject overflowing inputs before predicting", func(t *testing.T) {
		predictor := new(MockCostPredictor)
		estimator := services.NewCostEstimator(services.SelectStrategy(predictor))

		_, err := estimator.Estimate(params(t, 1e308, 1e308, 5, 1e308))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, estimate.ErrCostOverflow)
		predictor.AssertNotCalled(t, "Predict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject a prediction too large to round", func(t *testing.T) {
		predictor := new(MockCostPredictor)
		predictor.On("Predict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(1e307, nil).Once()
		estimator := services.NewCostEstimator(services.SelectStrategy(predictor))

		_, err := estimator.Estimate(params(t, 10, 20, 5, 100))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should propagate predictor failure", func(t *testing.T) {
		predictor := new(MockCostPredictor)
		predictor.On("Predict", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0.0, errors.New("model unavailable"))
		estimator := services.NewCostEstimator(services.SelectStrategy(predictor))

		_, err := estimator.Estimate(params(t, 1, 1, 1, 1))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model unavailable")
	})
}

func TestNewCostEstimator_NilStrategy(t *testing.T) {
	estimator := services.NewCostEstimator(nil)

	assert.Equal(t, services.StrategyFormula, estimator.Strategy())
}
