// Package artifact loads the trained cost model produced offline. The model
// is a linear regression over the job parameters plus a distance*fuel
// interaction term, stored as JSON coefficients:
//
//	{
//	  "intercept": 1012.4,
//	  "acres": 548.9,
//	  "distance_km": 0.8,
//	  "labour_count": 451.2,
//	  "fuel_price": -0.3,
//	  "distance_fuel": 0.6
//	}
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"harvest/internal/core/ports"
)

var ErrInvalidModel = errors.New("invalid cost model")

// LinearModel implements ports.CostPredictor.
type LinearModel struct {
	Intercept    float64 `json:"intercept"`
	Acres        float64 `json:"acres"`
	DistanceKm   float64 `json:"distance_km"`
	LabourCount  float64 `json:"labour_count"`
	FuelPrice    float64 `json:"fuel_price"`
	DistanceFuel float64 `json:"distance_fuel"`
}

var _ ports.CostPredictor = (*LinearModel)(nil)

// Load reads the model at path. A missing file is not an error: it returns
// (nil, nil) and the caller falls back to the formula. An unreadable or
// malformed file is an error.
func Load(path string) (*LinearModel, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cost model %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a model. Unknown fields and non-finite coefficients are
// rejected.
func Parse(data []byte) (*LinearModel, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}

	m := &LinearModel{}
	fields := map[string]*float64{
		"intercept":     &m.Intercept,
		"acres":         &m.Acres,
		"distance_km":   &m.DistanceKm,
		"labour_count":  &m.LabourCount,
		"fuel_price":    &m.FuelPrice,
		"distance_fuel": &m.DistanceFuel,
	}

	for name := range raw {
		if _, known := fields[name]; !known {
			return nil, fmt.Errorf("%w: unknown coefficient %q", ErrInvalidModel, name)
		}
	}

	for name, dst := range fields {
		value, ok := raw[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing coefficient %q", ErrInvalidModel, name)
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return nil, fmt.Errorf("%w: coefficient %q: %v", ErrInvalidModel, name, err)
		}
		if math.IsNaN(*dst) || math.IsInf(*dst, 0) {
			return nil, fmt.Errorf("%w: coefficient %q is not finite", ErrInvalidModel, name)
		}
	}

	return m, nil
}

// Predict returns the raw model output. Clamping and rounding are left to
// the estimator.
func (m *LinearModel) Predict(acres, distanceKm float64, labourCount int, fuelPrice float64) (float64, error) {
	total := m.Intercept +
		m.Acres*acres +
		m.DistanceKm*distanceKm +
		m.LabourCount*float64(labourCount) +
		m.FuelPrice*fuelPrice +
		m.DistanceFuel*distanceKm*fuelPrice

	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("%w: prediction is not finite", ErrInvalidModel)
	}
	return total, nil
}
