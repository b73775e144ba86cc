package ports

// CostPredictor is a trained regressor loaded at startup.
type CostPredictor interface {
	// Predict returns the predicted total cost for a job. The value is not
	// rounded and may be negative.
	Predict(acres, distanceKm float64, labourCount int, fuelPrice float64) (float64, error)
}
