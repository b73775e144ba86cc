package http

import (
	"errors"
	"time"

	"harvest/internal/core/application/usecases/queries"
	"harvest/internal/core/domain/model/estimate"
	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"
)

type CreateJobRequest struct {
	FarmerID         *string  `json:"farmer_id"`
	Acres            *float64 `json:"acres"`
	DistanceKm       *float64 `json:"distance_km"`
	PickupLocation   string   `json:"pickup_location"`
	DeliveryLocation string   `json:"delivery_location"`
}

func (r CreateJobRequest) validate() error {
	var missing []error
	if r.Acres == nil {
		missing = append(missing, errs.NewValueIsRequiredError("acres"))
	}
	if r.DistanceKm == nil {
		missing = append(missing, errs.NewValueIsRequiredError("distance_km"))
	}
	return errors.Join(missing...)
}

// AcceptJobRequest may omit provider_id, in which case the calling actor accepts.
type AcceptJobRequest struct {
	ProviderID *string `json:"provider_id"`
}

type CostEstimateRequest struct {
	Acres       *float64 `json:"acres"`
	DistanceKm  *float64 `json:"distance_km"`
	LabourCount *int     `json:"labour_count"`
	FuelPrice   *float64 `json:"fuel_price"`
}

type JobResponse struct {
	ID                  string    `json:"id"`
	FarmerID            string    `json:"farmer_id"`
	Acres               float64   `json:"acres"`
	DistanceKm          float64   `json:"distance_km"`
	PickupLocation      string    `json:"pickup_location"`
	DeliveryLocation    string    `json:"delivery_location"`
	Status              string    `json:"status"`
	LabourStatus        string    `json:"labour_status"`
	TransportStatus     string    `json:"transport_status"`
	LabourProviderID    *string   `json:"labour_provider_id"`
	TransportProviderID *string   `json:"transport_provider_id"`
	CreatedAt           time.Time `json:"created_at"`
}

type ProviderDetailsResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// JobViewResponse carries null details for a pending track.
type JobViewResponse struct {
	JobResponse
	LabourDetails    *ProviderDetailsResponse `json:"labour_details"`
	TransportDetails *ProviderDetailsResponse `json:"transport_details"`
}

type CostBreakdownResponse struct {
	Labour    float64 `json:"labour"`
	Transport float64 `json:"transport"`
	Base      float64 `json:"base"`
}

type CostEstimateResponse struct {
	PredictedCost float64               `json:"predicted_cost"`
	CostBreakdown CostBreakdownResponse `json:"cost_breakdown"`
}

// ErrorResponse is the body of every failed request. Field and ProviderID
// are set on conflicts.
type ErrorResponse struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	ProviderID string `json:"provider_id,omitempty"`
}

func toJobResponse(j *job.HarvestJob) JobResponse {
	return JobResponse{
		ID:                  j.ID().String(),
		FarmerID:            j.FarmerID().String(),
		Acres:               j.Acres(),
		DistanceKm:          j.DistanceKm(),
		PickupLocation:      j.PickupLocation(),
		DeliveryLocation:    j.DeliveryLocation(),
		Status:              j.Status().String(),
		LabourStatus:        j.LabourStatus().String(),
		TransportStatus:     j.TransportStatus().String(),
		LabourProviderID:    idString(j.LabourProvider()),
		TransportProviderID: idString(j.TransportProvider()),
		CreatedAt:           j.CreatedAt().UTC(),
	}
}

func toJobViewResponse(view queries.GetJobViewQueryResponse) JobViewResponse {
	return JobViewResponse{
		JobResponse:      toJobResponse(view.Job),
		LabourDetails:    toProviderDetails(view.LabourDetails),
		TransportDetails: toProviderDetails(view.TransportDetails),
	}
}

func toProviderDetails(d *queries.ProviderDetails) *ProviderDetailsResponse {
	if d == nil {
		return nil
	}
	return &ProviderDetailsResponse{ID: d.ID.String(), Name: d.Name, Phone: d.Phone}
}

func toCostEstimateResponse(e estimate.CostEstimate) CostEstimateResponse {
	return CostEstimateResponse{
		PredictedCost: e.Total,
		CostBreakdown: CostBreakdownResponse{
			Labour:    e.Breakdown.Labour,
			Transport: e.Breakdown.Transport,
			Base:      e.Breakdown.Base,
		},
	}
}

func idString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
