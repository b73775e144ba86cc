// Package jobrepo persists the HarvestJob aggregate with GORM. Statuses are
// stored by name so that rows stay readable and conditional updates can
// match on them directly.
package jobrepo

import (
	"time"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the harvest_jobs row.
type JobDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FarmerID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	Acres               float64    `gorm:"not null"`
	DistanceKm          float64    `gorm:"not null"`
	PickupLocation      string     `gorm:"not null"`
	DeliveryLocation    string     `gorm:"not null"`
	CreatedAt           time.Time  `gorm:"index;not null"`
	Status              string     `gorm:"size:16;index;not null"`
	LabourStatus        string     `gorm:"size:16;index;not null"`
	LabourProviderID    *uuid.UUID `gorm:"type:uuid;index"`
	TransportStatus     string     `gorm:"size:16;index;not null"`
	TransportProviderID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default "job_dtos".
func (JobDTO) TableName() string {
	return "harvest_jobs"
}

// trackColumns returns the status and provider column of a track.
func trackColumns(track job.Track) (statusColumn, providerColumn string) {
	if track == job.Transport {
		return "transport_status", "transport_provider_id"
	}
	return "labour_status", "labour_provider_id"
}

func fromDomain(aggregate *job.HarvestJob) JobDTO {
	s := aggregate.Snapshot()
	return JobDTO{
		ID:                  s.ID.Bytes(),
		FarmerID:            s.FarmerID.Bytes(),
		Acres:               s.Acres,
		DistanceKm:          s.DistanceKm,
		PickupLocation:      s.PickupLocation,
		DeliveryLocation:    s.DeliveryLocation,
		CreatedAt:           s.CreatedAt.UTC(),
		Status:              s.Status.String(),
		LabourStatus:        s.LabourStatus.String(),
		LabourProviderID:    rawID(s.LabourProviderID),
		TransportStatus:     s.TransportStatus.String(),
		TransportProviderID: rawID(s.TransportProviderID),
	}
}

func toDomain(dto JobDTO) (*job.HarvestJob, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	status, err := job.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	labourStatus, err := job.ParseTrackStatus(dto.LabourStatus)
	if err != nil {
		return nil, err
	}

	transportStatus, err := job.ParseTrackStatus(dto.TransportStatus)
	if err != nil {
		return nil, err
	}

	labourProvider, err := domainID(dto.LabourProviderID)
	if err != nil {
		return nil, err
	}

	transportProvider, err := domainID(dto.TransportProviderID)
	if err != nil {
		return nil, err
	}

	return job.RestoreHarvestJob(job.Snapshot{
		ID:                  id,
		FarmerID:            farmerID,
		Acres:               dto.Acres,
		DistanceKm:          dto.DistanceKm,
		PickupLocation:      dto.PickupLocation,
		DeliveryLocation:    dto.DeliveryLocation,
		CreatedAt:           dto.CreatedAt.UTC(),
		Status:              status,
		LabourStatus:        labourStatus,
		LabourProviderID:    labourProvider,
		TransportStatus:     transportStatus,
		TransportProviderID: transportProvider,
	})
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent provider
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
