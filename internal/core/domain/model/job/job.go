package job

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"
)

var (
	// ErrHarvestJobIsNotConstructed is returned when a HarvestJob was not created
	// through NewHarvestJob or RestoreHarvestJob.
	ErrHarvestJobIsNotConstructed = errors.New("HarvestJob must be created via NewHarvestJob constructor")
)

// HarvestJob is a single farmer-submitted harvest-and-transport task. It is the
// aggregate root for the three status tracks of a job.
//
// HarvestJob follows these invariants:
//   - acres > 0 and distanceKm >= 0; both are fixed after creation
//   - pickup and delivery locations are non-empty
//   - a track's provider is set if and only if the track is accepted
//   - a provider, once set, is never replaced or cleared
//   - a completed job accepts no further transition
type HarvestJob struct {
	id               kernel.UUID
	farmerID         kernel.UUID
	acres            float64
	distanceKm       float64
	pickupLocation   string
	deliveryLocation string
	createdAt        time.Time

	status    Status
	labour    assignment
	transport assignment

	events []Event

	isConstructed bool
}

// assignment is the state of one track.
type assignment struct {
	status   TrackStatus
	provider *kernel.UUID
}

// Snapshot is the flat, persistence-friendly view of a HarvestJob.
// Adapters build one from storage and pass it to RestoreHarvestJob.
type Snapshot struct {
	ID                  kernel.UUID
	FarmerID            kernel.UUID
	Acres               float64
	DistanceKm          float64
	PickupLocation      string
	DeliveryLocation    string
	CreatedAt           time.Time
	Status              Status
	LabourStatus        TrackStatus
	LabourProviderID    *kernel.UUID
	TransportStatus     TrackStatus
	TransportProviderID *kernel.UUID
}

// NewHarvestJob creates a job in pending/pending/pending state with no providers.
//
// Example:
//
//	j, err := job.NewHarvestJob(kernel.NewUUID(), farmerID, 5, 10, "A", "B", clock.Now())
//	if err != nil {
//	    // validation error: acres, distance_km or a location is missing or out of range
//	}
//
// A JobCreated event is recorded for publication after the job is stored.
func NewHarvestJob(
	id, farmerID kernel.UUID,
	acres, distanceKm float64,
	pickupLocation, deliveryLocation string,
	createdAt time.Time,
) (*HarvestJob, error) {
	j := &HarvestJob{
		status:        StatusPending,
		labour:        assignment{status: TrackPending},
		transport:     assignment{status: TrackPending},
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setFarmerID(farmerID),
		j.setAcres(acres),
		j.setDistanceKm(distanceKm),
		j.setPickupLocation(pickupLocation),
		j.setDeliveryLocation(deliveryLocation),
		j.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	j.record(EventJobCreated, nil)
	return j, nil
}

// RestoreHarvestJob rebuilds a job from storage, checking every invariant
// including the provider/track-status pairing.
func RestoreHarvestJob(s Snapshot) (*HarvestJob, error) {
	j := &HarvestJob{isConstructed: true}

	if err := errors.Join(
		j.setID(s.ID),
		j.setFarmerID(s.FarmerID),
		j.setAcres(s.Acres),
		j.setDistanceKm(s.DistanceKm),
		j.setPickupLocation(s.PickupLocation),
		j.setDeliveryLocation(s.DeliveryLocation),
		j.setCreatedAt(s.CreatedAt),
		s.Status.Validate(),
		restoreAssignment(&j.labour, s.LabourStatus, s.LabourProviderID),
		restoreAssignment(&j.transport, s.TransportStatus, s.TransportProviderID),
	); err != nil {
		return nil, err
	}

	j.status = s.Status
	return j, nil
}

// Validate ensures the job was built by a constructor.
func (j *HarvestJob) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrHarvestJobIsNotConstructed
	}
	return nil
}

// Snapshot returns the flat view used by persistence adapters.
func (j *HarvestJob) Snapshot() Snapshot {
	return Snapshot{
		ID:                  j.id,
		FarmerID:            j.farmerID,
		Acres:               j.acres,
		DistanceKm:          j.distanceKm,
		PickupLocation:      j.pickupLocation,
		DeliveryLocation:    j.deliveryLocation,
		CreatedAt:           j.createdAt,
		Status:              j.status,
		LabourStatus:        j.labour.status,
		LabourProviderID:    copyID(j.labour.provider),
		TransportStatus:     j.transport.status,
		TransportProviderID: copyID(j.transport.provider),
	}
}

// ID returns the job's unique identifier.
func (j *HarvestJob) ID() kernel.UUID {
	return j.id
}

// FarmerID returns the farmer who submitted the job.
func (j *HarvestJob) FarmerID() kernel.UUID {
	return j.farmerID
}

// Acres returns the harvested area.
func (j *HarvestJob) Acres() float64 {
	return j.acres
}

// DistanceKm returns the pickup-to-delivery distance.
func (j *HarvestJob) DistanceKm() float64 {
	return j.distanceKm
}

func (j *HarvestJob) PickupLocation() string {
	return j.pickupLocation
}

func (j *HarvestJob) DeliveryLocation() string {
	return j.deliveryLocation
}

// CreatedAt returns the submission time.
func (j *HarvestJob) CreatedAt() time.Time {
	return j.createdAt
}

// Status returns the overall status.
func (j *HarvestJob) Status() Status {
	return j.status
}

func (j *HarvestJob) LabourStatus() TrackStatus {
	return j.labour.status
}

func (j *HarvestJob) TransportStatus() TrackStatus {
	return j.transport.status
}

// LabourProvider returns the accepting labour provider, or nil while pending.
func (j *HarvestJob) LabourProvider() *kernel.UUID { return copyID(j.labour.provider) }

// TransportProvider returns the accepting transport provider, or nil while pending.
func (j *HarvestJob) TransportProvider() *kernel.UUID { return copyID(j.transport.provider) }

// TrackStatus returns the status of the given track.
func (j *HarvestJob) TrackStatus(track Track) TrackStatus {
	return j.track(track).status
}

// Provider returns the provider of the given track, or nil while pending.
func (j *HarvestJob) Provider(track Track) *kernel.UUID {
	return copyID(j.track(track).provider)
}

// IsOpenFor reports whether the track can still be claimed.
func (j *HarvestJob) IsOpenFor(track Track) bool {
	return j.track(track).status == TrackPending
}

// CanAccept checks the acceptance preconditions of a track without changing anything.
//
// Returns:
//   - nil if the track can be accepted
//   - *errs.ConflictError wrapping ErrTrackAlreadyAccepted, with Holder set to the
//     existing provider, for a track that is already accepted
//   - *errs.ConflictError wrapping ErrJobAlreadyCompleted for a completed job
func (j *HarvestJob) CanAccept(track Track) error {
	if err := track.Validate(); err != nil {
		return err
	}
	a := j.track(track)
	if _, err := a.status.Accept(); err != nil {
		if errors.Is(err, ErrTrackAlreadyAccepted) {
			return errs.NewConflictErrorWithCause(track.String(), j.id.String(), holderOf(a), err)
		}
		return err
	}
	if j.status.IsTerminal() {
		return errs.NewConflictErrorWithCause("status", j.id.String(), nil, ErrJobAlreadyCompleted)
	}
	return nil
}

// Accept records providerID as the provider of the track.
//
// Accepting one track never inspects or changes the other one. A second
// acceptance of the same track is rejected even when it comes from the
// provider that already holds it.
func (j *HarvestJob) Accept(track Track, providerID kernel.UUID) error {
	if err := providerID.Validate(); err != nil {
		return err
	}
	if err := j.CanAccept(track); err != nil {
		return err
	}

	a := j.track(track)
	a.status = TrackAccepted
	a.provider = &providerID

	event := EventLabourAccepted
	if track == Transport {
		event = EventTransportAccepted
	}
	j.record(event, &providerID)
	return nil
}

// AcceptLabour is Accept(Labour, providerID).
func (j *HarvestJob) AcceptLabour(providerID kernel.UUID) error {
	return j.Accept(Labour, providerID)
}

// AcceptTransport is Accept(Transport, providerID).
func (j *HarvestJob) AcceptTransport(providerID kernel.UUID) error {
	return j.Accept(Transport, providerID)
}

// CanComplete checks the completion precondition without changing anything.
func (j *HarvestJob) CanComplete() error {
	if _, err := j.status.Complete(); err != nil {
		if errors.Is(err, ErrJobAlreadyCompleted) {
			return errs.NewConflictErrorWithCause("status", j.id.String(), nil, err)
		}
		return err
	}
	return nil
}

// Complete marks the job completed. Neither track has to be accepted: a farmer
// may, for instance, transport the harvest personally.
func (j *HarvestJob) Complete() error {
	if err := j.CanComplete(); err != nil {
		return err
	}

	j.status = StatusCompleted
	j.record(EventJobCompleted, nil)
	return nil
}

// PullEvents returns the events recorded since the last call and forgets them.
func (j *HarvestJob) PullEvents() []Event {
	events := j.events
	j.events = nil
	return events
}

func (j *HarvestJob) track(track Track) *assignment {
	if track == Transport {
		return &j.transport
	}
	return &j.labour
}

func (j *HarvestJob) record(eventType EventType, providerID *kernel.UUID) {
	j.events = append(j.events, Event{
		Type:       eventType,
		JobID:      j.id,
		FarmerID:   j.farmerID,
		ProviderID: copyID(providerID),
	})
}

func (j *HarvestJob) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *HarvestJob) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("farmer_id", err)
	}
	j.farmerID = farmerID
	return nil
}

func (j *HarvestJob) setAcres(acres float64) error {
	if math.IsNaN(acres) || math.IsInf(acres, 0) || acres <= 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"acres", acres, 0, nil, fmt.Errorf("%v is not greater than 0", acres),
		)
	}
	j.acres = acres
	return nil
}

func (j *HarvestJob) setDistanceKm(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"distance_km", distanceKm, 0, nil, fmt.Errorf("%v is negative", distanceKm),
		)
	}
	j.distanceKm = distanceKm
	return nil
}

func (j *HarvestJob) setPickupLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("pickup_location")
	}
	j.pickupLocation = location
	return nil
}

func (j *HarvestJob) setDeliveryLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return errs.NewValueIsRequiredError("delivery_location")
	}
	j.deliveryLocation = location
	return nil
}

func (j *HarvestJob) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created_at")
	}
	j.createdAt = createdAt
	return nil
}

func restoreAssignment(a *assignment, status TrackStatus, provider *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveProvider(provider != nil); err != nil {
		return err
	}
	if provider != nil {
		if err := provider.Validate(); err != nil {
			return err
		}
	}
	a.status = status
	a.provider = copyID(provider)
	return nil
}

func holderOf(a *assignment) any {
	if a.provider == nil {
		return nil
	}
	return a.provider.String()
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
