package job

import "harvest/internal/core/domain/model/kernel"

// EventType names a lifecycle change of a job.
type EventType string

const (
	EventJobCreated        EventType = "job.created"
	EventLabourAccepted    EventType = "job.labour_accepted"
	EventTransportAccepted EventType = "job.transport_accepted"
	EventJobCompleted      EventType = "job.completed"
)

// Event is recorded by HarvestJob on every successful transition and handed
// to the event publisher once the change is committed.
type Event struct {
	Type       EventType
	JobID      kernel.UUID
	FarmerID   kernel.UUID
	ProviderID *kernel.UUID
}
