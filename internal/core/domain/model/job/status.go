package job

import (
	"errors"
	"fmt"

	"harvest/internal/pkg/errs"
)

// ErrJobAlreadyCompleted is the cause attached to conflicts raised on a completed job.
var ErrJobAlreadyCompleted = errors.New("job is already completed")

// Status is the overall lifecycle state of a harvest job.
//
// State transitions:
//
//	Pending ──> Completed
//
// Completed is terminal: no acceptance and no re-opening.
type Status int

const (
	// StatusUnknown catches uninitialized values.
	StatusUnknown Status = iota

	// StatusPending is the state of every newly submitted job.
	StatusPending

	// StatusCompleted marks a job the farmer (or an operator) has closed.
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusPending:   "pending",
	StatusCompleted: "completed",
}

// ParseStatus converts the persisted/wire form into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "pending", "completed" or "unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// Complete transitions Pending to Completed.
//
// Completing a completed job returns ErrJobAlreadyCompleted; completion does not
// look at the labour or transport tracks.
func (s Status) Complete() (Status, error) {
	switch s {
	case StatusPending:
		return StatusCompleted, nil
	case StatusCompleted:
		return StatusUnknown, ErrJobAlreadyCompleted
	default:
		return StatusUnknown, s.Validate()
	}
}
