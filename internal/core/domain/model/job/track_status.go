package job

import (
	"errors"
	"fmt"

	"harvest/internal/pkg/errs"
)

// ErrTrackAlreadyAccepted is the cause attached to a second acceptance of the same track.
var ErrTrackAlreadyAccepted = errors.New("track is already accepted")

// TrackStatus is the acceptance state of one track (labour or transport).
//
// State transitions:
//
//	Pending ──> Accepted
//
// There is no way back: an accepted track keeps its provider for the life of the job.
type TrackStatus int

const (
	// TrackUnknown catches uninitialized values.
	TrackUnknown TrackStatus = iota

	// TrackPending means no provider has claimed the track yet.
	TrackPending

	// TrackAccepted means a provider has claimed the track.
	TrackAccepted
)

var trackStatusNames = map[TrackStatus]string{
	TrackPending:  "pending",
	TrackAccepted: "accepted",
}

// ParseTrackStatus converts the persisted/wire form into a TrackStatus.
func ParseTrackStatus(s string) (TrackStatus, error) {
	for status, name := range trackStatusNames {
		if name == s {
			return status, nil
		}
	}
	return TrackUnknown, errs.NewValueIsInvalidErrorWithCause(
		"track status", fmt.Errorf("%q is not a valid track status", s),
	)
}

// Validate rejects TrackUnknown and out-of-range values.
func (s TrackStatus) Validate() error {
	if _, ok := trackStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("track status", fmt.Errorf("%d is not a valid track status", s))
	}
	return nil
}

// String returns "pending", "accepted" or "unknown".
func (s TrackStatus) String() string {
	if name, ok := trackStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Accept transitions Pending to Accepted.
// Accepting an accepted track returns ErrTrackAlreadyAccepted.
func (s TrackStatus) Accept() (TrackStatus, error) {
	switch s {
	case TrackPending:
		return TrackAccepted, nil
	case TrackAccepted:
		return TrackUnknown, ErrTrackAlreadyAccepted
	default:
		return TrackUnknown, s.Validate()
	}
}

// ValidateCanHaveProvider enforces that a provider is recorded exactly when
// the track is accepted.
func (s TrackStatus) ValidateCanHaveProvider(provider bool) error {
	if provider && s != TrackAccepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"track status",
			fmt.Errorf("%s is not a valid track status to have a provider", s),
		)
	}
	if !provider && s == TrackAccepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"track status",
			fmt.Errorf("%s is not a valid track status to have no provider", s),
		)
	}
	return nil
}
