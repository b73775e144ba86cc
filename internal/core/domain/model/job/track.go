package job

import (
	"fmt"

	"harvest/internal/pkg/errs"
)

// Track names one of the two independent acceptance dimensions of a job.
type Track int

const (
	// Labour is claimed by a labour team that performs the harvest.
	Labour Track = iota + 1

	// Transport is claimed by a vehicle owner that moves the harvest.
	Transport
)

// Tracks lists every track in a stable order.
func Tracks() []Track {
	return []Track{Labour, Transport}
}

// ParseTrack accepts "labour" or "transport".
func ParseTrack(s string) (Track, error) {
	switch s {
	case "labour":
		return Labour, nil
	case "transport":
		return Transport, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("track", fmt.Errorf("%q is not a valid track", s))
	}
}

func (t Track) String() string {
	switch t {
	case Labour:
		return "labour"
	case Transport:
		return "transport"
	default:
		return "unknown"
	}
}

// Validate rejects anything but Labour and Transport.
func (t Track) Validate() error {
	if t != Labour && t != Transport {
		return errs.NewValueIsInvalidErrorWithCause("track", fmt.Errorf("%d is not a valid track", t))
	}
	return nil
}
