// Package queries contains read-only operations over harvest jobs and cost estimates.
package queries

import (
	"errors"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/pkg/guard"
)

var ErrListOpenJobsQueryIsNotConstructed = errors.New(
	"ListOpenJobsQuery must be created via NewListOpenJobsQuery constructor",
)

// ListOpenJobsQuery lists the jobs a provider acting in role can still claim.
// "labour" and "transport" select their track; any other role, including an
// empty one, lists every job.
//
// Example:
//
//	query := NewListOpenJobsQuery("labour")
//	jobs, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for j, err := range jobs {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(j.ID(), j.PickupLocation())
//	}
type ListOpenJobsQuery struct {
	track *job.Track

	guard guard.ConstructorGuard
}

func NewListOpenJobsQuery(role string) ListOpenJobsQuery {
	q := ListOpenJobsQuery{guard: guard.NewConstructorGuard()}
	if track, err := job.ParseTrack(role); err == nil {
		q.track = &track
	}
	return q
}

func (q ListOpenJobsQuery) Validate() error {
	return q.guard.Validate(ErrListOpenJobsQueryIsNotConstructed)
}

// Track returns the filtered track, or nil when every job is listed.
func (q ListOpenJobsQuery) Track() *job.Track {
	if q.track == nil {
		return nil
	}
	t := *q.track
	return &t
}
