package jobrepo

import (
	"context"
	"errors"
	"iter"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects aggregates whose events are published after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a repository on db. tracker may be nil for
// read-only use.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new job.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.HarvestJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("job", aggregate.ID().String(), nil, err)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.HarvestJob, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateAcceptance writes the accepted track with a single conditional
// UPDATE. The row only changes if the track is still pending and the job
// is not completed; otherwise the stored row is read back to report who
// holds the track.
func (r *GormJobRepository) UpdateAcceptance(ctx context.Context, aggregate *job.HarvestJob, track job.Track) error {
	if err := errors.Join(aggregate.Validate(), track.Validate()); err != nil {
		return err
	}

	providerID := aggregate.Provider(track)
	if aggregate.TrackStatus(track) != job.TrackAccepted || providerID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			track.String(), errors.New("aggregate has no accepted provider to store"),
		)
	}

	statusColumn, providerColumn := trackColumns(track)
	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Where(statusColumn+" = ?", job.TrackPending.String()).
		Where("status = ?", job.StatusPending.String()).
		Updates(map[string]any{
			statusColumn:   job.TrackAccepted.String(),
			providerColumn: providerID.Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainMiss(ctx, aggregate.ID(), func(current *job.HarvestJob) error {
			return current.CanAccept(track)
		})
	}

	r.track(aggregate)
	return nil
}

// UpdateCompletion marks the stored job completed if it is still pending.
func (r *GormJobRepository) UpdateCompletion(ctx context.Context, aggregate *job.HarvestJob) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.Status() != job.StatusCompleted {
		return errs.NewValueIsInvalidErrorWithCause("status", errors.New("aggregate is not completed"))
	}

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Where("status = ?", job.StatusPending.String()).
		Update("status", job.StatusCompleted.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.explainMiss(ctx, aggregate.ID(), func(current *job.HarvestJob) error {
			return current.CanComplete()
		})
	}

	r.track(aggregate)
	return nil
}

// ListOpen streams jobs in creation order. The query runs when the sequence
// is ranged over and the cursor is closed when the loop ends.
func (r *GormJobRepository) ListOpen(ctx context.Context, track *job.Track) iter.Seq2[*job.HarvestJob, error] {
	return func(yield func(*job.HarvestJob, error) bool) {
		query := r.db.WithContext(ctx).Model(&JobDTO{}).Order("created_at, id")
		if track != nil {
			if err := track.Validate(); err != nil {
				yield(nil, err)
				return
			}
			statusColumn, _ := trackColumns(*track)
			query = query.Where(statusColumn+" = ?", job.TrackPending.String())
		}

		rows, err := query.Rows()
		if err != nil {
			yield(nil, err)
			return
		}
		defer rows.Close()

		for rows.Next() {
			var dto JobDTO
			if err = r.db.ScanRows(rows, &dto); err != nil {
				yield(nil, err)
				return
			}

			aggregate, domainErr := toDomain(dto)
			if domainErr != nil {
				yield(nil, domainErr)
				return
			}

			if !yield(aggregate, nil) {
				return
			}
		}

		if err = rows.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// explainMiss turns a conditional update that matched no row into the error
// the caller should see: not found, or the conflict the stored state
// produces.
func (r *GormJobRepository) explainMiss(
	ctx context.Context,
	id kernel.UUID,
	check func(current *job.HarvestJob) error,
) error {
	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if err = check(current); err != nil {
		return err
	}

	return errs.NewConflictError("job", id.String(), nil)
}

func (r *GormJobRepository) track(aggregate *job.HarvestJob) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
