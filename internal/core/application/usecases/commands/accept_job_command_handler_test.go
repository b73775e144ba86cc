package commands_test

import (
	"errors"
	"testing"
	"time"

	"harvest/internal/core/application/usecases/commands"
	"harvest/internal/core/domain/model/job"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingJob(t *testing.T) *job.HarvestJob {
	t.Helper()
	j, err := job.NewHarvestJob(kernel.NewUUID(), kernel.NewUUID(), 5, 10, "A", "B", time.Now().UTC())
	require.NoError(t, err)
	_ = j.PullEvents()
	return j
}

func TestAcceptJobCommandHandler_Handle_Success(t *testing.T) {
	for _, track := range job.Tracks() {
		t.Run("should accept "+track.String(), func(t *testing.T) {
			ctx := t.Context()
			stored := newPendingJob(t)
			providerID := kernel.NewUUID()
			cmd, err := commands.NewAcceptJobCommand(stored.ID(), providerID, track)
			require.NoError(t, err)

			repo := new(MockJobRepository)
			uow := new(MockJobUoW)

			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("JobRepository").Return(repo).Once(),
				repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
				repo.On("UpdateAcceptance", ctx, stored, track).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockJobUoWFactory)
			factory.On("Create").Return(uow).Once()

			handler := commands.NewAcceptJobCommandHandler(factory)
			accepted, err := handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, job.TrackAccepted, accepted.TrackStatus(track))
			assert.True(t, accepted.Provider(track).IsEqual(providerID))
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestAcceptJobCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	cmd, err := commands.NewAcceptLabourCommand(jobID, kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", ctx, jobID).Return(nil, errs.NewObjectNotFoundError("job", jobID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "UpdateAcceptance", mock.Anything, mock.Anything, mock.Anything)
}

func TestAcceptJobCommandHandler_Handle_AlreadyAccepted(t *testing.T) {
	ctx := t.Context()
	stored := newPendingJob(t)
	first := kernel.NewUUID()
	require.NoError(t, stored.AcceptLabour(first))

	cmd, err := commands.NewAcceptLabourCommand(stored.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var conflict *errs.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.String(), conflict.Holder)
	assert.True(t, stored.LabourProvider().IsEqual(first))
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptJobCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	stored := newPendingJob(t)
	winner := kernel.NewUUID()
	cmd, err := commands.NewAcceptTransportCommand(stored.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)
	raceErr := errs.NewConflictErrorWithCause("transport", stored.ID().String(), winner.String(), job.ErrTrackAlreadyAccepted)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("UpdateAcceptance", ctx, stored, job.Transport).Return(raceErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory)
	accepted, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, job.ErrTrackAlreadyAccepted)
	assert.Nil(t, accepted)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptJobCommandHandler_Handle_CompletedJob(t *testing.T) {
	ctx := t.Context()
	stored := newPendingJob(t)
	require.NoError(t, stored.Complete())
	cmd, err := commands.NewAcceptLabourCommand(stored.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrJobAlreadyCompleted)
}

func TestAcceptJobCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockJobUoWFactory)
	handler := commands.NewAcceptJobCommandHandler(factory)

	_, err := handler.Handle(t.Context(), commands.AcceptJobCommand{})

	require.ErrorIs(t, err, commands.ErrAcceptJobCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAcceptJobCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	stored := newPendingJob(t)
	cmd, err := commands.NewAcceptLabourCommand(stored.ID(), kernel.NewUUID())
	require.NoError(t, err)

	repo := new(MockJobRepository)
	uow := new(MockJobUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("UpdateAcceptance", ctx, stored, job.Labour).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
}
