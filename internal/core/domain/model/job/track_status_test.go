package job_test

import (
	"testing"

	"harvest/internal/core/domain/model/job"
	"harvest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackStatus_Accept(t *testing.T) {
	t.Run("should accept pending track", func(t *testing.T) {
		next, err := job.TrackPending.Accept()

		require.NoError(t, err)
		assert.Equal(t, job.TrackAccepted, next)
	})

	t.Run("should never accept twice", func(t *testing.T) {
		_, err := job.TrackAccepted.Accept()

		require.ErrorIs(t, err, job.ErrTrackAlreadyAccepted)
	})

	t.Run("should reject unknown track status", func(t *testing.T) {
		_, err := job.TrackUnknown.Accept()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTrackStatus_ValidateCanHaveProvider(t *testing.T) {
	testCases := []struct {
		name        string
		status      job.TrackStatus
		hasProvider bool
		wantErr     string
	}{
		{"pending without provider", job.TrackPending, false, ""},
		{"accepted with provider", job.TrackAccepted, true, ""},
		{"pending with provider", job.TrackPending, true, "pending is not a valid track status to have a provider"},
		{"accepted without provider", job.TrackAccepted, false, "accepted is not a valid track status to have no provider"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.status.ValidateCanHaveProvider(tc.hasProvider)

			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestTrackStatus_Parse(t *testing.T) {
	pending, err := job.ParseTrackStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, job.TrackPending, pending)

	accepted, err := job.ParseTrackStatus("accepted")
	require.NoError(t, err)
	assert.Equal(t, job.TrackAccepted, accepted)

	_, err = job.ParseTrackStatus("rejected")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTrack_Parse(t *testing.T) {
	for _, track := range job.Tracks() {
		parsed, err := job.ParseTrack(track.String())

		require.NoError(t, err)
		assert.Equal(t, track, parsed)
		require.NoError(t, track.Validate())
	}

	_, err := job.ParseTrack("farmer")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, job.Track(0).Validate())
}
