package commands_test

import (
	"testing"

	"harvest/internal/core/application/usecases/commands"
	"harvest/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompleteJobCommand(t *testing.T) {
	jobID := kernel.NewUUID()

	cmd, err := commands.NewCompleteJobCommand(jobID)

	require.NoError(t, err)
	assert.Equal(t, jobID, cmd.JobID())

	_, err = commands.NewCompleteJobCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	require.ErrorIs(t, commands.CompleteJobCommand{}.Validate(), commands.ErrCompleteJobCommandIsNotConstructed)
}
