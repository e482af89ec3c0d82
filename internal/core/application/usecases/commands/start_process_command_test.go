package commands_test

import (
	"testing"

	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartProcessCommand_ValidInput(t *testing.T) {
	processID := kernel.NewUUID()
	workerID := kernel.NewUUID()
	vars := execution.Variables{"material": "vinyl"}

	cmd, err := commands.NewStartProcessCommand(processID, workerID, "Press-1", vars)
	require.NoError(t, err)
	assert.Equal(t, processID, cmd.ProcessID())
	assert.Equal(t, workerID, cmd.WorkerID())
	assert.Equal(t, "Press-1", cmd.Equipment())
	assert.Equal(t, vars, cmd.Variables())
}

func TestNewStartProcessCommand_NoEquipment(t *testing.T) {
	cmd, err := commands.NewStartProcessCommand(kernel.NewUUID(), kernel.NewUUID(), "", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Equipment())
	assert.Empty(t, cmd.Variables())
}

func TestNewStartProcessCommand_InvalidProcessID(t *testing.T) {
	_, err := commands.NewStartProcessCommand(kernel.UUID{}, kernel.NewUUID(), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewStartProcessCommand_InvalidVariables(t *testing.T) {
	_, err := commands.NewStartProcessCommand(kernel.NewUUID(), kernel.NewUUID(), "",
		execution.Variables{"": "vinyl"})
	require.Error(t, err)
}

func TestStartProcessCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.StartProcessCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrStartProcessCommandIsNotConstructed)
}
