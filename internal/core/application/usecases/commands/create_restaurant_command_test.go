package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateRestaurantCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(id, "Bella Napoli", true)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.RestaurantID())
	assert.Equal(t, "Bella Napoli", cmd.Name())
	assert.True(t, cmd.Online())
}

func TestNewCreateRestaurantCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateRestaurantCommand(kernel.NewUUID(), "", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRestaurantNameIsRequired)
}

func TestNewUpdateRestaurantCommand_NothingToUpdate(t *testing.T) {
	_, err := commands.NewUpdateRestaurantCommand(kernel.NewUUID(), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNothingToUpdate)
}

func TestNewUpdateRestaurantCommand_PartialUpdate(t *testing.T) {
	online := false
	cmd, err := commands.NewUpdateRestaurantCommand(kernel.NewUUID(), nil, &online)
	require.NoError(t, err)
	assert.Nil(t, cmd.Name())
	require.NotNil(t, cmd.Online())
	assert.False(t, *cmd.Online())
}
