package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAgentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(id, "Marco")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.AgentID())
	assert.Equal(t, "Marco", cmd.Name())
}

func TestNewCreateAgentCommand_EmptyName(t *testing.T) {
	_, err := commands.NewCreateAgentCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAgentNameIsRequired)
}

func TestNewCreateAgentCommand_InvalidAgentID(t *testing.T) {
	_, err := commands.NewCreateAgentCommand(kernel.UUID{}, "Marco")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	cmd, _ := commands.NewCreateAgentCommand(agentID, "Marco")

	factory, uow, repo := poolFixture(ctx)
	repo.On("Add", ctx, mock.AnythingOfType("*agent.Agent")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateAgentCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	added := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*agent.Agent)
	assert.True(t, added.ID().IsEqual(agentID))
	assert.True(t, added.IsAvailable())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
