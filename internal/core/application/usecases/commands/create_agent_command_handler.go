package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/agent"
)

// CreateAgentCommandHandler handles the business logic for agent registration.
type CreateAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewCreateAgentCommandHandler creates a handler for agent registration.
// Requires an AgentUoWFactory for transactional persistence.
func NewCreateAgentCommandHandler(uowFactory AgentUoWFactory) CreateAgentCommandHandler {
	return CreateAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
// The new agent starts available for reservation.
func (h *CreateAgentCommandHandler) Handle(ctx context.Context, cmd CreateAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newAgent, err := agent.NewAgent(cmd.AgentID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.AgentRepository().Add(ctx, newAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
