package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request by a delivery agent to close
// out an assigned order and return to the available pool.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// Validates that both identifiers are valid.
func NewCompleteDeliveryCommand(agentID, orderID kernel.UUID) (CompleteDeliveryCommand, error) {
	completeCommand := CompleteDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		completeCommand.setAgentID(agentID),
		completeCommand.setOrderID(orderID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteDeliveryCommandIsNotConstructed if validation fails.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// AgentID returns the identifier of the agent completing the delivery.
func (c CompleteDeliveryCommand) AgentID() kernel.UUID {
	return c.agentID
}

// OrderID returns the identifier of the order being delivered.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteDeliveryCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
