package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReserveAgentCommandIsNotConstructed = errors.New(
	"ReserveAgentCommand must be created via NewReserveAgentCommand constructor",
)

// ReserveAgentCommand represents a request to reserve one available delivery
// agent. The order id is informational only; it is not recorded against the
// agent and does not deduplicate repeated reservation requests.
type ReserveAgentCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReserveAgentCommand creates a command to reserve an available agent
// for the given order.
func NewReserveAgentCommand(orderID kernel.UUID) (ReserveAgentCommand, error) {
	reserveCommand := ReserveAgentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reserveCommand.setOrderID(orderID); err != nil {
		return ReserveAgentCommand{}, err
	}

	return reserveCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReserveAgentCommandIsNotConstructed if validation fails.
func (c ReserveAgentCommand) Validate() error {
	return c.guard.Validate(ErrReserveAgentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the reservation is for.
func (c ReserveAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ReserveAgentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
