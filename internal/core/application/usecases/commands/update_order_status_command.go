package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
	ErrTargetStatusIsInvalid = errors.New(
		"target status must be accepted, rejected, preparing, ready_for_pickup or delivered",
	)
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// status. Requesting "accepted" triggers the acceptance saga; the other
// targets are applied directly.
//
// Example:
//
//	cmd, err := NewUpdateOrderStatusCommand(orderID, order.Accepted)
//	if err != nil {
//	    return fmt.Errorf("invalid status request: %w", err)
//	}
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory, reservation)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an order to a new status.
// Only externally requestable targets are accepted; saga-internal statuses
// (pending_acceptance, assigned_to_agent, acceptance_failed_*) fail with
// ErrTargetStatusIsInvalid.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTarget(target),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested target status.
func (c UpdateOrderStatusCommand) TargetStatus() order.Status {
	return c.target
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	switch target {
	case order.Accepted, order.Rejected, order.Preparing, order.ReadyForPickup, order.Delivered:
		c.target = target
		return nil
	default:
		return ErrTargetStatusIsInvalid
	}
}
