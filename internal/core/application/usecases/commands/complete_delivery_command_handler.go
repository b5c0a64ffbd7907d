package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

var (
	// ErrAgentNotAssignedToOrder is returned when an agent tries to complete
	// a delivery for an order that is assigned to someone else (or nobody).
	ErrAgentNotAssignedToOrder = errors.New("agent is not assigned to this order")

	// ErrOrderAlreadyClosed is returned when the order is already delivered
	// or rejected.
	ErrOrderAlreadyClosed = errors.New("order is already delivered or rejected")
)

// CompleteDeliveryCommandHandler coordinates delivery completion across the
// agent pool and the remote order store.
//
// The agent is released and committed before the delivered status is pushed
// to the order store. A push failure therefore leaves the agent available
// while the order still reads assigned_to_agent; the caller sees the push
// error and the order can be advanced again, but the release itself is not
// rolled back.
type CompleteDeliveryCommandHandler struct {
	uowFactory AgentUoWFactory
	orders     ports.OrderStore
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
// Requires an AgentUoWFactory for the pool and an OrderStore client for the
// cross-service order checks and the final status push.
func NewCompleteDeliveryCommandHandler(
	uowFactory AgentUoWFactory,
	orders ports.OrderStore,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
	}
}

// Handle processes the delivery completion command.
//
// Verifies, in order: the agent exists, the remote order exists, the order is
// assigned to this agent, and the order is not already closed. Only then is
// the agent released and the delivered status pushed.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	repo := uow.AgentRepository()
	assignedAgent, err := repo.Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	remoteOrder, err := h.orders.GetOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if remoteOrder.AssignedAgentID == nil || !remoteOrder.AssignedAgentID.IsEqual(cmd.AgentID()) {
		return ErrAgentNotAssignedToOrder
	}

	if remoteOrder.Status.IsTerminal() {
		return ErrOrderAlreadyClosed
	}

	assignedAgent.Release()
	if err = repo.Update(ctx, assignedAgent); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.orders.UpdateStatus(ctx, cmd.OrderID(), order.Delivered)
}
