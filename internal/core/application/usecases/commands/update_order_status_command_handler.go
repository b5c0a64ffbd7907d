package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order status transitions, including
// the acceptance saga.
//
// The saga runs in two separate transactions. The first commits the
// "accepted" status before the reservation call, making it the point of no
// return: whatever happens next, the order never silently returns to
// pending_acceptance. The second transaction records the outcome, either the
// assigned agent or one of the acceptance failure statuses. The failure
// status is always persisted before the reservation error is surfaced to the
// caller.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	reservation ports.AgentReservation
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
// Requires an OrderUoWFactory for persistence and an AgentReservation client
// for the acceptance saga's remote step.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	reservation ports.AgentReservation,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		reservation: reservation,
	}
}

// Handle processes the status update command. Requesting "accepted" runs the
// acceptance saga; the remaining targets are applied in a single transaction
// under the domain's transition rules.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.TargetStatus() == order.Accepted {
		return h.accept(ctx, cmd.OrderID())
	}

	return h.mutate(ctx, cmd.OrderID(), func(o *order.Order) error {
		if cmd.TargetStatus() == order.Rejected {
			return o.Reject()
		}
		return o.AdvanceTo(cmd.TargetStatus())
	})
}

// accept runs the acceptance saga for the given order.
func (h *UpdateOrderStatusCommandHandler) accept(ctx context.Context, orderID kernel.UUID) error {
	// Point of no return: accepted is committed before the remote call.
	if err := h.mutate(ctx, orderID, func(o *order.Order) error {
		return o.Accept()
	}); err != nil {
		return err
	}

	agentID, reserveErr := h.reservation.Reserve(ctx, orderID)
	if reserveErr == nil {
		return h.mutate(ctx, orderID, func(o *order.Order) error {
			return o.AssignAgent(agentID)
		})
	}

	failure := classifyReservationFailure(reserveErr)
	if err := h.mutate(ctx, orderID, func(o *order.Order) error {
		return o.FailAcceptance(failure)
	}); err != nil {
		return errors.Join(reserveErr, err)
	}

	return reserveErr
}

// mutate loads the order, applies the change and persists it in one transaction.
func (h *UpdateOrderStatusCommandHandler) mutate(
	ctx context.Context,
	orderID kernel.UUID,
	change func(*order.Order) error,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = change(aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// classifyReservationFailure maps a reservation error to the acceptance
// failure status that records it. The no-agent conflict and other remote
// failure responses share a status but remain distinguishable through the
// returned error.
func classifyReservationFailure(err error) order.Status {
	switch {
	case errors.Is(err, ports.ErrNoAgentAvailable):
		return order.AcceptanceFailedAgentServiceError
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return order.AcceptanceFailedNoAgent
	case errors.Is(err, errs.ErrUpstreamTimeout):
		return order.AcceptanceFailedTimeout
	case errors.Is(err, errs.ErrUpstreamFailure):
		return order.AcceptanceFailedAgentServiceError
	default:
		return order.AcceptanceFailedUnexpected
	}
}
