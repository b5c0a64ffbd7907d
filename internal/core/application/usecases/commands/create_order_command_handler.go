package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
)

// ErrRestaurantIsClosed is returned when an order targets a restaurant
// that exists but is currently offline.
var ErrRestaurantIsClosed = errors.New("restaurant is not accepting orders")

// CreateOrderCommandHandler handles the business logic for placing orders.
// Verifies the target restaurant exists and is online before creating the
// order in "pending_acceptance" status.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning the order and restaurant aggregates.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// Fails with errs.ObjectNotFoundError if the restaurant does not exist and
// with ErrRestaurantIsClosed if it is offline. Uses a transaction to ensure
// the order is properly persisted or rolled back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if !restaurant.IsOnline() {
		return ErrRestaurantIsClosed
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.RestaurantID(), cmd.UserID(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
