package commands

import (
	"context"
)

// RateOrderCommandHandler attaches restaurant and agent scores to an order.
// The order aggregate enforces that scores are in range and that the order is
// exactly in the delivered status.
type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order rating operations.
func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rating command in a single transaction.
func (h *RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Rate(cmd.RestaurantRating(), cmd.AgentRating()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
