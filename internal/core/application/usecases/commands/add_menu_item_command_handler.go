package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/restaurant"
)

// AddMenuItemCommandHandler adds an item to an existing restaurant's menu.
type AddMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
func NewAddMenuItemCommandHandler(uowFactory RestaurantUoWFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu addition command.
// Fails with errs.ObjectNotFoundError if the restaurant does not exist.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
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

	repo := uow.RestaurantRepository()
	if _, err := repo.Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	item, err := restaurant.NewMenuItem(
		cmd.ItemID(),
		cmd.RestaurantID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Price(),
		cmd.Available(),
	)
	if err != nil {
		return err
	}

	if err = repo.AddMenuItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
