package commands

import (
	"context"
)

// UpdateMenuItemCommandHandler applies partial updates to a menu item.
type UpdateMenuItemCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory RestaurantUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item update command in a single transaction.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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
	item, err := repo.GetMenuItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = item.Rename(*name); err != nil {
			return err
		}
	}

	if description := cmd.Description(); description != nil {
		item.Describe(description)
	}

	if price := cmd.Price(); price != nil {
		if err = item.Reprice(*price); err != nil {
			return err
		}
	}

	if available := cmd.Available(); available != nil {
		item.SetAvailable(*available)
	}

	if err = repo.UpdateMenuItem(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
