package commands

import (
	"context"
)

// UpdateRestaurantCommandHandler applies partial updates to a restaurant.
type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateRestaurantCommandHandler creates a handler for restaurant updates.
func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant update command in a single transaction.
func (h *UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) error {
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
	aggregate, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = aggregate.Rename(*name); err != nil {
			return err
		}
	}

	if online := cmd.Online(); online != nil {
		aggregate.SetOnline(*online)
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
