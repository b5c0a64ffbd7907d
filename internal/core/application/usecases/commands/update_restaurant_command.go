package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
		"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one field must be provided")
)

// UpdateRestaurantCommand represents a partial update to a restaurant.
// Nil fields keep their current values; at least one field must be set.
type UpdateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         *string
	online       *bool

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantCommand creates a command to update a restaurant's name
// and/or online flag.
func NewUpdateRestaurantCommand(
	restaurantID kernel.UUID,
	name *string,
	online *bool,
) (UpdateRestaurantCommand, error) {
	updateCommand := UpdateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == nil && online == nil {
		return UpdateRestaurantCommand{}, ErrNothingToUpdate
	}

	if name != nil && *name == "" {
		return UpdateRestaurantCommand{}, ErrRestaurantNameIsRequired
	}

	if err := updateCommand.setRestaurantID(restaurantID); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	updateCommand.name = name
	updateCommand.online = online
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateRestaurantCommandIsNotConstructed if validation fails.
func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to update.
func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the new display name, or nil to keep the current one.
func (c UpdateRestaurantCommand) Name() *string {
	return c.name
}

// Online returns the new online flag, or nil to keep the current one.
func (c UpdateRestaurantCommand) Online() *bool {
	return c.online
}

func (c *UpdateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
