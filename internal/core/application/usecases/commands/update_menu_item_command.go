package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a partial update to a menu item.
// Nil fields keep their current values; at least one field must be set.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID      kernel.UUID
	name        *string
	description *string
	price       *decimal.Decimal
	available   *bool

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item's name,
// description, price and/or availability.
func NewUpdateMenuItemCommand(
	itemID kernel.UUID,
	name, description *string,
	price *decimal.Decimal,
	available *bool,
) (UpdateMenuItemCommand, error) {
	updateCommand := UpdateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if name == nil && description == nil && price == nil && available == nil {
		return UpdateMenuItemCommand{}, ErrNothingToUpdate
	}

	if name != nil && *name == "" {
		return UpdateMenuItemCommand{}, ErrMenuItemNameIsRequired
	}

	if err := updateCommand.setItemID(itemID); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	updateCommand.name = name
	updateCommand.description = description
	updateCommand.price = price
	updateCommand.available = available
	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateMenuItemCommandIsNotConstructed if validation fails.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// ItemID returns the identifier of the menu item to update.
func (c UpdateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Name returns the new display name, or nil to keep the current one.
func (c UpdateMenuItemCommand) Name() *string {
	return c.name
}

// Description returns the new description, or nil to keep the current one.
func (c UpdateMenuItemCommand) Description() *string {
	return c.description
}

// Price returns the new price, or nil to keep the current one.
func (c UpdateMenuItemCommand) Price() *decimal.Decimal {
	return c.price
}

// Available returns the new availability flag, or nil to keep the current one.
func (c UpdateMenuItemCommand) Available() *bool {
	return c.available
}

func (c *UpdateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
