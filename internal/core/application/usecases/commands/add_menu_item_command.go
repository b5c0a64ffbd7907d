package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
	ErrMenuItemNameIsRequired = errors.New("menu item name is required")
)

// AddMenuItemCommand represents a request to add an item to a restaurant's menu.
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	itemID       kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  *string
	price        decimal.Decimal
	available    bool

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Price validation (non-negative, two decimal places) is enforced by the
// MenuItem aggregate.
func NewAddMenuItemCommand(
	itemID, restaurantID kernel.UUID,
	name string,
	description *string,
	price decimal.Decimal,
	available bool,
) (AddMenuItemCommand, error) {
	itemCommand := AddMenuItemCommand{
		description: description,
		price:       price,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setItemID(itemID),
		itemCommand.setRestaurantID(restaurantID),
		itemCommand.setName(name),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddMenuItemCommandIsNotConstructed if validation fails.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new menu item.
func (c AddMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// RestaurantID returns the owning restaurant's identifier.
func (c AddMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the menu item's display name.
func (c AddMenuItemCommand) Name() string {
	return c.name
}

// Description returns the menu item's description, or nil if absent.
func (c AddMenuItemCommand) Description() *string {
	return c.description
}

// Price returns the menu item's price.
func (c AddMenuItemCommand) Price() decimal.Decimal {
	return c.price
}

// Available reports whether the item starts orderable.
func (c AddMenuItemCommand) Available() bool {
	return c.available
}

func (c *AddMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddMenuItemCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrMenuItemNameIsRequired
	}

	c.name = name
	return nil
}
