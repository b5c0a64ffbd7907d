package restaurant

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrMenuItemIsNotConstructed is returned when using an improperly initialized MenuItem.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
	// ErrPriceIsNegative is returned when a menu item price is below zero.
	ErrPriceIsNegative = errs.NewValueIsInvalidError("price")
)

// MenuItem represents a single dish on a restaurant's menu.
// Menu items belong to exactly one restaurant and carry a decimal price;
// the availability flag hides an item without removing it from the menu.
type MenuItem struct {
	// id uniquely identifies the menu item
	id kernel.UUID

	// restaurantID is the owning restaurant, immutable after creation
	restaurantID kernel.UUID

	// name is the item's display name
	name string

	// description is optional free text about the item
	description *string

	// price is the item's price with two-decimal precision
	price decimal.Decimal

	// available reports whether the item can currently be ordered
	available bool

	// isConstructed ensures the item was created via NewMenuItem
	isConstructed bool
}

// NewMenuItem creates a new available MenuItem with validation.
// The price must not be negative; it is rounded to two decimal places.
func NewMenuItem(
	id, restaurantID kernel.UUID,
	name string,
	description *string,
	price decimal.Decimal,
	available bool,
) (*MenuItem, error) {
	item := &MenuItem{
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setRestaurantID(restaurantID),
		item.setName(name),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	item.description = copyDescription(description)
	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence.
func RestoreMenuItem(
	id, restaurantID kernel.UUID,
	name string,
	description *string,
	price decimal.Decimal,
	available bool,
) (*MenuItem, error) {
	return NewMenuItem(id, restaurantID, name, description, price, available)
}

// Validate ensures the MenuItem was properly constructed through NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}

	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant's identifier.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the item's display name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the optional free-text description, or nil.
func (m *MenuItem) Description() *string {
	return copyDescription(m.description)
}

// Price returns the item's price.
func (m *MenuItem) Price() decimal.Decimal {
	return m.price
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.available
}

// Rename changes the item's display name.
func (m *MenuItem) Rename(name string) error {
	return m.setName(name)
}

// Describe replaces the item's description. A nil description clears it.
func (m *MenuItem) Describe(description *string) {
	m.description = copyDescription(description)
}

// Reprice changes the item's price.
func (m *MenuItem) Reprice(price decimal.Decimal) error {
	return m.setPrice(price)
}

// SetAvailable toggles whether the item can be ordered.
func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.restaurantID = id
	return nil
}

func (m *MenuItem) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrPriceIsNegative
	}
	m.price = price.Round(2)
	return nil
}

func copyDescription(d *string) *string {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
