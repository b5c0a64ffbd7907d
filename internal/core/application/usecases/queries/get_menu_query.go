package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves a restaurant's menu items.
type GetMenuQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve a restaurant's menu.
func NewGetMenuQuery(restaurantID kernel.UUID) (GetMenuQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuQuery{}, err
	}

	return GetMenuQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMenuQueryIsNotConstructed if validation fails.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant whose menu to retrieve.
func (q GetMenuQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// MenuItemResponse is the read model of a single menu item.
type MenuItemResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Description  *string
	Price        decimal.Decimal
	Available    bool
}
