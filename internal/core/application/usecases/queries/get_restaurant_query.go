package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

// GetRestaurantQuery retrieves a single restaurant.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery creates a query to retrieve one restaurant by its identifier.
func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRestaurantQueryIsNotConstructed if validation fails.
func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to retrieve.
func (q GetRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// RestaurantResponse is the read model of a single restaurant.
// Shared by the single-restaurant and restaurant-listing queries.
type RestaurantResponse struct {
	ID     kernel.UUID
	Name   string
	Online bool
}
