package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetAvailableRestaurantsQueryIsNotConstructed = errors.New(
	"GetAvailableRestaurantsQuery must be created via NewGetAvailableRestaurantsQuery constructor",
)

// GetAvailableRestaurantsQuery retrieves all restaurants currently accepting
// orders. This is a parameterless query.
//
// Example:
//
//	query := NewGetAvailableRestaurantsQuery()
//	handler := NewGetAvailableRestaurantsQueryHandler(db)
//
//	restaurants, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list restaurants: %w", err)
//	}
//	fmt.Printf("%d restaurants online\n", len(restaurants))
type GetAvailableRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableRestaurantsQuery creates a query to list online restaurants.
func NewGetAvailableRestaurantsQuery() GetAvailableRestaurantsQuery {
	return GetAvailableRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableRestaurantsQueryIsNotConstructed if validation fails.
func (q GetAvailableRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRestaurantsQueryIsNotConstructed)
}
