package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates and their menu items.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// AddMenuItem persists a new menu item for a restaurant.
	AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error

	// UpdateMenuItem persists changes to an existing menu item.
	UpdateMenuItem(ctx context.Context, item *restaurant.MenuItem) error

	// GetMenuItem retrieves a menu item by its unique identifier.
	GetMenuItem(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error)
}
