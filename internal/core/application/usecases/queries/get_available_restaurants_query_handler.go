package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// GetAvailableRestaurantsQueryHandler lists online restaurants from the database.
type GetAvailableRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRestaurantsQueryHandler creates a handler for restaurant listing.
func NewGetAvailableRestaurantsQueryHandler(db *gorm.DB) GetAvailableRestaurantsQueryHandler {
	return GetAvailableRestaurantsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for consistent output.
func (h GetAvailableRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	restaurants := make([]RestaurantResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			online
		FROM restaurants
		WHERE online
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			name   string
			online bool
		)

		if err = rows.Scan(&id, &name, &online); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		restaurants = append(restaurants, RestaurantResponse{
			ID:     restaurantID,
			Name:   name,
			Online: online,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
