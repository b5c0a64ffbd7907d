package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// GetMenuQueryHandler retrieves a restaurant's menu from the database.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query. An unknown restaurant yields an empty menu
// rather than an error; existence checks belong to the restaurant queries.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]MenuItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			description,
			price,
			available
		FROM menu_items
		WHERE restaurant_id = ?
		ORDER BY name
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, restaurantID uuid.UUID
			name             string
			description      sql.NullString
			price            decimal.Decimal
			available        bool
		)

		if err = rows.Scan(&id, &restaurantID, &name, &description, &price, &available); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		ownerID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}

		item := MenuItemResponse{
			ID:           itemID,
			RestaurantID: ownerID,
			Name:         name,
			Price:        price,
			Available:    available,
		}
		if description.Valid {
			item.Description = &description.String
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
