package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GetRestaurantQueryHandler retrieves a single restaurant's read model.
type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueryHandler creates a handler for single-restaurant queries.
func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the
// restaurant does not exist.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			online
		FROM restaurants
		WHERE id = ?
	`, query.RestaurantID().Bytes()).Row()

	var (
		id     uuid.UUID
		name   string
		online bool
	)

	if err := row.Scan(&id, &name, &online); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RestaurantResponse{}, errs.NewObjectNotFoundError("restaurant_id", query.RestaurantID())
		}
		return RestaurantResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RestaurantResponse{}, err
	}

	return RestaurantResponse{
		ID:     restaurantID,
		Name:   name,
		Online: online,
	}, nil
}
