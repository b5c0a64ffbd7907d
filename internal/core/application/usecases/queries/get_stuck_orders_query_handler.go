package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// GetStuckOrdersQueryHandler retrieves orders stranded in the transient
// accepted status from the database.
type GetStuckOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStuckOrdersQueryHandler creates a handler for stuck-order queries.
func NewGetStuckOrdersQueryHandler(db *gorm.DB) GetStuckOrdersQueryHandler {
	return GetStuckOrdersQueryHandler{db: db}
}

// Handle executes the query. Returns orders whose status is still "accepted"
// and whose last update is older than the query's threshold, oldest first.
func (h GetStuckOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStuckOrdersQuery,
) ([]GetStuckOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	stuck := make([]GetStuckOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			updated_at
		FROM orders
		WHERE status = ?
		  AND updated_at < ?
		ORDER BY updated_at
	`, order.Accepted.String(), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			updatedAt time.Time
		)

		if err = rows.Scan(&id, &updatedAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		stuck = append(stuck, GetStuckOrdersQueryResponse{
			ID:        orderID,
			UpdatedAt: updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stuck, nil
}
