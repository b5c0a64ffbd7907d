package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order's read model from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			user_id,
			items,
			status,
			assigned_agent_id,
			restaurant_rating,
			agent_rating
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id, restaurantID, userID uuid.UUID
		itemsJSON                string
		statusLabel              string
		assignedAgentID          uuid.NullUUID
		restaurantRating         sql.NullInt64
		agentRating              sql.NullInt64
	)

	err := row.Scan(
		&id,
		&restaurantID,
		&userID,
		&itemsJSON,
		&statusLabel,
		&assignedAgentID,
		&restaurantRating,
		&agentRating,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	return buildOrderResponse(
		id, restaurantID, userID,
		itemsJSON, statusLabel,
		assignedAgentID, restaurantRating, agentRating,
	)
}

// buildOrderResponse converts raw column values into the read model.
func buildOrderResponse(
	id, restaurantID, userID uuid.UUID,
	itemsJSON, statusLabel string,
	assignedAgentID uuid.NullUUID,
	restaurantRating, agentRating sql.NullInt64,
) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	resp.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.UserID, err = kernel.UUIDFromBytes(userID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if err = json.Unmarshal([]byte(itemsJSON), &resp.Items); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Status, err = order.ParseStatus(statusLabel)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if assignedAgentID.Valid {
		agentID, idErr := kernel.UUIDFromBytes(assignedAgentID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.AssignedAgentID = &agentID
	}

	if restaurantRating.Valid {
		rating := int(restaurantRating.Int64)
		resp.RestaurantRating = &rating
	}

	if agentRating.Valid {
		rating := int(agentRating.Int64)
		resp.AgentRating = &rating
	}

	return resp, nil
}
