// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status is stored under its wire label so rows stay readable across the
// services that inspect them; the item list is stored as a JSON document.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID     uuid.UUID  `gorm:"type:uuid;index"`
	UserID           uuid.UUID  `gorm:"type:uuid;index"`
	Items            string     `gorm:"type:jsonb"`
	Status           string     `gorm:"type:varchar(64);index"`
	AssignedAgentID  *uuid.UUID `gorm:"type:uuid;index"`
	RestaurantRating *int
	AgentRating      *int
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := json.Marshal(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	var agentID *uuid.UUID
	if id := aggregate.AssignedAgent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		RestaurantID:     aggregate.RestaurantID().Bytes(),
		UserID:           aggregate.UserID().Bytes(),
		Items:            string(items),
		Status:           aggregate.Status().String(),
		AssignedAgentID:  agentID,
		RestaurantRating: aggregate.RestaurantRating(),
		AgentRating:      aggregate.AgentRating(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, assignment and
// ratings using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var items []string
	if err = json.Unmarshal([]byte(dto.Items), &items); err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.AssignedAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.AssignedAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	return order.RestoreOrder(
		id, restaurantID, userID,
		items, status, agentID,
		dto.RestaurantRating, dto.AgentRating,
	)
}
