// Package restaurantrepo provides data transfer objects and mapping functions
// for restaurant and menu item persistence.
package restaurantrepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantDTO represents the database structure for persisting restaurant aggregates.
type RestaurantDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"type:varchar(255)"`
	Online bool      `gorm:"index"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO represents the database structure for persisting menu items.
// The price is stored as a fixed-point numeric column to avoid floating
// point drift.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Name         string    `gorm:"type:varchar(255)"`
	Description  *string
	Price        decimal.Decimal `gorm:"type:numeric(10,2)"`
	Available    bool
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:     aggregate.ID().Bytes(),
		Name:   aggregate.Name(),
		Online: aggregate.IsOnline(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Online)
}

func menuItemFromDomain(item *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Price:        item.Price(),
		Available:    item.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(
		id, restaurantID, dto.Name, dto.Description, dto.Price, dto.Available,
	)
}
