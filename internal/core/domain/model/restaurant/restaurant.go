package restaurant

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Domain errors for restaurant operations.
var (
	// ErrNameIsRequired is returned when attempting to create a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant represents a restaurant in the system.
// It is an aggregate root that manages restaurant identity and its
// online flag. Only online restaurants accept new orders.
type Restaurant struct {
	// id uniquely identifies the restaurant
	id kernel.UUID

	// name is the restaurant's display name
	name string

	// online reports whether the restaurant currently accepts orders
	online bool

	// isConstructed ensures the restaurant was created via NewRestaurant
	isConstructed bool
}

// NewRestaurant creates a new Restaurant with validation.
// A new restaurant is online unless toggled otherwise.
func NewRestaurant(id kernel.UUID, name string, online bool) (*Restaurant, error) {
	r := &Restaurant{
		online:        online,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence.
func RestoreRestaurant(id kernel.UUID, name string, online bool) (*Restaurant, error) {
	return NewRestaurant(id, name, online)
}

// Validate ensures the Restaurant was properly constructed through NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}

	return nil
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// IsOnline reports whether the restaurant currently accepts orders.
func (r *Restaurant) IsOnline() bool {
	return r.online
}

// Rename changes the restaurant's display name.
func (r *Restaurant) Rename(name string) error {
	return r.setName(name)
}

// SetOnline toggles whether the restaurant accepts orders.
func (r *Restaurant) SetOnline(online bool) {
	r.online = online
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
