package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
	ErrRestaurantNameIsRequired = errors.New("restaurant name is required")
)

// CreateRestaurantCommand represents a request to register a new restaurant.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	online       bool

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a new restaurant.
// Validates that the restaurant ID is valid and the name is not empty.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	online bool,
) (CreateRestaurantCommand, error) {
	restaurantCommand := CreateRestaurantCommand{
		online: online,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantCommand.setRestaurantID(restaurantID),
		restaurantCommand.setName(name),
	); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return restaurantCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRestaurantCommandIsNotConstructed if validation fails.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the unique identifier for the restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Online reports whether the restaurant starts accepting orders immediately.
func (c CreateRestaurantCommand) Online() bool {
	return c.online
}

func (c *CreateRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *CreateRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}

	c.name = name
	return nil
}
