package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a request to attach restaurant and agent scores
// to a delivered order. Score bounds are enforced by the order aggregate so
// that the rule lives in one place.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	restaurantRating int
	agentRating      int

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate a delivered order.
func NewRateOrderCommand(
	orderID kernel.UUID,
	restaurantRating, agentRating int,
) (RateOrderCommand, error) {
	rateCommand := RateOrderCommand{
		restaurantRating: restaurantRating,
		agentRating:      agentRating,
		guard:            guard.NewConstructorGuard(),
	}

	if err := rateCommand.setOrderID(orderID); err != nil {
		return RateOrderCommand{}, err
	}

	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRateOrderCommandIsNotConstructed if validation fails.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier of the order to rate.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantRating returns the requested restaurant score.
func (c RateOrderCommand) RestaurantRating() int {
	return c.restaurantRating
}

// AgentRating returns the requested agent score.
func (c RateOrderCommand) AgentRating() int {
	return c.agentRating
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
