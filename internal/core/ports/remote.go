package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// ErrNoAgentAvailable signals the agent pool's specific conflict case: the
// service answered, but every agent is currently reserved. Callers surface it
// distinctly from generic upstream failures.
var ErrNoAgentAvailable = errors.New("no delivery agent is available")

// AgentReservation is the order service's view of the delivery agent service.
// Implementations classify transport failures into the errs upstream error
// types so callers can map them to acceptance outcomes.
type AgentReservation interface {
	// Reserve asks the agent service to reserve an available agent for the
	// given order. Returns the reserved agent's identifier.
	//
	// Error contract:
	//   - errs.UpstreamUnavailableError when the service cannot be reached
	//   - errs.UpstreamTimeoutError when the call exceeds its deadline
	//   - ErrNoAgentAvailable when the service reports no agents available
	//   - errs.UpstreamFailureError for any other non-success response
	Reserve(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error)
}

// RemoteOrder is the subset of order state the delivery agent service needs
// when coordinating a delivery completion.
type RemoteOrder struct {
	ID              kernel.UUID
	Status          order.Status
	AssignedAgentID *kernel.UUID
}

// OrderStore is the agent service's view of the order service.
type OrderStore interface {
	// GetOrder fetches the current state of an order.
	GetOrder(ctx context.Context, orderID kernel.UUID) (RemoteOrder, error)

	// UpdateStatus pushes a status transition to the order service.
	UpdateStatus(ctx context.Context, orderID kernel.UUID, target order.Status) error
}
