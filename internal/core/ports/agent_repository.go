package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent aggregates.
type AgentRepository interface {
	// Add persists a new agent aggregate to storage.
	Add(ctx context.Context, aggregate *agent.Agent) error

	// Update persists changes to an existing agent aggregate.
	Update(ctx context.Context, aggregate *agent.Agent) error

	// Get retrieves an agent aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// ReserveFirstAvailable atomically picks one available agent, marks it
	// unavailable and returns it. Concurrent callers never receive the same
	// agent. Returns errs.ObjectNotFoundError when no agent is available.
	ReserveFirstAvailable(ctx context.Context) (*agent.Agent, error)
}
