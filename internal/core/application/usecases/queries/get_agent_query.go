package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetAgentQueryIsNotConstructed = errors.New(
	"GetAgentQuery must be created via NewGetAgentQuery constructor",
)

// GetAgentQuery retrieves a single delivery agent's current state.
type GetAgentQuery struct {
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAgentQuery creates a query to retrieve one agent by its identifier.
func NewGetAgentQuery(agentID kernel.UUID) (GetAgentQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetAgentQuery{}, err
	}

	return GetAgentQuery{
		agentID: agentID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAgentQueryIsNotConstructed if validation fails.
func (q GetAgentQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentQueryIsNotConstructed)
}

// AgentID returns the identifier of the agent to retrieve.
func (q GetAgentQuery) AgentID() kernel.UUID {
	return q.agentID
}

// GetAgentQueryResponse is the read model of a single delivery agent.
type GetAgentQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Available bool
}
