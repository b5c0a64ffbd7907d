package agent

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Domain errors for agent operations.
var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
	// ErrAgentIsNotAvailable is returned when reserving an agent that is already bound to an order.
	ErrAgentIsNotAvailable = errors.New("agent is not available")
)

// Agent represents a delivery agent in the system.
// It is an aggregate root that manages agent identity and availability.
//
// Availability is a proxy for "bound to zero or one orders": the model carries
// no agent-to-order back-reference, so correctness depends on the acceptance
// saga and the completion coordinator toggling the flag in lock-step with
// order state. Reservation must therefore happen through an atomic
// check-and-set at the storage layer (see the agent repository); the Reserve
// method here only enforces the rule for in-memory instances.
//
// Business rules:
//   - Agent must have a valid UUID and a non-empty name
//   - A new agent is available unless created otherwise
//   - Reserve flips available to false and fails on an unavailable agent
//   - Release flips available to true and is idempotent
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID

	// name is the agent's display name
	name string

	// available reports whether the agent can be reserved for a delivery
	available bool

	// isConstructed ensures the agent was created via NewAgent or RestoreAgent
	isConstructed bool
}

// NewAgent creates a new available Agent with validation.
//
// Example:
//
//	a, err := agent.NewAgent(kernel.NewUUID(), "Jamie")
//	if err != nil {
//	    // Handle validation error
//	}
func NewAgent(id kernel.UUID, name string) (*Agent, error) {
	a := &Agent{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent from persistence without changing state.
func RestoreAgent(id kernel.UUID, name string, available bool) (*Agent, error) {
	a, err := NewAgent(id, name)
	if err != nil {
		return nil, err
	}

	a.available = available
	return a, nil
}

// Validate ensures the Agent instance was properly constructed through NewAgent.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}

	return nil
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// IsAvailable reports whether the agent can be reserved for a delivery.
func (a *Agent) IsAvailable() bool {
	return a.available
}

// Reserve binds the agent to a delivery by flipping availability to false.
// Returns ErrAgentIsNotAvailable if the agent is already bound.
func (a *Agent) Reserve() error {
	if !a.available {
		return ErrAgentIsNotAvailable
	}

	a.available = false
	return nil
}

// Release returns the agent to the pool by flipping availability to true.
// Releasing an already-available agent is not an error.
func (a *Agent) Release() {
	a.available = true
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	a.name = name
	return nil
}
