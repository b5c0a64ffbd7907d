// Package agent provides domain entities and business logic for delivery agent
// management in the fulfillment system. It implements the Agent aggregate root
// with availability handling.
//
// The package includes:
//   - Agent: The aggregate root that manages agent identity and availability
//
// Key business rules:
//   - Agents must have a valid unique identifier and a non-empty name
//   - Availability means "eligible for reservation"; an unavailable agent is
//     bound to exactly one order
//   - Reservation of an available agent must be atomic at the storage layer
//   - Releasing an agent is idempotent
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package agent
