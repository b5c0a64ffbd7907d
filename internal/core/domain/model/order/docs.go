// Package order provides domain entities and business logic for order management
// in the fulfillment system. It implements the Order aggregate root with lifecycle
// management and the status state machine driven by the acceptance saga.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, agent
//     assignment, ratings, and lifecycle
//   - Status: A state machine over the closed status enumeration, from
//     pending_acceptance through the acceptance saga outcomes to the
//     terminal rejected and delivered statuses
//
// Key business rules:
//   - Orders are created in pending_acceptance and are never deleted
//   - Acceptance is only legal from pending_acceptance; failures of the
//     agent reservation are recorded as distinct acceptance_failed_* statuses
//   - The assigned agent reference is set at most once and never cleared
//   - Ratings require the delivered status and are bounded integers
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
