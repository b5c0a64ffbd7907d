package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose transitions are driven by the
// acceptance saga and the delivery completion coordinator; clients never
// mutate an order's status directly.
//
// State transitions:
//
//	pending_acceptance ──> accepted ──┬──> assigned_to_agent ──> ... ──> delivered
//	        │                         ├──> acceptance_failed_no_agent
//	        │                         ├──> acceptance_failed_timeout
//	        │                         ├──> acceptance_failed_agent_service_error
//	        │                         └──> acceptance_failed_unexpected
//	        └──> rejected (also reachable from accepted and preparing)
//
// The forward-progress statuses (preparing, ready_for_pickup, delivered) are
// reachable from any current status. That laxness is a documented property of
// the system, not an oversight in this implementation; see AdvanceTo.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and the wire contract.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingAcceptance is the initial status set at order creation.
	// Orders in this status are waiting for the restaurant to accept or reject them.
	PendingAcceptance

	// Accepted marks the saga's point of no return: the restaurant committed to
	// the order but no delivery agent has been reserved yet. This status is
	// transient; concurrent readers observing it cannot distinguish "in flight"
	// from "about to fail".
	Accepted

	// AssignedToAgent indicates a delivery agent was successfully reserved
	// for the order.
	AssignedToAgent

	// AcceptanceFailedNoAgent records that the agent service could not be
	// reached at the transport level during acceptance.
	AcceptanceFailedNoAgent

	// AcceptanceFailedTimeout records that the agent service did not respond
	// within the reservation deadline.
	AcceptanceFailedTimeout

	// AcceptanceFailedAgentServiceError records that the agent service
	// responded with a failure status, including the no-agent-available conflict.
	AcceptanceFailedAgentServiceError

	// AcceptanceFailedUnexpected records any uncategorized acceptance failure.
	AcceptanceFailedUnexpected

	// Rejected is a terminal status: the restaurant declined the order.
	Rejected

	// Preparing indicates the restaurant is preparing the order.
	Preparing

	// ReadyForPickup indicates the order is ready for the agent to collect.
	ReadyForPickup

	// Delivered is a terminal status: the delivery was completed.
	// Ratings may only be attached while an order is exactly in this status.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire labels.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                           "unknown",
		PendingAcceptance:                 "pending_acceptance",
		Accepted:                          "accepted",
		AssignedToAgent:                   "assigned_to_agent",
		AcceptanceFailedNoAgent:           "acceptance_failed_no_agent",
		AcceptanceFailedTimeout:           "acceptance_failed_timeout",
		AcceptanceFailedAgentServiceError: "acceptance_failed_agent_service_error",
		AcceptanceFailedUnexpected:        "acceptance_failed_unexpected",
		Rejected:                          "rejected",
		Preparing:                         "preparing",
		ReadyForPickup:                    "ready_for_pickup",
		Delivered:                         "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, Unknown)
	return valid
}

// ParseStatus converts a stored or transmitted label into a Status.
// Matching is case-insensitive. Returns an error for labels outside the
// closed enumeration.
func ParseStatus(label string) (Status, error) {
	normalized := strings.ToLower(label)
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", label),
	)
}

// ParseTarget converts a requested target label into a Status.
// Only labels that the status-update entry point accepts are valid targets:
// accepted, rejected, preparing, ready_for_pickup, delivered. Saga-internal
// statuses (pending_acceptance, assigned_to_agent, acceptance_failed_*)
// cannot be requested by callers. Matching is case-insensitive.
func ParseTarget(label string) (Status, error) {
	status, err := ParseStatus(label)
	if err != nil {
		return Unknown, err
	}

	switch status {
	case Accepted, Rejected, Preparing, ReadyForPickup, Delivered:
		return status, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not a supported target status", label),
		)
	}
}

// Validate checks if the Status value is part of the closed enumeration.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the snake_case wire label of the status.
// Implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, for which it returns "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further saga or
// coordinator activity. Terminal statuses are rejected and delivered.
//
// Note that the forward-progress transitions in AdvanceTo deliberately skip
// this check; IsTerminal guards the completion coordinator and ratings only.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Delivered
}

// IsAcceptanceFailure reports whether the status records a failed
// acceptance attempt.
func (s Status) IsAcceptanceFailure() bool {
	switch s {
	case AcceptanceFailedNoAgent, AcceptanceFailedTimeout,
		AcceptanceFailedAgentServiceError, AcceptanceFailedUnexpected:
		return true
	default:
		return false
	}
}

// Accept transitions the status to Accepted, the saga's point of no return.
//
// Valid transitions:
//   - pending_acceptance -> accepted
//
// Any other current status fails with an invalid-transition error and
// must produce no side effects in the caller.
func (s Status) Accept() (Status, error) {
	if s != PendingAcceptance {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order cannot be accepted from status: %s", s),
		)
	}

	return Accepted, nil
}

// AssignToAgent transitions the status to AssignedToAgent after a
// successful agent reservation.
//
// Valid transitions:
//   - accepted -> assigned_to_agent
func (s Status) AssignToAgent() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order cannot be assigned to an agent from status: %s", s),
		)
	}

	return AssignedToAgent, nil
}

// FailAcceptance transitions the status to one of the four acceptance
// failure statuses after the reservation call failed. The order must be in
// the transient accepted status; the failure status records why the attempt
// did not complete, so the order is never left silently in accepted.
func (s Status) FailAcceptance(failure Status) (Status, error) {
	if !failure.IsAcceptanceFailure() {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not an acceptance failure status", failure),
		)
	}

	if s != Accepted {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("acceptance cannot fail from status: %s", s),
		)
	}

	return failure, nil
}

// Reject transitions the status to the terminal Rejected status.
//
// Valid transitions:
//   - pending_acceptance -> rejected
//   - accepted -> rejected
//   - preparing -> rejected
func (s Status) Reject() (Status, error) {
	if s != PendingAcceptance && s != Accepted && s != Preparing {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("order cannot be rejected from status: %s", s),
		)
	}

	return Rejected, nil
}

// AdvanceTo transitions the status to one of the forward-progress statuses:
// preparing, ready_for_pickup, or delivered.
//
// Forward-progress targets are accepted from ANY current status, including
// terminal ones. This mirrors the system's documented behavior and must not
// be tightened here; callers that need stricter guarantees check IsTerminal
// themselves (as the completion coordinator does).
func (s Status) AdvanceTo(target Status) (Status, error) {
	switch target {
	case Preparing, ReadyForPickup, Delivered:
		return target, nil
	default:
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a forward-progress status", target),
		)
	}
}
