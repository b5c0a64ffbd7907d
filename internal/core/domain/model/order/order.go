package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

const (
	// ratingMin and ratingMax bound both the restaurant and the agent score.
	ratingMin = 1
	ratingMax = 5
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotDelivered is returned when ratings are attached to an order
	// that is not exactly in the delivered status.
	ErrOrderNotDelivered = errors.New("order must be delivered to be rated")

	// ErrAgentAlreadyAssigned is returned when a second agent assignment is
	// attempted on an order that already has one. assignedAgentID is a
	// historical record and is set at most once per order.
	ErrAgentAlreadyAssigned = errors.New("order already has an assigned agent")
)

// Order represents a customer order in the system. It is the aggregate root that
// manages the order lifecycle from creation through the acceptance saga to delivery.
//
// Order follows these invariants:
//   - Must have valid order, restaurant, and user identifiers
//   - The item list is immutable after creation
//   - Status transitions follow the rules in Status
//   - assignedAgentID is non-nil if and only if the order has passed through a
//     successful assignment; it is never cleared afterwards, even when delivery
//     completion releases the agent
//   - Ratings may only be attached while status is exactly delivered
//   - Can only be created through NewOrder (or RestoreOrder from persistence)
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// restaurantID is the owning restaurant, immutable after creation
	restaurantID kernel.UUID

	// userID is the ordering user, immutable after creation
	userID kernel.UUID

	// items is the ordered sequence of item descriptors
	items []string

	// status is the current state in the order lifecycle
	status Status

	// assignedAgentID records the reserved delivery agent (nil if never assigned)
	assignedAgentID *kernel.UUID

	// restaurantRating and agentRating are attached after delivery (nil if unrated)
	restaurantRating *int
	agentRating      *int

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in the pending_acceptance status.
// This is the only way to create a valid Order, ensuring all business
// invariants are maintained. The item slice is copied.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), restaurantID, userID, []string{"Margherita"})
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id, restaurantID, userID kernel.UUID, items []string) (*Order, error) {
	o := &Order{
		status:        PendingAcceptance,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setRestaurantID(restaurantID),
		o.setUserID(userID),
	); err != nil {
		return nil, err
	}

	o.items = append([]string(nil), items...)
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without changing state.
// Identifiers and the stored status are re-validated; no status/agent
// consistency check is performed because the lax forward transitions make
// agentless delivered orders legal.
func RestoreOrder(
	id, restaurantID, userID kernel.UUID,
	items []string,
	status Status,
	assignedAgentID *kernel.UUID,
	restaurantRating, agentRating *int,
) (*Order, error) {
	o, err := NewOrder(id, restaurantID, userID, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if assignedAgentID != nil {
		if err = assignedAgentID.Validate(); err != nil {
			return nil, err
		}
		agentID := *assignedAgentID
		o.assignedAgentID = &agentID
	}

	o.status = status
	o.restaurantRating = copyRating(restaurantRating)
	o.agentRating = copyRating(agentRating)
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// RestaurantID returns the owning restaurant's identifier.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// UserID returns the ordering user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the order's item descriptors.
func (o *Order) Items() []string {
	return append([]string(nil), o.items...)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedAgent returns the reserved delivery agent's ID.
// Returns nil if the order never passed through a successful assignment.
// The value survives delivery completion as a historical record.
func (o *Order) AssignedAgent() *kernel.UUID {
	return o.assignedAgentID
}

// RestaurantRating returns the restaurant score, or nil if unrated.
func (o *Order) RestaurantRating() *int {
	return o.restaurantRating
}

// AgentRating returns the agent score, or nil if unrated.
func (o *Order) AgentRating() *int {
	return o.agentRating
}

// Accept moves the order into the transient accepted status, the saga's
// point of no return. Only orders in pending_acceptance can be accepted;
// any other current status fails with no side effects.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignAgent records a successful reservation: the order moves to
// assigned_to_agent and the agent reference is set. The reference is set
// exactly once per order; a second assignment is rejected even though the
// status machine alone would not catch it.
func (o *Order) AssignAgent(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	if o.assignedAgentID != nil {
		return ErrAgentAlreadyAssigned
	}

	newStatus, err := o.status.AssignToAgent()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedAgentID = &agentID
	return nil
}

// FailAcceptance records why the reservation step did not complete. The
// failure status is persisted by the saga before the error is surfaced, so
// the order is never left silently in the transient accepted status.
func (o *Order) FailAcceptance(failure Status) error {
	newStatus, err := o.status.FailAcceptance(failure)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject moves the order into the terminal rejected status.
// Allowed from pending_acceptance, accepted, and preparing only.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AdvanceTo moves the order to a forward-progress status (preparing,
// ready_for_pickup, delivered) from any current status. See Status.AdvanceTo
// for why no current-status check is performed here.
func (o *Order) AdvanceTo(target Status) error {
	newStatus, err := o.status.AdvanceTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Rate attaches the restaurant and agent scores. Both scores must lie in
// [1, 5] and the order must be exactly in the delivered status.
func (o *Order) Rate(restaurantRating, agentRating int) error {
	if o.status != Delivered {
		return ErrOrderNotDelivered
	}

	if restaurantRating < ratingMin || restaurantRating > ratingMax {
		return errs.NewValueIsOutOfRangeError("restaurant_rating", restaurantRating, ratingMin, ratingMax)
	}

	if agentRating < ratingMin || agentRating > ratingMax {
		return errs.NewValueIsOutOfRangeError("agent_rating", agentRating, ratingMin, ratingMax)
	}

	o.restaurantRating = &restaurantRating
	o.agentRating = &agentRating
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.userID = id
	return nil
}

func copyRating(r *int) *int {
	if r == nil {
		return nil
	}
	v := *r
	return &v
}
