package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStuckOrdersQueryIsNotConstructed = errors.New(
	"GetStuckOrdersQuery must be created via NewGetStuckOrdersQuery constructor",
)

// GetStuckOrdersQuery finds orders that entered the transient "accepted"
// status and never left it. A saga crash between its two transactions strands
// the order there; this query powers the periodic report that surfaces them.
type GetStuckOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStuckOrdersQuery creates a query for orders stuck in "accepted"
// longer than the given duration. The duration must be positive.
func NewGetStuckOrdersQuery(olderThan time.Duration) (GetStuckOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStuckOrdersQuery{}, errs.NewValueIsInvalidError("older_than")
	}

	return GetStuckOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStuckOrdersQueryIsNotConstructed if validation fails.
func (q GetStuckOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStuckOrdersQueryIsNotConstructed)
}

// OlderThan returns the minimum age of the stuck orders to report.
func (q GetStuckOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStuckOrdersQueryResponse describes one order stuck in the transient
// accepted status.
type GetStuckOrdersQueryResponse struct {
	ID        kernel.UUID
	UpdatedAt time.Time
}
