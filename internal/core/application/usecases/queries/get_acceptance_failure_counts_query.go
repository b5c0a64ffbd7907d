package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetAcceptanceFailureCountsQueryIsNotConstructed = errors.New(
	"GetAcceptanceFailureCountsQuery must be created via NewGetAcceptanceFailureCountsQuery constructor",
)

// GetAcceptanceFailureCountsQuery counts orders parked in each of the
// acceptance failure statuses. This is a parameterless query.
type GetAcceptanceFailureCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAcceptanceFailureCountsQuery creates a query for failure-status counts.
func NewGetAcceptanceFailureCountsQuery() GetAcceptanceFailureCountsQuery {
	return GetAcceptanceFailureCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAcceptanceFailureCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetAcceptanceFailureCountsQueryIsNotConstructed)
}
