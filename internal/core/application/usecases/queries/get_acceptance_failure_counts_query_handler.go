package queries

import (
	"context"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/order"
)

// AcceptanceFailureCount is one failure status together with the number of
// orders currently parked in it.
type AcceptanceFailureCount struct {
	Status order.Status
	Count  int64
}

// GetAcceptanceFailureCountsQueryHandler counts orders per acceptance failure
// status straight from the database.
type GetAcceptanceFailureCountsQueryHandler struct {
	db *gorm.DB
}

// NewGetAcceptanceFailureCountsQueryHandler creates a handler for
// failure-count queries.
func NewGetAcceptanceFailureCountsQueryHandler(db *gorm.DB) GetAcceptanceFailureCountsQueryHandler {
	return GetAcceptanceFailureCountsQueryHandler{db: db}
}

// Handle executes the query. Statuses with no orders are omitted.
func (h GetAcceptanceFailureCountsQueryHandler) Handle(
	ctx context.Context,
	query GetAcceptanceFailureCountsQuery,
) ([]AcceptanceFailureCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	failureLabels := []string{
		order.AcceptanceFailedNoAgent.String(),
		order.AcceptanceFailedTimeout.String(),
		order.AcceptanceFailedAgentServiceError.String(),
		order.AcceptanceFailedUnexpected.String(),
	}

	counts := make([]AcceptanceFailureCount, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE status IN ?
		GROUP BY status
		ORDER BY status
	`, failureLabels).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			label string
			count int64
		)

		if err = rows.Scan(&label, &count); err != nil {
			return nil, err
		}

		status, parseErr := order.ParseStatus(label)
		if parseErr != nil {
			return nil, parseErr
		}

		counts = append(counts, AcceptanceFailureCount{Status: status, Count: count})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
