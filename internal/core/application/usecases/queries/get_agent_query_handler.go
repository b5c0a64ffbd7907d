package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GetAgentQueryHandler retrieves a single agent's read model from the database.
type GetAgentQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentQueryHandler creates a handler for single-agent queries.
func NewGetAgentQueryHandler(db *gorm.DB) GetAgentQueryHandler {
	return GetAgentQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the agent
// does not exist.
func (h GetAgentQueryHandler) Handle(
	ctx context.Context,
	query GetAgentQuery,
) (GetAgentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			available
		FROM agents
		WHERE id = ?
	`, query.AgentID().Bytes()).Row()

	var (
		id        uuid.UUID
		name      string
		available bool
	)

	if err := row.Scan(&id, &name, &available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAgentQueryResponse{}, errs.NewObjectNotFoundError("agent_id", query.AgentID())
		}
		return GetAgentQueryResponse{}, err
	}

	agentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetAgentQueryResponse{}, err
	}

	return GetAgentQueryResponse{
		ID:        agentID,
		Name:      name,
		Available: available,
	}, nil
}
