// Package agentrepo provides data transfer objects and mapping functions for
// delivery agent persistence, including the atomic pool reservation that the
// acceptance saga depends on.
package agentrepo

import (
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agent aggregates.
type AgentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255)"`
	Available bool      `gorm:"index"`
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent domain aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	return AgentDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Available: aggregate.IsAvailable(),
	}
}

// toDomain converts a database DTO to an agent domain aggregate.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return agent.RestoreAgent(id, dto.Name, dto.Available)
}
