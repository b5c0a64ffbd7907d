package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ReserveAgentCommandHandler reserves one available delivery agent.
//
// The pick-and-mark step runs as a single atomic repository operation so
// concurrent reservations never return the same agent; under contention every
// caller gets a distinct agent or ports.ErrNoAgentAvailable.
type ReserveAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewReserveAgentCommandHandler creates a handler for agent reservations.
func NewReserveAgentCommandHandler(uowFactory AgentUoWFactory) ReserveAgentCommandHandler {
	return ReserveAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command and returns the reserved agent's
// identifier. Returns ports.ErrNoAgentAvailable when the pool is exhausted.
func (h *ReserveAgentCommandHandler) Handle(
	ctx context.Context,
	cmd ReserveAgentCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reserved, err := uow.AgentRepository().ReserveFirstAvailable(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, ports.ErrNoAgentAvailable
		}
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return reserved.ID(), nil
}
