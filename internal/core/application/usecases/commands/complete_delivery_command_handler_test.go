package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/agent"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPoolAgentRepository struct{ mock.Mock }

func (m *MockPoolAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockPoolAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockPoolAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockPoolAgentRepository) ReserveFirstAvailable(ctx context.Context) (*agent.Agent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

type MockPoolUoW struct{ mock.Mock }

func (m *MockPoolUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPoolUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPoolUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPoolUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

type MockPoolUoWFactory struct{ mock.Mock }

func (m *MockPoolUoWFactory) Create() commands.AgentUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentUoW)
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) GetOrder(ctx context.Context, orderID kernel.UUID) (ports.RemoteOrder, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(ports.RemoteOrder), args.Error(1)
}

func (m *MockOrderStore) UpdateStatus(ctx context.Context, orderID kernel.UUID, target order.Status) error {
	args := m.Called(ctx, orderID, target)
	return args.Error(0)
}

func reservedAgent(t *testing.T, id kernel.UUID) *agent.Agent {
	t.Helper()
	a, err := agent.RestoreAgent(id, "Marco", false)
	require.NoError(t, err)
	return a
}

func poolFixture(ctx context.Context) (*MockPoolUoWFactory, *MockPoolUoW, *MockPoolAgentRepository) {
	repo := new(MockPoolAgentRepository)
	uow := new(MockPoolUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AgentRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockPoolUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory, uow, repo
}

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(agentID, orderID)

	factory, uow, repo := poolFixture(ctx)
	repo.On("Get", ctx, agentID).Return(reservedAgent(t, agentID), nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*agent.Agent")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	store := new(MockOrderStore)
	store.On("GetOrder", ctx, orderID).Return(ports.RemoteOrder{
		ID:              orderID,
		Status:          order.AssignedToAgent,
		AssignedAgentID: &agentID,
	}, nil).Once()
	store.On("UpdateStatus", ctx, orderID, order.Delivered).Return(nil).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, store)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	released := repo.Calls[len(repo.Calls)-1].Arguments.Get(1).(*agent.Agent)
	assert.True(t, released.IsAvailable())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_AgentNotFound(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(agentID, orderID)

	factory, uow, repo := poolFixture(ctx)
	repo.On("Get", ctx, agentID).
		Return(nil, errs.NewObjectNotFoundError("agent_id", agentID)).Once()

	store := new(MockOrderStore)

	h := commands.NewCompleteDeliveryCommandHandler(factory, store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	store.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_WrongAgent(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	otherAgentID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(agentID, orderID)

	factory, uow, repo := poolFixture(ctx)
	repo.On("Get", ctx, agentID).Return(reservedAgent(t, agentID), nil).Once()

	store := new(MockOrderStore)
	store.On("GetOrder", ctx, orderID).Return(ports.RemoteOrder{
		ID:              orderID,
		Status:          order.AssignedToAgent,
		AssignedAgentID: &otherAgentID,
	}, nil).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAgentNotAssignedToOrder)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCompleteDeliveryCommandHandler_Handle_NoAssignedAgent(t *testing.T) {
	ctx := t.Context()
	agentID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(agentID, orderID)

	factory, _, repo := poolFixture(ctx)
	repo.On("Get", ctx, agentID).Return(reservedAgent(t, agentID), nil).Once()

	store := new(MockOrderStore)
	store.On("GetOrder", ctx, orderID).Return(ports.RemoteOrder{
		ID:     orderID,
		Status: order.PendingAcceptance,
	}, nil).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAgentNotAssignedToOrder)
}

func TestCompleteDeliveryCommandHandler_Handle_OrderAlreadyClosed(t *testing.T) {
	for _, status := range []order.Status{order.Delivered, order.Rejected} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			agentID := kernel.NewUUID()
			orderID := kernel.NewUUID()
			cmd, _ := commands.NewCompleteDeliveryCommand(agentID, orderID)

			factory, uow, repo := poolFixture(ctx)
			repo.On("Get", ctx, agentID).Return(reservedAgent(t, agentID), nil).Once()

			store := new(MockOrderStore)
			store.On("GetOrder", ctx, orderID).Return(ports.RemoteOrder{
				ID:              orderID,
				Status:          status,
				AssignedAgentID: &agentID,
			}, nil).Once()

			h := commands.NewCompleteDeliveryCommandHandler(factory, store)
			err := h.Handle(ctx, cmd)
			require.Error(t, err)
			require.ErrorIs(t, err, commands.ErrOrderAlreadyClosed)

			// availability untouched
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestCompleteDeliveryCommandHandler_Handle_PushFailureAfterRelease(t *testing.T) {
	// the release commit happens before the status push, so a push failure
	// surfaces to the caller while the agent stays released
	ctx := t.Context()
	agentID := kernel.NewUUID()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewCompleteDeliveryCommand(agentID, orderID)

	factory, uow, repo := poolFixture(ctx)
	repo.On("Get", ctx, agentID).Return(reservedAgent(t, agentID), nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*agent.Agent")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	pushErr := errs.NewUpstreamFailureError("order-service", 500, "boom")
	store := new(MockOrderStore)
	store.On("GetOrder", ctx, orderID).Return(ports.RemoteOrder{
		ID:              orderID,
		Status:          order.AssignedToAgent,
		AssignedAgentID: &agentID,
	}, nil).Once()
	store.On("UpdateStatus", ctx, orderID, order.Delivered).Return(pushErr).Once()

	h := commands.NewCompleteDeliveryCommandHandler(factory, store)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrUpstreamFailure)

	uow.AssertExpectations(t)
	store.AssertExpectations(t)
}
