package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
)

// AgentServer handles the delivery agent service's HTTP surface: the agent
// pool and the completion flow.
type AgentServer struct {
	// Command handlers
	createAgentHandler      commands.CreateAgentCommandHandler
	reserveAgentHandler     commands.ReserveAgentCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	// Query handlers
	getAgentHandler queries.GetAgentQueryHandler
}

// NewAgentServer creates the agent service HTTP server with the required
// command and query handlers.
func NewAgentServer(
	createAgentHandler commands.CreateAgentCommandHandler,
	reserveAgentHandler commands.ReserveAgentCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getAgentHandler queries.GetAgentQueryHandler,
) *AgentServer {
	return &AgentServer{
		createAgentHandler:      createAgentHandler,
		reserveAgentHandler:     reserveAgentHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		getAgentHandler:         getAgentHandler,
	}
}

// RegisterRoutes attaches the agent service routes to the echo instance.
func (s *AgentServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/delivery/agents", s.CreateAgent)
	e.GET("/delivery/agents/:agent_id", s.GetAgent)
	e.POST("/delivery/assign", s.AssignAgent)
	e.POST("/delivery/complete-delivery", s.CompleteDelivery)
}

// Health handles GET /health.
func (s *AgentServer) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthOK())
}

type createAgentRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateAgent handles POST /delivery/agents. New agents always join the pool
// available.
func (s *AgentServer) CreateAgent(ctx echo.Context) error {
	var req createAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewCreateAgentCommand(agentID, req.Name)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.createAgentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, AgentResponse{
		ID:        agentID.String(),
		Name:      req.Name,
		Available: true,
	})
}

// GetAgent handles GET /delivery/agents/:agent_id.
func (s *AgentServer) GetAgent(ctx echo.Context) error {
	agentID, err := kernel.UUIDFromString(ctx.Param("agent_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetAgentQuery(agentID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getAgentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toAgentResponse(result))
}

type assignAgentRequest struct {
	OrderID string `json:"order_id" validate:"required,uuid4"`
}

type assignAgentResponse struct {
	AgentID string `json:"agent_id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// AssignAgent handles POST /delivery/assign. Responds 409 when the pool is
// exhausted.
func (s *AgentServer) AssignAgent(ctx echo.Context) error {
	var req assignAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewReserveAgentCommand(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	agentID, err := s.reserveAgentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, assignAgentResponse{
		AgentID: agentID.String(),
		OrderID: orderID.String(),
		Status:  "assigned",
	})
}

type completeDeliveryRequest struct {
	AgentID string `json:"agent_id" validate:"required,uuid4"`
	OrderID string `json:"order_id" validate:"required,uuid4"`
}

type completeDeliveryResponse struct {
	Msg                string `json:"msg"`
	AgentID            string `json:"agent_id"`
	AgentAvailable     bool   `json:"agent_available"`
	OrderStatusUpdated bool   `json:"order_status_updated"`
}

// CompleteDelivery handles POST /delivery/complete-delivery.
func (s *AgentServer) CompleteDelivery(ctx echo.Context) error {
	var req completeDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return badRequest(ctx, err)
	}
	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(agentID, orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, completeDeliveryResponse{
		Msg:                "Delivery completed",
		AgentID:            agentID.String(),
		AgentAvailable:     true,
		OrderStatusUpdated: true,
	})
}
