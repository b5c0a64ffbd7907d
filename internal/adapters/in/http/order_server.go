package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderServer handles the order service's HTTP surface: orders, restaurants
// and menus.
type OrderServer struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	rateOrderHandler         commands.RateOrderCommandHandler
	createRestaurantHandler  commands.CreateRestaurantCommandHandler
	updateRestaurantHandler  commands.UpdateRestaurantCommandHandler
	addMenuItemHandler       commands.AddMenuItemCommandHandler
	updateMenuItemHandler    commands.UpdateMenuItemCommandHandler

	// Query handlers
	getOrderHandler                queries.GetOrderQueryHandler
	getRestaurantHandler           queries.GetRestaurantQueryHandler
	getAvailableRestaurantsHandler queries.GetAvailableRestaurantsQueryHandler
	getMenuHandler                 queries.GetMenuQueryHandler
}

// NewOrderServer creates the order service HTTP server with the required
// command and query handlers.
func NewOrderServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	updateRestaurantHandler commands.UpdateRestaurantCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRestaurantHandler queries.GetRestaurantQueryHandler,
	getAvailableRestaurantsHandler queries.GetAvailableRestaurantsQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *OrderServer {
	return &OrderServer{
		createOrderHandler:             createOrderHandler,
		updateOrderStatusHandler:       updateOrderStatusHandler,
		rateOrderHandler:               rateOrderHandler,
		createRestaurantHandler:        createRestaurantHandler,
		updateRestaurantHandler:        updateRestaurantHandler,
		addMenuItemHandler:             addMenuItemHandler,
		updateMenuItemHandler:          updateMenuItemHandler,
		getOrderHandler:                getOrderHandler,
		getRestaurantHandler:           getRestaurantHandler,
		getAvailableRestaurantsHandler: getAvailableRestaurantsHandler,
		getMenuHandler:                 getMenuHandler,
	}
}

// RegisterRoutes attaches the order service routes to the echo instance.
func (s *OrderServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/orders", s.CreateOrder)
	e.GET("/orders/:order_id", s.GetOrder)
	e.PUT("/orders/:order_id/status", s.UpdateOrderStatus)
	e.PUT("/orders/:order_id/rate", s.RateOrder)

	e.GET("/restaurants/available", s.GetAvailableRestaurants)
	e.POST("/restaurants", s.CreateRestaurant)
	e.GET("/restaurants/:restaurant_id", s.GetRestaurant)
	e.PUT("/restaurants/:restaurant_id", s.UpdateRestaurant)
	e.POST("/restaurants/:restaurant_id/menu", s.AddMenuItem)
	e.GET("/restaurants/:restaurant_id/menu", s.GetMenu)
	e.PUT("/restaurants/:restaurant_id/menu/:item_id", s.UpdateMenuItem)
}

// Health handles GET /health.
func (s *OrderServer) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthOK())
}

type createOrderRequest struct {
	RestaurantID string   `json:"restaurant_id" validate:"required,uuid4"`
	UserID       string   `json:"user_id" validate:"required,uuid4"`
	Items        []string `json:"items" validate:"required,min=1,dive,required"`
}

// CreateOrder handles POST /orders.
func (s *OrderServer) CreateOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, err)
	}
	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return badRequest(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, restaurantID, userID, req.Items)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// GetOrder handles GET /orders/:order_id.
func (s *OrderServer) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

type updateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus handles PUT /orders/:order_id/status.
func (s *OrderServer) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

type rateOrderRequest struct {
	RestaurantRating int `json:"restaurant_rating" validate:"required,min=1,max=5"`
	AgentRating      int `json:"agent_rating" validate:"required,min=1,max=5"`
}

// RateOrder handles PUT /orders/:order_id/rate.
func (s *OrderServer) RateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req rateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(orderID, req.RestaurantRating, req.AgentRating)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// GetAvailableRestaurants handles GET /restaurants/available.
func (s *OrderServer) GetAvailableRestaurants(ctx echo.Context) error {
	query := queries.NewGetAvailableRestaurantsQuery()

	restaurants, err := s.getAvailableRestaurantsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]RestaurantResponse, len(restaurants))
	for i, r := range restaurants {
		response[i] = toRestaurantResponse(r)
	}

	return ctx.JSON(http.StatusOK, response)
}

type createRestaurantRequest struct {
	Name   string `json:"name" validate:"required"`
	Online *bool  `json:"online"`
}

// CreateRestaurant handles POST /restaurants.
func (s *OrderServer) CreateRestaurant(ctx echo.Context) error {
	var req createRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	online := true
	if req.Online != nil {
		online = *req.Online
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(restaurantID, req.Name, online)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithRestaurant(ctx, restaurantID, http.StatusCreated)
}

// GetRestaurant handles GET /restaurants/:restaurant_id.
func (s *OrderServer) GetRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurant_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	return s.respondWithRestaurant(ctx, restaurantID, http.StatusOK)
}

type updateRestaurantRequest struct {
	Name   *string `json:"name"`
	Online *bool   `json:"online"`
}

// UpdateRestaurant handles PUT /restaurants/:restaurant_id.
func (s *OrderServer) UpdateRestaurant(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurant_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateRestaurantRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateRestaurantCommand(restaurantID, req.Name, req.Online)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.updateRestaurantHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithRestaurant(ctx, restaurantID, http.StatusOK)
}

type addMenuItemRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Available   *bool           `json:"available"`
}

// AddMenuItem handles POST /restaurants/:restaurant_id/menu.
func (s *OrderServer) AddMenuItem(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurant_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req addMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err = ctx.Validate(&req); err != nil {
		return badRequest(ctx, err)
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		itemID, restaurantID, req.Name, req.Description, req.Price, available)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, MenuItemResponse{
		ID:           itemID.String(),
		RestaurantID: restaurantID.String(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Available:    available,
	})
}

// GetMenu handles GET /restaurants/:restaurant_id/menu.
func (s *OrderServer) GetMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurant_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MenuItemResponse, len(items))
	for i, item := range items {
		response[i] = toMenuItemResponse(item)
	}

	return ctx.JSON(http.StatusOK, response)
}

type updateMenuItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Available   *bool            `json:"available"`
}

// UpdateMenuItem handles PUT /restaurants/:restaurant_id/menu/:item_id.
func (s *OrderServer) UpdateMenuItem(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurant_id"))
	if err != nil {
		return badRequest(ctx, err)
	}
	itemID, err := kernel.UUIDFromString(ctx.Param("item_id"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var req updateMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		itemID, req.Name, req.Description, req.Price, req.Available)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return s.respondWithMenuItem(ctx, restaurantID, itemID)
}

func (s *OrderServer) respondWithOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toOrderResponse(result))
}

func (s *OrderServer) respondWithRestaurant(ctx echo.Context, restaurantID kernel.UUID, status int) error {
	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := s.getRestaurantHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toRestaurantResponse(result))
}

func (s *OrderServer) respondWithMenuItem(ctx echo.Context, restaurantID, itemID kernel.UUID) error {
	query, err := queries.NewGetMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, err)
	}

	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	for _, item := range items {
		if item.ID.IsEqual(itemID) {
			return ctx.JSON(http.StatusOK, toMenuItemResponse(item))
		}
	}

	return ctx.JSON(http.StatusNotFound, ErrorResponse{Detail: "menu item not found"})
}
