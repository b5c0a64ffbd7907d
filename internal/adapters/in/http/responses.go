// Package http hosts the echo servers for the order service, the delivery
// agent service and the aggregation gateway. Handlers translate between the
// wire contract (snake_case JSON) and the application layer's commands and
// queries.
package http

import (
	"github.com/shopspring/decimal"

	"fulfillment/internal/core/application/usecases/queries"
)

// ErrorResponse is the error body shared by all services.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by GET /health on every service.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// OrderResponse is the wire representation of an order.
type OrderResponse struct {
	ID               string   `json:"id"`
	RestaurantID     string   `json:"restaurant_id"`
	UserID           string   `json:"user_id"`
	Items            []string `json:"items"`
	Status           string   `json:"status"`
	AssignedAgentID  *string  `json:"assigned_agent_id"`
	RestaurantRating *int     `json:"restaurant_rating"`
	AgentRating      *int     `json:"agent_rating"`
}

// RestaurantResponse is the wire representation of a restaurant.
type RestaurantResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Online bool   `json:"online"`
}

// MenuItemResponse is the wire representation of a menu item.
type MenuItemResponse struct {
	ID           string          `json:"id"`
	RestaurantID string          `json:"restaurant_id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
}

// AgentResponse is the wire representation of a delivery agent.
type AgentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

func healthOK() HealthResponse {
	return HealthResponse{Status: "ok", Message: "Service is healthy"}
}

func toOrderResponse(o queries.GetOrderQueryResponse) OrderResponse {
	response := OrderResponse{
		ID:               o.ID.String(),
		RestaurantID:     o.RestaurantID.String(),
		UserID:           o.UserID.String(),
		Items:            o.Items,
		Status:           o.Status.String(),
		RestaurantRating: o.RestaurantRating,
		AgentRating:      o.AgentRating,
	}

	if o.AssignedAgentID != nil {
		id := o.AssignedAgentID.String()
		response.AssignedAgentID = &id
	}

	return response
}

func toRestaurantResponse(r queries.RestaurantResponse) RestaurantResponse {
	return RestaurantResponse{
		ID:     r.ID.String(),
		Name:   r.Name,
		Online: r.Online,
	}
}

func toMenuItemResponse(item queries.MenuItemResponse) MenuItemResponse {
	return MenuItemResponse{
		ID:           item.ID.String(),
		RestaurantID: item.RestaurantID.String(),
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		Available:    item.Available,
	}
}

func toAgentResponse(a queries.GetAgentQueryResponse) AgentResponse {
	return AgentResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Available: a.Available,
	}
}
