package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const gatewayTimeout = 10 * time.Second

// GatewayServer aggregates the order and agent services behind a single REST
// surface. It owns no state; every request fans out to the services and the
// enriched order view degrades missing collaborator data to null instead of
// failing the whole response.
type GatewayServer struct {
	orderBaseURL string
	agentBaseURL string
	httpClient   *http.Client
}

// NewGatewayServer creates the gateway for the given service base URLs. A nil
// client gets a default with the gateway timeout.
func NewGatewayServer(orderBaseURL, agentBaseURL string, client *http.Client) *GatewayServer {
	if client == nil {
		client = &http.Client{Timeout: gatewayTimeout}
	}

	return &GatewayServer{
		orderBaseURL: strings.TrimRight(orderBaseURL, "/"),
		agentBaseURL: strings.TrimRight(agentBaseURL, "/"),
		httpClient:   client,
	}
}

// RegisterRoutes attaches the gateway routes to the echo instance.
func (s *GatewayServer) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.GET("/restaurants", s.ListRestaurants)
	e.POST("/orders", s.PlaceOrder)
	e.GET("/orders/:order_id", s.GetOrder)
	e.PUT("/orders/:order_id/rate", s.RateOrder)
}

// Health handles GET /health.
func (s *GatewayServer) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, healthOK())
}

// ListRestaurants handles GET /restaurants by forwarding to the order
// service's available-restaurants listing.
func (s *GatewayServer) ListRestaurants(ctx echo.Context) error {
	return s.forward(ctx, http.MethodGet, s.orderBaseURL+"/restaurants/available", nil)
}

// PlaceOrder handles POST /orders by forwarding the body to the order service.
func (s *GatewayServer) PlaceOrder(ctx echo.Context) error {
	return s.forward(ctx, http.MethodPost, s.orderBaseURL+"/orders", ctx.Request().Body)
}

// RateOrder handles PUT /orders/:order_id/rate by forwarding to the order
// service.
func (s *GatewayServer) RateOrder(ctx echo.Context) error {
	url := fmt.Sprintf("%s/orders/%s/rate", s.orderBaseURL, ctx.Param("order_id"))
	return s.forward(ctx, http.MethodPut, url, ctx.Request().Body)
}

type enrichedOrderResponse struct {
	Order      OrderResponse       `json:"order"`
	Restaurant *RestaurantResponse `json:"restaurant"`
	Agent      *AgentResponse      `json:"agent"`
}

// GetOrder handles GET /orders/:order_id. The order is fetched first, then
// the restaurant and the assigned agent are fetched concurrently.
func (s *GatewayServer) GetOrder(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	orderURL := fmt.Sprintf("%s/orders/%s", s.orderBaseURL, ctx.Param("order_id"))

	resp, err := s.get(reqCtx, orderURL)
	if err != nil {
		return s.upstreamError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return s.passthrough(ctx, resp)
	}

	var fetched OrderResponse
	if err = json.NewDecoder(resp.Body).Decode(&fetched); err != nil {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{Detail: "undecodable order response"})
	}

	enriched := enrichedOrderResponse{Order: fetched}

	g, gctx := errgroup.WithContext(reqCtx)

	g.Go(func() error {
		url := fmt.Sprintf("%s/restaurants/%s", s.orderBaseURL, fetched.RestaurantID)
		var r RestaurantResponse
		found, fetchErr := s.getJSON(gctx, url, &r)
		if fetchErr != nil {
			return fetchErr
		}
		if found {
			enriched.Restaurant = &r
		}
		return nil
	})

	if fetched.AssignedAgentID != nil {
		agentID := *fetched.AssignedAgentID
		g.Go(func() error {
			url := fmt.Sprintf("%s/delivery/agents/%s", s.agentBaseURL, agentID)
			var a AgentResponse
			found, fetchErr := s.getJSON(gctx, url, &a)
			if fetchErr != nil {
				return fetchErr
			}
			if found {
				enriched.Agent = &a
			}
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return s.upstreamError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, enriched)
}

// forward relays a request to an upstream service and mirrors its response
// verbatim.
func (s *GatewayServer) forward(ctx echo.Context, method, url string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx.Request().Context(), method, url, body)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return s.upstreamError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	return s.passthrough(ctx, resp)
}

func (s *GatewayServer) passthrough(ctx echo.Context, resp *http.Response) error {
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{Detail: "unreadable upstream response"})
	}

	return ctx.JSONBlob(resp.StatusCode, payload)
}

func (s *GatewayServer) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return s.httpClient.Do(req)
}

// getJSON fetches a resource, reporting 404 as absence rather than failure.
func (s *GatewayServer) getJSON(ctx context.Context, url string, out any) (bool, error) {
	resp, err := s.get(ctx, url)
	if err != nil {
		return false, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, err
		}
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected upstream status %d from %s", resp.StatusCode, url)
	}
}

func (s *GatewayServer) upstreamError(ctx echo.Context, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ctx.JSON(http.StatusGatewayTimeout, ErrorResponse{Detail: "upstream service timed out"})
	}

	return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "upstream service unavailable"})
}
