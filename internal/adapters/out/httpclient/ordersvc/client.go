// Package ordersvc talks to the order service over HTTP on behalf of the
// delivery agent service's completion flow.
package ordersvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const (
	serviceName                 = "order-service"
	defaultTimeout              = 5 * time.Second
	responseBodyReadLimit int64 = 1024
)

var errBaseURLRequired = errors.New("order service base URL is required")

// Client implements ports.OrderStore over the order service's REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient builds an order service client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

type orderResponse struct {
	ID              string  `json:"id"`
	Status          string  `json:"status"`
	AssignedAgentID *string `json:"assigned_agent_id"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// GetOrder fetches the current state of an order.
func (c *Client) GetOrder(ctx context.Context, orderID kernel.UUID) (ports.RemoteOrder, error) {
	url := fmt.Sprintf("%s/orders/%s", c.baseURL, orderID.String())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ports.RemoteOrder{}, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return ports.RemoteOrder{}, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return ports.RemoteOrder{}, errs.NewObjectNotFoundError("order", orderID.String())
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return ports.RemoteOrder{}, errs.NewUpstreamFailureError(
			serviceName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var remote orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return ports.RemoteOrder{}, errs.NewUpstreamFailureError(
			serviceName, resp.StatusCode, fmt.Sprintf("undecodable order response: %v", err))
	}

	return toRemoteOrder(remote, resp.StatusCode)
}

// UpdateStatus pushes a status transition to the order service.
func (c *Client) UpdateStatus(ctx context.Context, orderID kernel.UUID, target order.Status) error {
	payload, err := json.Marshal(updateStatusRequest{Status: target.String()})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/orders/%s/status", c.baseURL, orderID.String())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return errs.NewObjectNotFoundError("order", orderID.String())
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return errs.NewUpstreamFailureError(
			serviceName, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func toRemoteOrder(remote orderResponse, statusCode int) (ports.RemoteOrder, error) {
	id, err := kernel.UUIDFromString(remote.ID)
	if err != nil {
		return ports.RemoteOrder{}, errs.NewUpstreamFailureError(
			serviceName, statusCode, fmt.Sprintf("invalid order id %q", remote.ID))
	}

	status, err := order.ParseStatus(remote.Status)
	if err != nil {
		return ports.RemoteOrder{}, errs.NewUpstreamFailureError(
			serviceName, statusCode, fmt.Sprintf("unknown order status %q", remote.Status))
	}

	result := ports.RemoteOrder{ID: id, Status: status}
	if remote.AssignedAgentID != nil {
		agentID, err := kernel.UUIDFromString(*remote.AssignedAgentID)
		if err != nil {
			return ports.RemoteOrder{}, errs.NewUpstreamFailureError(
				serviceName, statusCode, fmt.Sprintf("invalid agent id %q", *remote.AssignedAgentID))
		}
		result.AssignedAgentID = &agentID
	}

	return result, nil
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return errs.NewUpstreamTimeoutError(serviceName, err)
	}
	return errs.NewUpstreamUnavailableError(serviceName, err)
}
