// Package agentsvc talks to the delivery agent service over HTTP on behalf of
// the order service's acceptance flow.
package agentsvc

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
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const (
	serviceName                = "agent-service"
	defaultTimeout             = 5 * time.Second
	responseBodyReadLimit int64 = 1024
)

var errBaseURLRequired = errors.New("agent service base URL is required")

// Client implements ports.AgentReservation over the agent service's REST API.
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

// NewClient builds an agent service client for the given base URL.
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

type assignRequest struct {
	OrderID string `json:"order_id"`
}

type assignResponse struct {
	AgentID string `json:"agent_id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// Reserve asks the agent service to reserve an available agent for the order.
// Failures are classified per the ports.AgentReservation contract.
func (c *Client) Reserve(ctx context.Context, orderID kernel.UUID) (kernel.UUID, error) {
	payload, err := json.Marshal(assignRequest{OrderID: orderID.String()})
	if err != nil {
		return kernel.UUID{}, err
	}

	url := c.baseURL + "/delivery/assign"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return kernel.UUID{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return kernel.UUID{}, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusConflict:
		return kernel.UUID{}, ports.ErrNoAgentAvailable
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return kernel.UUID{}, errs.NewUpstreamFailureError(
			serviceName, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var assigned assignResponse
	if err := json.NewDecoder(resp.Body).Decode(&assigned); err != nil {
		return kernel.UUID{}, errs.NewUpstreamFailureError(
			serviceName, resp.StatusCode, fmt.Sprintf("undecodable assign response: %v", err))
	}

	agentID, err := kernel.UUIDFromString(assigned.AgentID)
	if err != nil {
		return kernel.UUID{}, errs.NewUpstreamFailureError(
			serviceName, resp.StatusCode, fmt.Sprintf("invalid agent id %q", assigned.AgentID))
	}

	return agentID, nil
}

func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return errs.NewUpstreamTimeoutError(serviceName, err)
	}
	return errs.NewUpstreamUnavailableError(serviceName, err)
}
