package agentsvc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/httpclient/agentsvc"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := agentsvc.NewClient("   ")
	require.Error(t, err)
}

func TestReserve_Success(t *testing.T) {
	agentID := kernel.NewUUID()
	orderID := kernel.NewUUID()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/delivery/assign", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, orderID.String(), body["order_id"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"agent_id": agentID.String(),
			"order_id": orderID.String(),
			"status":   "assigned",
		})
	}))
	defer server.Close()

	client, err := agentsvc.NewClient(server.URL)
	require.NoError(t, err)

	reserved, err := client.Reserve(context.Background(), orderID)

	require.NoError(t, err)
	assert.True(t, reserved.IsEqual(agentID))
}

func TestReserve_NoAgentAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "No available delivery agents"})
	}))
	defer server.Close()

	client, err := agentsvc.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Reserve(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, ports.ErrNoAgentAvailable)
}

func TestReserve_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := agentsvc.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Reserve(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrUpstreamFailure)

	var failure *errs.UpstreamFailureError
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, http.StatusInternalServerError, failure.StatusCode)
	assert.Equal(t, "boom", failure.Body)
}

func TestReserve_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := agentsvc.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Reserve(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
}

func TestReserve_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client, err := agentsvc.NewClient(server.URL,
		agentsvc.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	require.NoError(t, err)

	_, err = client.Reserve(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrUpstreamTimeout)
}

func TestReserve_UndecodableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := agentsvc.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Reserve(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrUpstreamFailure)
}
