package order_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allValidStatuses() []order.Status {
	return []order.Status{
		order.PendingAcceptance,
		order.Accepted,
		order.AssignedToAgent,
		order.AcceptanceFailedNoAgent,
		order.AcceptanceFailedTimeout,
		order.AcceptanceFailedAgentServiceError,
		order.AcceptanceFailedUnexpected,
		order.Rejected,
		order.Preparing,
		order.ReadyForPickup,
		order.Delivered,
	}
}

func TestStatus_String(t *testing.T) {
	expected := map[order.Status]string{
		order.Unknown:                           "unknown",
		order.PendingAcceptance:                 "pending_acceptance",
		order.Accepted:                          "accepted",
		order.AssignedToAgent:                   "assigned_to_agent",
		order.AcceptanceFailedNoAgent:           "acceptance_failed_no_agent",
		order.AcceptanceFailedTimeout:           "acceptance_failed_timeout",
		order.AcceptanceFailedAgentServiceError: "acceptance_failed_agent_service_error",
		order.AcceptanceFailedUnexpected:        "acceptance_failed_unexpected",
		order.Rejected:                          "rejected",
		order.Preparing:                         "preparing",
		order.ReadyForPickup:                    "ready_for_pickup",
		order.Delivered:                         "delivered",
	}

	for status, label := range expected {
		assert.Equal(t, label, status.String())
	}

	t.Run("should return unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Status(-1).String())
		assert.Equal(t, "unknown", order.Status(100).String())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(12), order.Status(100)} {
			require.Error(t, status.Validate())
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every wire label", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		parsed, err := order.ParseStatus("DELIVERED")

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, parsed)
	})

	t.Run("should reject unknown labels", func(t *testing.T) {
		_, err := order.ParseStatus("in_flight")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParseTarget(t *testing.T) {
	t.Run("should accept the five requestable targets", func(t *testing.T) {
		for _, label := range []string{"accepted", "rejected", "preparing", "ready_for_pickup", "delivered"} {
			_, err := order.ParseTarget(label)
			require.NoError(t, err, "label %s", label)
		}
	})

	t.Run("should accept mixed case targets", func(t *testing.T) {
		parsed, err := order.ParseTarget("Accepted")

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, parsed)
	})

	t.Run("should reject saga-internal statuses as targets", func(t *testing.T) {
		for _, label := range []string{
			"pending_acceptance",
			"assigned_to_agent",
			"acceptance_failed_no_agent",
			"acceptance_failed_timeout",
			"acceptance_failed_agent_service_error",
			"acceptance_failed_unexpected",
		} {
			_, err := order.ParseTarget(label)
			require.Error(t, err, "label %s", label)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject arbitrary labels", func(t *testing.T) {
		_, err := order.ParseTarget("cancelled")
		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Rejected.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())

	for _, status := range allValidStatuses() {
		if status == order.Rejected || status == order.Delivered {
			continue
		}
		assert.False(t, status.IsTerminal(), "status %s", status)
	}
}

func TestStatus_IsAcceptanceFailure(t *testing.T) {
	failures := []order.Status{
		order.AcceptanceFailedNoAgent,
		order.AcceptanceFailedTimeout,
		order.AcceptanceFailedAgentServiceError,
		order.AcceptanceFailedUnexpected,
	}

	for _, status := range failures {
		assert.True(t, status.IsAcceptanceFailure(), "status %s", status)
	}

	assert.False(t, order.Accepted.IsAcceptanceFailure())
	assert.False(t, order.Rejected.IsAcceptanceFailure())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should accept from pending_acceptance only", func(t *testing.T) {
		newStatus, err := order.PendingAcceptance.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range allValidStatuses() {
			if status == order.PendingAcceptance {
				continue
			}

			_, err := status.Accept()
			require.Error(t, err, "status %s", status)
			assert.Contains(t, err.Error(), "cannot be accepted from status")
		}
	})
}

func TestStatus_AssignToAgent(t *testing.T) {
	t.Run("should assign from accepted", func(t *testing.T) {
		newStatus, err := order.Accepted.AssignToAgent()

		require.NoError(t, err)
		assert.Equal(t, order.AssignedToAgent, newStatus)
	})

	t.Run("should fail from pending_acceptance", func(t *testing.T) {
		_, err := order.PendingAcceptance.AssignToAgent()
		require.Error(t, err)
	})
}

func TestStatus_FailAcceptance(t *testing.T) {
	t.Run("should record each failure status from accepted", func(t *testing.T) {
		failures := []order.Status{
			order.AcceptanceFailedNoAgent,
			order.AcceptanceFailedTimeout,
			order.AcceptanceFailedAgentServiceError,
			order.AcceptanceFailedUnexpected,
		}

		for _, failure := range failures {
			newStatus, err := order.Accepted.FailAcceptance(failure)

			require.NoError(t, err)
			assert.Equal(t, failure, newStatus)
		}
	})

	t.Run("should reject non-failure target", func(t *testing.T) {
		_, err := order.Accepted.FailAcceptance(order.Rejected)
		require.Error(t, err)
	})

	t.Run("should reject failure from non-accepted status", func(t *testing.T) {
		_, err := order.PendingAcceptance.FailAcceptance(order.AcceptanceFailedTimeout)
		require.Error(t, err)
	})
}

func TestStatus_Reject(t *testing.T) {
	t.Run("should reject from allowed statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.PendingAcceptance, order.Accepted, order.Preparing} {
			newStatus, err := status.Reject()

			require.NoError(t, err)
			assert.Equal(t, order.Rejected, newStatus)
		}
	})

	t.Run("should fail from assigned_to_agent", func(t *testing.T) {
		_, err := order.AssignedToAgent.Reject()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be rejected from status")
	})

	t.Run("should fail from terminal statuses", func(t *testing.T) {
		_, err := order.Delivered.Reject()
		require.Error(t, err)

		_, err = order.Rejected.Reject()
		require.Error(t, err)
	})
}

func TestStatus_AdvanceTo(t *testing.T) {
	t.Run("should advance to forward statuses from any current status", func(t *testing.T) {
		targets := []order.Status{order.Preparing, order.ReadyForPickup, order.Delivered}

		for _, current := range allValidStatuses() {
			for _, target := range targets {
				newStatus, err := current.AdvanceTo(target)

				require.NoError(t, err, "from %s to %s", current, target)
				assert.Equal(t, target, newStatus)
			}
		}
	})

	t.Run("should reject non-forward targets", func(t *testing.T) {
		for _, target := range []order.Status{order.Accepted, order.Rejected, order.AssignedToAgent} {
			_, err := order.PendingAcceptance.AdvanceTo(target)
			require.Error(t, err, "target %s", target)
		}
	})
}
