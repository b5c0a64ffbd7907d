package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the order service.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stuckOrderReportJob *StuckOrderReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	stuckOrdersHandler queries.GetStuckOrdersQueryHandler,
	failureCountsHandler queries.GetAcceptanceFailureCountsQueryHandler,
	stuckThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		stuckOrderReportJob: NewStuckOrderReportJob(
			stuckOrdersHandler, failureCountsHandler, stuckThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stuckOrderReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start stuck order report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stuckOrderReportJob.Stop()
}
