package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/queries"
)

// DefaultStuckThreshold is how long an order may sit in the accepted status
// before the report treats it as stranded mid-acceptance.
const DefaultStuckThreshold = 5 * time.Minute

// StuckOrderReportJob periodically reports orders that never finished
// acceptance: orders stranded in the accepted status past a threshold, and
// counts of orders parked in each acceptance failure status.
type StuckOrderReportJob struct {
	stuckOrdersHandler   queries.GetStuckOrdersQueryHandler
	failureCountsHandler queries.GetAcceptanceFailureCountsQueryHandler
	threshold            time.Duration
	cron                 *cron.Cron
	logger               *slog.Logger
}

// NewStuckOrderReportJob creates the report job. The threshold controls how
// old an accepted order must be to count as stranded.
func NewStuckOrderReportJob(
	stuckOrdersHandler queries.GetStuckOrdersQueryHandler,
	failureCountsHandler queries.GetAcceptanceFailureCountsQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *StuckOrderReportJob {
	if threshold <= 0 {
		threshold = DefaultStuckThreshold
	}

	return &StuckOrderReportJob{
		stuckOrdersHandler:   stuckOrdersHandler,
		failureCountsHandler: failureCountsHandler,
		threshold:            threshold,
		cron:                 cron.New(),
		logger:               logger.With("component", "stuck_order_report_job"),
	}
}

// Start begins the report job to run every minute.
func (j *StuckOrderReportJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stuck order report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *StuckOrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stuck order report job stopped")
}

func (j *StuckOrderReportJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetStuckOrdersQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stuck order report failed to build query", "error", err)
		return
	}

	stuck, err := j.stuckOrdersHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stuck order report failed", "error", err)
		return
	}

	for _, o := range stuck {
		j.logger.WarnContext(ctx, "Order stranded in accepted status",
			"order_id", o.ID.String(),
			"updated_at", o.UpdatedAt,
		)
	}

	counts, err := j.failureCountsHandler.Handle(ctx, queries.NewGetAcceptanceFailureCountsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Acceptance failure count report failed", "error", err)
		return
	}

	for _, c := range counts {
		j.logger.InfoContext(ctx, "Orders in acceptance failure status",
			"status", c.Status.String(),
			"count", c.Count,
		)
	}
}
