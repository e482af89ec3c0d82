package jobs

import (
	"context"
	"log/slog"

	"printshop/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ProductionSnapshotJob logs an hourly summary of the shop floor so the
// order and session counters land in the log stream alongside errors.
type ProductionSnapshotJob struct {
	handler queries.GetOrderStatsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewProductionSnapshotJob creates a job that logs production statistics
// once an hour.
func NewProductionSnapshotJob(
	handler queries.GetOrderStatsQueryHandler,
	logger *slog.Logger,
) *ProductionSnapshotJob {
	return &ProductionSnapshotJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "production_snapshot_job"),
	}
}

// Start begins the snapshot job, running at the top of every hour.
func (j *ProductionSnapshotJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Production snapshot job started")
	return nil
}

// Stop stops the snapshot job.
func (j *ProductionSnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Production snapshot job stopped")
}

func (j *ProductionSnapshotJob) run() {
	ctx := context.Background()

	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Production snapshot failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Production snapshot",
		"total_orders", stats.TotalOrders,
		"in_progress_orders", stats.InProgressOrders,
		"completed_orders", stats.CompletedOrders,
		"active_executions", stats.ActiveExecutions)
}
