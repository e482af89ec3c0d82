package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueExecutionJob   *OverdueExecutionJob
	productionSnapshotJob *ProductionSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	overdueHandler queries.GetOverdueExecutionsQueryHandler,
	statsHandler queries.GetOrderStatsQueryHandler,
	overdueThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueExecutionJob:   NewOverdueExecutionJob(overdueHandler, overdueThreshold, logger),
		productionSnapshotJob: NewProductionSnapshotJob(statsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueExecutionJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue execution job: %w", err)
	}

	if err := jm.productionSnapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueExecutionJob.Stop()
		return fmt.Errorf("failed to start production snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueExecutionJob.Stop()
	jm.productionSnapshotJob.Stop()
}
