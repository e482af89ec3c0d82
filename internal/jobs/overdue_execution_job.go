package jobs

import (
	"context"
	"log/slog"
	"time"

	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// OverdueExecutionJob watches for work sessions left open past the
// configured threshold. Each run logs the offenders and publishes the
// overdue count to the metrics endpoint.
type OverdueExecutionJob struct {
	handler   queries.GetOverdueExecutionsQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueExecutionJob creates a job that checks for overdue work sessions
// once a minute.
func NewOverdueExecutionJob(
	handler queries.GetOverdueExecutionsQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *OverdueExecutionJob {
	return &OverdueExecutionJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "overdue_execution_job"),
	}
}

// Start begins the overdue check, running every minute.
func (j *OverdueExecutionJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue execution job started",
		"threshold", j.threshold.String())
	return nil
}

// Stop stops the overdue check.
func (j *OverdueExecutionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue execution job stopped")
}

func (j *OverdueExecutionJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueExecutionsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue execution job misconfigured", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue execution check failed", "error", err)
		return
	}

	metrics.SetOverdueExecutions(len(overdue))

	for _, session := range overdue {
		j.logger.WarnContext(ctx, "Work session overdue",
			"execution_id", session.ExecutionID.String(),
			"process", session.ProcessName,
			"order_number", session.OrderNumber,
			"worker", session.WorkerName,
			"started_at", session.StartedAt)
	}
}
