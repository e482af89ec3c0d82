package queries

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueExecutionsQueryHandler retrieves active work sessions older than
// a threshold, with enough context to name them in alerts.
type GetOverdueExecutionsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueExecutionsQueryHandler creates a handler for overdue-session queries.
func NewGetOverdueExecutionsQueryHandler(db *gorm.DB) GetOverdueExecutionsQueryHandler {
	return GetOverdueExecutionsQueryHandler{db: db}
}

// Handle executes the query. Sessions come back oldest first.
func (h GetOverdueExecutionsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueExecutionsQuery,
) ([]GetOverdueExecutionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.Threshold())

	overdue := make([]GetOverdueExecutionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			p.name,
			o.order_number,
			COALESCE(w.name, ''),
			e.started_at
		FROM process_executions e
		JOIN order_processes p ON p.id = e.process_id
		JOIN orders o ON o.id = p.order_id
		LEFT JOIN workers w ON w.id = e.worker_id
		WHERE e.completed_at IS NULL
		  AND e.started_at < ?
		ORDER BY e.started_at
	`, cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueExecutionsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.ProcessName,
			&resp.OrderNumber,
			&resp.WorkerName,
			&resp.StartedAt,
		)
		if err != nil {
			return nil, err
		}

		executionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ExecutionID = executionID

		overdue = append(overdue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overdue, nil
}
