package queries

import (
	"context"
	"database/sql"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProcessExecutionsQueryHandler retrieves a process's execution ledger
// with worker names and variables.
type GetProcessExecutionsQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessExecutionsQueryHandler creates a handler for execution
// history queries.
func NewGetProcessExecutionsQueryHandler(db *gorm.DB) GetProcessExecutionsQueryHandler {
	return GetProcessExecutionsQueryHandler{db: db}
}

// Handle executes the query. Executions come back newest first. Returns an
// object-not-found error when the process does not exist.
func (h GetProcessExecutionsQueryHandler) Handle(
	ctx context.Context,
	query GetProcessExecutionsQuery,
) ([]ExecutionDetail, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var processCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM order_processes WHERE id = ?`, query.ProcessID().Bytes()).
		Scan(&processCount).Error
	if err != nil {
		return nil, err
	}
	if processCount == 0 {
		return nil, errs.NewObjectNotFoundError("processID", query.ProcessID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.worker_id,
			COALESCE(w.name, ''),
			e.equipment,
			e.started_at,
			e.completed_at
		FROM process_executions e
		LEFT JOIN workers w ON w.id = e.worker_id
		WHERE e.process_id = ?
		ORDER BY e.started_at DESC
	`, query.ProcessID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	executions := make([]ExecutionDetail, 0)

	for rows.Next() {
		var detail ExecutionDetail
		var id uuid.UUID
		var workerID uuid.NullUUID
		var completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&workerID,
			&detail.WorkerName,
			&detail.Equipment,
			&detail.StartedAt,
			&completedAt,
		)
		if err != nil {
			return nil, err
		}

		executionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		detail.ID = executionID
		detail.CompletedAt = timePtr(completedAt)
		detail.Variables = make(map[string]string)

		if workerID.Valid {
			wID, wErr := kernel.UUIDFromBytes(workerID.UUID[:])
			if wErr != nil {
				return nil, wErr
			}
			detail.WorkerID = &wID
		}

		executions = append(executions, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachVariables(ctx, query.ProcessID(), executions); err != nil {
		return nil, err
	}

	return executions, nil
}

func (h GetProcessExecutionsQueryHandler) attachVariables(
	ctx context.Context,
	processID kernel.UUID,
	executions []ExecutionDetail,
) error {
	if len(executions) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]*ExecutionDetail, len(executions))
	for i := range executions {
		index[executions[i].ID.Bytes()] = &executions[i]
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.execution_id,
			v.name,
			v.value
		FROM process_variables v
		JOIN process_executions e ON e.id = v.execution_id
		WHERE e.process_id = ?
	`, processID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var executionID uuid.UUID
		var name, value string

		if err = rows.Scan(&executionID, &name, &value); err != nil {
			return err
		}

		if detail, ok := index[executionID]; ok {
			detail.Variables[name] = value
		}
	}

	return rows.Err()
}
