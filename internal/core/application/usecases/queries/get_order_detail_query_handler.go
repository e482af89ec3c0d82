package queries

import (
	"context"
	"database/sql"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler assembles the order detail view: the order row,
// its processes in workflow order, and per process the execution ledger with
// worker names and variables.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when the
// order does not exist.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	resp, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	processes, processIndex, err := h.loadProcesses(ctx, query.OrderID())
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	if err = h.loadExecutions(ctx, query, processes, processIndex); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	resp.Processes = make([]ProcessDetail, 0, len(processes))
	for _, process := range processes {
		resp.Processes = append(resp.Processes, *process)
	}

	return resp, nil
}

func (h GetOrderDetailQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderDetailQueryResponse, error) {
	var resp GetOrderDetailQueryResponse
	var id uuid.UUID
	var status int
	var completedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			description,
			photo_url,
			created_at,
			completed_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&status,
		&resp.Description,
		&resp.PhotoURL,
		&resp.CreatedAt,
		&completedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, err)
		}
		return resp, err
	}

	respID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return resp, err
	}
	resp.ID = respID
	resp.Status = order.Status(status).String()
	resp.CompletedAt = timePtr(completedAt)

	return resp, nil
}

func (h GetOrderDetailQueryHandler) loadProcesses(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*ProcessDetail, map[uuid.UUID]*ProcessDetail, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			sequence,
			status
		FROM order_processes
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	processes := make([]*ProcessDetail, 0)
	index := make(map[uuid.UUID]*ProcessDetail)

	for rows.Next() {
		var detail ProcessDetail
		var id uuid.UUID
		var status int

		if err = rows.Scan(&id, &detail.Name, &detail.Sequence, &status); err != nil {
			return nil, nil, err
		}

		processID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		detail.ID = processID
		detail.Status = order.ProcessStatus(status).String()
		detail.Executions = make([]ExecutionDetail, 0)

		processes = append(processes, &detail)
		index[id] = processes[len(processes)-1]
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return processes, index, nil
}

func (h GetOrderDetailQueryHandler) loadExecutions(
	ctx context.Context,
	query GetOrderDetailQuery,
	processes []*ProcessDetail,
	index map[uuid.UUID]*ProcessDetail,
) error {
	if len(processes) == 0 {
		return nil
	}

	sqlText := `
		SELECT
			e.id,
			e.process_id,
			e.worker_id,
			COALESCE(w.name, ''),
			e.equipment,
			e.started_at,
			e.completed_at
		FROM process_executions e
		JOIN order_processes p ON p.id = e.process_id
		LEFT JOIN workers w ON w.id = e.worker_id
		WHERE p.order_id = ?
	`
	if !query.IncludeHistory() {
		sqlText += ` AND e.completed_at IS NULL`
	}
	sqlText += ` ORDER BY e.started_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, query.OrderID().Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var detail ExecutionDetail
		var id, processID uuid.UUID
		var workerID uuid.NullUUID
		var completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&processID,
			&workerID,
			&detail.WorkerName,
			&detail.Equipment,
			&detail.StartedAt,
			&completedAt,
		)
		if err != nil {
			return err
		}

		executionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		detail.ID = executionID
		detail.CompletedAt = timePtr(completedAt)
		detail.Variables = make(map[string]string)

		if workerID.Valid {
			wID, wErr := kernel.UUIDFromBytes(workerID.UUID[:])
			if wErr != nil {
				return wErr
			}
			detail.WorkerID = &wID
		}

		process, ok := index[processID]
		if !ok {
			continue
		}
		process.Executions = append(process.Executions, detail)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	// Index after all appends so pointers survive slice growth.
	executionIndex := make(map[uuid.UUID]*ExecutionDetail)
	for _, process := range processes {
		for i := range process.Executions {
			executionIndex[process.Executions[i].ID.Bytes()] = &process.Executions[i]
		}
	}

	return h.loadVariables(ctx, query.OrderID(), executionIndex)
}

func (h GetOrderDetailQueryHandler) loadVariables(
	ctx context.Context,
	orderID kernel.UUID,
	executionIndex map[uuid.UUID]*ExecutionDetail,
) error {
	if len(executionIndex) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			v.execution_id,
			v.name,
			v.value
		FROM process_variables v
		JOIN process_executions e ON e.id = v.execution_id
		JOIN order_processes p ON p.id = e.process_id
		WHERE p.order_id = ?
	`, orderID.Bytes()).Rows()
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

		if detail, ok := executionIndex[executionID]; ok {
			detail.Variables[name] = value
		}
	}

	return rows.Err()
}
