package http

import (
	"time"

	"printshop/internal/core/application/usecases/queries"
)

// CreatedResponse carries the identity of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// StartProcessResponse carries the identity of the started work session.
type StartProcessResponse struct {
	ExecutionID string `json:"execution_id"`
}

// LoginResponse carries the signed token and the authenticated worker.
type LoginResponse struct {
	Token  string         `json:"token"`
	Worker WorkerResponse `json:"worker"`
}

// WorkerResponse is one worker account as seen by API clients.
type WorkerResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username,omitempty"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// OrderSummaryResponse is one row of the order board.
type OrderSummaryResponse struct {
	ID                 string     `json:"id"`
	OrderNumber        string     `json:"order_number"`
	Status             string     `json:"status"`
	Description        string     `json:"description,omitempty"`
	PhotoURL           string     `json:"photo_url,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
	TotalProcesses     int        `json:"total_processes"`
	CompletedProcesses int        `json:"completed_processes"`
}

// OrderDetailResponse is the full order view with its production steps.
type OrderDetailResponse struct {
	ID          string            `json:"id"`
	OrderNumber string            `json:"order_number"`
	Status      string            `json:"status"`
	Description string            `json:"description,omitempty"`
	PhotoURL    string            `json:"photo_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Processes   []ProcessResponse `json:"processes"`
}

// ProcessResponse is one production step with its work sessions.
type ProcessResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Sequence   int                 `json:"sequence"`
	Status     string              `json:"status"`
	Executions []ExecutionResponse `json:"executions"`
}

// ExecutionResponse is one work session. WorkerID is null when the worker
// account has since been deleted.
type ExecutionResponse struct {
	ID          string            `json:"id"`
	WorkerID    *string           `json:"worker_id"`
	WorkerName  string            `json:"worker_name,omitempty"`
	Equipment   string            `json:"equipment,omitempty"`
	StartedAt   time.Time         `json:"started_at"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Variables   map[string]string `json:"variables,omitempty"`
}

// StatsResponse is the order statistics summary.
type StatsResponse struct {
	TotalOrders      int `json:"total_orders"`
	InProgressOrders int `json:"in_progress_orders"`
	CompletedOrders  int `json:"completed_orders"`
	ActiveExecutions int `json:"active_executions"`
}

func orderSummaryFromQuery(row queries.GetOrdersQueryResponse) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:                 row.ID.String(),
		OrderNumber:        row.OrderNumber,
		Status:             row.Status,
		Description:        row.Description,
		PhotoURL:           row.PhotoURL,
		CreatedAt:          row.CreatedAt,
		CompletedAt:        row.CompletedAt,
		TotalProcesses:     row.TotalProcesses,
		CompletedProcesses: row.CompletedProcesses,
	}
}

func orderDetailFromQuery(detail queries.GetOrderDetailQueryResponse) OrderDetailResponse {
	processes := make([]ProcessResponse, 0, len(detail.Processes))
	for _, process := range detail.Processes {
		processes = append(processes, processFromQuery(process))
	}

	return OrderDetailResponse{
		ID:          detail.ID.String(),
		OrderNumber: detail.OrderNumber,
		Status:      detail.Status,
		Description: detail.Description,
		PhotoURL:    detail.PhotoURL,
		CreatedAt:   detail.CreatedAt,
		CompletedAt: detail.CompletedAt,
		Processes:   processes,
	}
}

func processFromQuery(process queries.ProcessDetail) ProcessResponse {
	executions := make([]ExecutionResponse, 0, len(process.Executions))
	for _, exec := range process.Executions {
		executions = append(executions, executionFromQuery(exec))
	}

	return ProcessResponse{
		ID:         process.ID.String(),
		Name:       process.Name,
		Sequence:   process.Sequence,
		Status:     process.Status,
		Executions: executions,
	}
}

func executionFromQuery(exec queries.ExecutionDetail) ExecutionResponse {
	var workerID *string
	if exec.WorkerID != nil {
		id := exec.WorkerID.String()
		workerID = &id
	}

	return ExecutionResponse{
		ID:          exec.ID.String(),
		WorkerID:    workerID,
		WorkerName:  exec.WorkerName,
		Equipment:   exec.Equipment,
		StartedAt:   exec.StartedAt,
		CompletedAt: exec.CompletedAt,
		Variables:   exec.Variables,
	}
}

func workerFromQuery(row queries.GetWorkersQueryResponse) WorkerResponse {
	return WorkerResponse{
		ID:        row.ID.String(),
		Username:  row.Username,
		Name:      row.Name,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}
}
