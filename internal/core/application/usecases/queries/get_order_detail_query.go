package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves one order with its processes and their
// execution history.
//
// By default only active executions are returned, which is what the shop
// floor needs to see who is working right now. With includeHistory the full
// ledger, completed sessions included, comes back; the transport layer
// restricts that view to admins.
type GetOrderDetailQuery struct {
	orderID        kernel.UUID
	includeHistory bool

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a query for one order's detail view.
func NewGetOrderDetailQuery(orderID kernel.UUID, includeHistory bool) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		orderID:        orderID,
		includeHistory: includeHistory,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// OrderID returns the target order identifier.
func (q GetOrderDetailQuery) OrderID() kernel.UUID {
	return q.orderID
}

// IncludeHistory reports whether completed executions are included.
func (q GetOrderDetailQuery) IncludeHistory() bool {
	return q.includeHistory
}

// GetOrderDetailQueryResponse is the full order detail read model.
type GetOrderDetailQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string
	Status      string
	Description string
	PhotoURL    string
	CreatedAt   time.Time
	CompletedAt *time.Time
	Processes   []ProcessDetail
}

// ProcessDetail is one production step of the order detail view.
type ProcessDetail struct {
	ID         kernel.UUID
	Name       string
	Sequence   int
	Status     string
	Executions []ExecutionDetail
}

// ExecutionDetail is one work session of a process. WorkerID and WorkerName
// are empty when the worker account has since been deleted; the session
// itself stays on record.
type ExecutionDetail struct {
	ID          kernel.UUID
	WorkerID    *kernel.UUID
	WorkerName  string
	Equipment   string
	StartedAt   time.Time
	CompletedAt *time.Time
	Variables   map[string]string
}
