// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the domain model and read directly from the
// database, returning flat read models shaped for the transport layer.
package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the order board, optionally filtered by status.
// Each entry carries process progress counts so the board can show how far
// along a job is without loading its full detail.
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order board. rawStatus filters
// by order status when non-empty; an unknown status name is rejected.
func NewGetOrdersQuery(rawStatus string) (GetOrdersQuery, error) {
	query := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if rawStatus != "" {
		status := order.StatusFromString(rawStatus)
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		query.status = &status
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetOrdersQueryResponse is one row of the order board.
type GetOrdersQueryResponse struct {
	ID                 kernel.UUID
	OrderNumber        string
	Status             string
	Description        string
	PhotoURL           string
	CreatedAt          time.Time
	CompletedAt        *time.Time
	TotalProcesses     int
	CompletedProcesses int
}
