package queries

import (
	"errors"

	"printshop/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves aggregate order counts for the dashboard.
type GetOrderStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for the order statistics summary.
// This is a parameterless query.
func NewGetOrderStatsQuery() GetOrderStatsQuery {
	return GetOrderStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// GetOrderStatsQueryResponse is the order statistics summary.
type GetOrderStatsQueryResponse struct {
	TotalOrders      int
	InProgressOrders int
	CompletedOrders  int
	ActiveExecutions int
}
