package queries

import (
	"context"

	"printshop/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes the dashboard summary: how many orders
// exist, how many are still in progress, and how many work sessions are
// running right now.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	var resp GetOrderStatsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM orders WHERE status = ?),
			(SELECT COUNT(*) FROM process_executions WHERE completed_at IS NULL)
	`, int(order.StatusInProgress), int(order.StatusCompleted)).Row()

	err := row.Scan(
		&resp.TotalOrders,
		&resp.InProgressOrders,
		&resp.CompletedOrders,
		&resp.ActiveExecutions,
	)
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return resp, nil
}
