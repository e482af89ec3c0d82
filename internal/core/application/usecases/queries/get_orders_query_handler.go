package queries

import (
	"context"
	"database/sql"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves the order board from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; process
// progress is aggregated in the query instead of loading aggregates.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order board queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders come back newest first, each with its
// total and completed process counts.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	sqlText := `
		SELECT
			o.id,
			o.order_number,
			o.status,
			o.description,
			o.photo_url,
			o.created_at,
			o.completed_at,
			COUNT(p.id),
			COUNT(p.id) FILTER (WHERE p.status = ?)
		FROM orders o
		LEFT JOIN order_processes p ON p.order_id = o.id
	`
	args := []any{int(order.ProcessStatusCompleted)}

	if status := query.Status(); status != nil {
		sqlText += ` WHERE o.status = ?`
		args = append(args, int(*status))
	}

	sqlText += `
		GROUP BY o.id
		ORDER BY o.created_at DESC
	`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var status int
		var completedAt sql.NullTime

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&status,
			&resp.Description,
			&resp.PhotoURL,
			&resp.CreatedAt,
			&completedAt,
			&resp.TotalProcesses,
			&resp.CompletedProcesses,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.CompletedAt = timePtr(completedAt)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func timePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}
