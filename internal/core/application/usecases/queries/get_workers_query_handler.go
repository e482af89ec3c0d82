package queries

import (
	"context"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkersQueryHandler retrieves all worker accounts from the database.
type GetWorkersQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkersQueryHandler creates a handler for worker listing queries.
func NewGetWorkersQueryHandler(db *gorm.DB) GetWorkersQueryHandler {
	return GetWorkersQueryHandler{db: db}
}

// Handle executes the query. Workers come back newest first.
func (h GetWorkersQueryHandler) Handle(
	ctx context.Context,
	query GetWorkersQuery,
) ([]GetWorkersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	workers := make([]GetWorkersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			name,
			role,
			created_at
		FROM workers
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetWorkersQueryResponse
		var id uuid.UUID
		var role int

		err = rows.Scan(
			&id,
			&resp.Username,
			&resp.Name,
			&role,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		workerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = workerID
		resp.Role = worker.Role(role).String()

		workers = append(workers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workers, nil
}
