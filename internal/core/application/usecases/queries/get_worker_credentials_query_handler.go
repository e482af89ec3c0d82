package queries

import (
	"context"
	"database/sql"
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/worker"
	"printshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkerCredentialsQueryHandler resolves login credentials by username.
type GetWorkerCredentialsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerCredentialsQueryHandler creates a handler for credential lookups.
func NewGetWorkerCredentialsQueryHandler(db *gorm.DB) GetWorkerCredentialsQueryHandler {
	return GetWorkerCredentialsQueryHandler{db: db}
}

// Handle executes the query. Returns an object-not-found error when no
// account carries the username.
func (h GetWorkerCredentialsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerCredentialsQuery,
) (GetWorkerCredentialsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWorkerCredentialsQueryResponse{}, err
	}

	var id uuid.UUID
	var role int
	var resp GetWorkerCredentialsQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			password_hash,
			role
		FROM workers
		WHERE username = ?
	`, query.Username()).Row()

	err := row.Scan(&id, &resp.Name, &resp.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetWorkerCredentialsQueryResponse{},
				errs.NewObjectNotFoundErrorWithCause("username", query.Username(), err)
		}
		return GetWorkerCredentialsQueryResponse{}, err
	}

	workerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetWorkerCredentialsQueryResponse{}, err
	}
	resp.ID = workerID
	resp.Role = worker.Role(role).String()

	return resp, nil
}
