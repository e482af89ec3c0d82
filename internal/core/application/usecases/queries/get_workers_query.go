package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetWorkersQueryIsNotConstructed = errors.New(
		"GetWorkersQuery must be created via NewGetWorkersQuery constructor",
	)
)

// GetWorkersQuery retrieves all worker accounts for the admin view.
type GetWorkersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkersQuery creates a query to retrieve all workers.
// This is a parameterless query.
func NewGetWorkersQuery() GetWorkersQuery {
	return GetWorkersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkersQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkersQueryIsNotConstructed)
}

// GetWorkersQueryResponse represents one worker account. The password hash
// never leaves the persistence layer.
type GetWorkersQueryResponse struct {
	ID        kernel.UUID
	Username  string
	Name      string
	Role      string
	CreatedAt time.Time
}
