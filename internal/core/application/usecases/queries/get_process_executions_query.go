package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrGetProcessExecutionsQueryIsNotConstructed = errors.New(
		"GetProcessExecutionsQuery must be created via NewGetProcessExecutionsQuery constructor",
	)
)

// GetProcessExecutionsQuery retrieves the full execution ledger of one
// process, completed sessions included.
type GetProcessExecutionsQuery struct {
	processID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProcessExecutionsQuery creates a query for a process's execution history.
func NewGetProcessExecutionsQuery(processID kernel.UUID) (GetProcessExecutionsQuery, error) {
	if err := processID.Validate(); err != nil {
		return GetProcessExecutionsQuery{}, err
	}

	return GetProcessExecutionsQuery{
		processID: processID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessExecutionsQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessExecutionsQueryIsNotConstructed)
}

// ProcessID returns the target process identifier.
func (q GetProcessExecutionsQuery) ProcessID() kernel.UUID {
	return q.processID
}
