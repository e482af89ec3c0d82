package queries

import (
	"errors"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrGetOverdueExecutionsQueryIsNotConstructed is returned when the query
// was not created through NewGetOverdueExecutionsQuery.
var ErrGetOverdueExecutionsQueryIsNotConstructed = errors.New(
	"GetOverdueExecutionsQuery must be created via NewGetOverdueExecutionsQuery")

// GetOverdueExecutionsQuery finds active work sessions that have been open
// longer than the given threshold.
type GetOverdueExecutionsQuery struct {
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetOverdueExecutionsQuery creates an overdue-session query. The
// threshold must be positive.
func NewGetOverdueExecutionsQuery(threshold time.Duration) (GetOverdueExecutionsQuery, error) {
	if threshold <= 0 {
		return GetOverdueExecutionsQuery{}, errs.NewValueIsInvalidError("threshold")
	}

	return GetOverdueExecutionsQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOverdueExecutionsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueExecutionsQueryIsNotConstructed)
}

// Threshold returns the age beyond which an active session counts as overdue.
func (q GetOverdueExecutionsQuery) Threshold() time.Duration {
	return q.threshold
}

// GetOverdueExecutionsQueryResponse is one overdue work session.
type GetOverdueExecutionsQueryResponse struct {
	ExecutionID kernel.UUID
	ProcessName string
	OrderNumber string
	WorkerName  string
	StartedAt   time.Time
}
