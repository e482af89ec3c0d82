package queries

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
	"printshop/internal/pkg/guard"
)

// ErrGetWorkerCredentialsQueryIsNotConstructed is returned when the query
// was not created through NewGetWorkerCredentialsQuery.
var ErrGetWorkerCredentialsQueryIsNotConstructed = errors.New(
	"GetWorkerCredentialsQuery must be created via NewGetWorkerCredentialsQuery")

// GetWorkerCredentialsQuery looks up the stored credentials for a login name.
type GetWorkerCredentialsQuery struct {
	username string

	guard guard.ConstructorGuard
}

// NewGetWorkerCredentialsQuery creates a credentials lookup query.
func NewGetWorkerCredentialsQuery(username string) (GetWorkerCredentialsQuery, error) {
	if username == "" {
		return GetWorkerCredentialsQuery{}, errs.NewValueIsRequiredError("username")
	}

	return GetWorkerCredentialsQuery{
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWorkerCredentialsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerCredentialsQueryIsNotConstructed)
}

// Username returns the login name to look up.
func (q GetWorkerCredentialsQuery) Username() string {
	return q.username
}

// GetWorkerCredentialsQueryResponse carries what the login flow needs to
// verify a password and mint a token. It never crosses the HTTP boundary.
type GetWorkerCredentialsQueryResponse struct {
	ID           kernel.UUID
	Name         string
	PasswordHash string
	Role         string
}
