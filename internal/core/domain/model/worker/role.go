package worker

import (
	"fmt"

	"printshop/internal/pkg/errs"
)

// Role gates what a worker may see and do. Employees work processes;
// admins additionally manage orders, workers, and the full execution history.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleEmployee is the default shop-floor role.
	RoleEmployee

	// RoleAdmin grants order/worker management and privileged history views.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleEmployee: "employee",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a stored or submitted role name.
func RoleFromString(raw string) (Role, error) {
	switch raw {
	case "employee":
		return RoleEmployee, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%q is not a known role", raw))
	}
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r != RoleEmployee && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the stored name of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsAdmin reports whether the role grants administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
