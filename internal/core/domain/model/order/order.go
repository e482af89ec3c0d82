package order

import (
	"errors"
	"fmt"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a manufacturing order in the system. It is the aggregate
// root owning the ordered list of production processes the job passes through.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Status transitions only in_progress -> completed, never reversed
//   - The completion timestamp is set if and only if the status is completed
//   - Completion is gated on every owned process being completed
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id          kernel.UUID
	orderNumber string
	status      Status
	description string
	photoURL    string
	createdAt   time.Time
	completedAt *time.Time
	processes   []*Process

	isConstructed bool
}

// NewOrder creates a new in-progress Order with one pending process per
// entry of processNames, sequenced by position. Description and photoURL are
// optional free-text attributes; an empty processNames list is allowed (the
// steps can be thin for utility jobs).
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	description string,
	photoURL string,
	processNames []ProcessName,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        StatusInProgress,
		description:   description,
		photoURL:      photoURL,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
	); err != nil {
		return nil, err
	}

	for i, name := range processNames {
		process, err := NewProcess(kernel.NewUUID(), id, name, i+1)
		if err != nil {
			return nil, err
		}
		order.processes = append(order.processes, process)
	}

	return order, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// The completedAt timestamp must be present exactly when the status is
// completed; a mismatch means the stored row violates the lifecycle
// invariant and is rejected.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	status Status,
	description string,
	photoURL string,
	createdAt time.Time,
	completedAt *time.Time,
	processes []*Process,
) (*Order, error) {
	order := &Order{
		description:   description,
		photoURL:      photoURL,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	order.status = status

	if (completedAt != nil) != (status == StatusCompleted) {
		return nil, errs.NewValueIsInvalidErrorWithCause("completedAt is invalid",
			fmt.Errorf("completion timestamp must be set iff status is %s", StatusCompleted))
	}
	order.completedAt = completedAt

	for _, process := range processes {
		if err := process.Validate(); err != nil {
			return nil, err
		}
	}
	order.processes = processes

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// This method should be called when reconstructing orders from persistence
// to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the unique human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Description returns the optional free-text description.
func (o *Order) Description() string {
	return o.description
}

// PhotoURL returns the optional photo reference.
func (o *Order) PhotoURL() string {
	return o.photoURL
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the completion timestamp, or nil while in progress.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Processes returns the order's production steps in workflow order.
func (o *Order) Processes() []*Process {
	return o.processes
}

// IncompleteProcessCount returns the number of owned processes that have not
// reached their terminal state.
func (o *Order) IncompleteProcessCount() int {
	count := 0
	for _, process := range o.processes {
		if !process.IsCompleted() {
			count++
		}
	}
	return count
}

// Complete marks the order as completed.
//
// This is the order completion gate: every owned process must already be
// completed, otherwise the call is rejected with an invalid-state error
// naming the number of remaining processes. Completion is always an explicit
// request; an order whose processes are all done stays in progress until
// someone calls this.
func (o *Order) Complete(now time.Time) error {
	if remaining := o.IncompleteProcessCount(); remaining > 0 {
		return errs.NewInvalidStateError(
			"complete order",
			fmt.Sprintf("%d of %d processes are not completed", remaining, len(o.processes)),
		)
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.completedAt = &now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}
