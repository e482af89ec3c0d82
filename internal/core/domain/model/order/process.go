package order

import (
	"errors"
	"fmt"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/errs"
)

// ErrProcessIsNotConstructed is returned when a Process instance was not
// created through NewProcess or RestoreProcess.
var ErrProcessIsNotConstructed = errors.New("Process must be created via NewProcess or RestoreProcess")

// Process is one named production step belonging to an order.
//
// Invariants:
//   - the name comes from the controlled vocabulary
//   - sequence defines display/workflow order only; processes may be started
//     in any order
//   - status is a pure function of the process's execution set (see
//     DeriveProcessStatus) except for the initial Pending default, and it
//     only moves forward: Pending -> InProgress -> Completed
type Process struct {
	id            kernel.UUID
	orderID       kernel.UUID
	name          ProcessName
	sequence      int
	status        ProcessStatus
	isConstructed bool
}

// NewProcess creates a pending process for an order.
// Sequence must be positive; it is the 1-based position of the step in the
// order's workflow.
func NewProcess(id kernel.UUID, orderID kernel.UUID, name ProcessName, sequence int) (*Process, error) {
	process := &Process{
		status:        ProcessStatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		process.setID(id),
		process.setOrderID(orderID),
		process.setName(name),
		process.setSequence(sequence),
	); err != nil {
		return nil, err
	}

	return process, nil
}

// RestoreProcess reconstructs a process from persistence, including its
// stored status.
func RestoreProcess(
	id kernel.UUID,
	orderID kernel.UUID,
	name ProcessName,
	sequence int,
	status ProcessStatus,
) (*Process, error) {
	process, err := NewProcess(id, orderID, name, sequence)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	process.status = status

	return process, nil
}

// Validate ensures the Process instance was properly constructed.
func (p *Process) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProcessIsNotConstructed
	}
	return nil
}

// ID returns the process's unique identifier.
func (p *Process) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the owning order.
func (p *Process) OrderID() kernel.UUID {
	return p.orderID
}

// Name returns the production step name.
func (p *Process) Name() ProcessName {
	return p.name
}

// Sequence returns the 1-based display position of the step.
func (p *Process) Sequence() int {
	return p.sequence
}

// Status returns the current lifecycle status of the process.
func (p *Process) Status() ProcessStatus {
	return p.status
}

// IsCompleted reports whether the process reached its terminal state.
func (p *Process) IsCompleted() bool {
	return p.status == ProcessStatusCompleted
}

// Start records that a new execution is being started on this process.
// A pending process ratchets to InProgress; an in-progress process stays
// in-progress (multiple workers may contribute concurrently). Starting on a
// completed process is rejected with an invalid-state error.
func (p *Process) Start() error {
	newStatus, err := p.status.Start()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// RecomputeStatus re-derives the status from the execution counts observed
// in the same transaction as the triggering ledger write. The ratchet is
// enforced: a derived Pending never overwrites InProgress, since started
// executions are never deleted while the process lives.
func (p *Process) RecomputeStatus(totalExecutions, activeExecutions int) {
	derived := DeriveProcessStatus(totalExecutions, activeExecutions)
	if derived == ProcessStatusPending && p.status != ProcessStatusPending {
		return
	}
	p.status = derived
}

func (p *Process) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Process) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Process) setName(name ProcessName) error {
	if err := name.Validate(); err != nil {
		return err
	}
	p.name = name
	return nil
}

func (p *Process) setSequence(sequence int) error {
	if sequence <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	p.sequence = sequence
	return nil
}
