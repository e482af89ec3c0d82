package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/execution"
	"printshop/internal/core/domain/model/kernel"
)

// StartProcessCommandHandler handles the business logic for starting a work
// session on a production process.
//
// The whole flow runs in one transaction: the process row is locked first,
// the completed-process guard and the pending->in_progress ratchet are
// applied, equipment is arbitrated where the process kind requires it, and
// the execution and its start variables are appended to the ledger. Holding
// the process row lock means concurrent starts and completions on the same
// process serialize, so the recomputed status always reflects a consistent
// execution set.
type StartProcessCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewStartProcessCommandHandler creates a handler for process start operations.
func NewStartProcessCommandHandler(uowFactory LedgerUoWFactory) StartProcessCommandHandler {
	return StartProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command and returns the new execution identity.
//
// Failure modes: object-not-found when the process does not exist,
// invalid-state when the process is already completed, equipment-conflict
// when the requested equipment is held by another active execution.
func (h *StartProcessCommandHandler) Handle(ctx context.Context, cmd StartProcessCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	process, err := orderRepo.GetProcessForUpdate(ctx, cmd.ProcessID())
	if err != nil {
		return kernel.UUID{}, err
	}

	// Rejects starts against a completed process and ratchets
	// pending -> in_progress.
	if err = process.Start(); err != nil {
		return kernel.UUID{}, err
	}

	if cmd.Equipment() != "" && process.Name().OffersEquipment() {
		if err = uow.EquipmentArbiter().TryReserve(ctx, cmd.Equipment()); err != nil {
			return kernel.UUID{}, err
		}
	}

	exec, err := execution.NewExecution(
		kernel.NewUUID(),
		process.ID(),
		cmd.WorkerID(),
		cmd.Equipment(),
		cmd.Variables(),
		time.Now(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.ExecutionRepository().Add(ctx, exec); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.UpdateProcessStatus(ctx, process); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return exec.ID(), nil
}
