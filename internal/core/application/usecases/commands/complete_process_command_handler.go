package commands

import (
	"context"
	"time"
)

// CompleteProcessCommandHandler handles the business logic for finishing a
// work session on a production process.
//
// The flow runs in one transaction under the process row lock: the target
// execution is resolved (explicit or the worker's latest active one), a
// conditional update stamps the completion time, completion variables are
// merged into the execution's set, and the process status is recomputed from
// the post-write execution counts. Under concurrent completion attempts on
// the same execution the conditional update lets exactly one through.
type CompleteProcessCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewCompleteProcessCommandHandler creates a handler for process completion
// operations.
func NewCompleteProcessCommandHandler(uowFactory LedgerUoWFactory) CompleteProcessCommandHandler {
	return CompleteProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
//
// Failure modes: object-not-found when the process does not exist, when the
// worker has no active execution to resolve, or when the conditional update
// affects no row (already completed, owned by someone else, or lost to a
// concurrent attempt).
func (h *CompleteProcessCommandHandler) Handle(ctx context.Context, cmd CompleteProcessCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	process, err := orderRepo.GetProcessForUpdate(ctx, cmd.ProcessID())
	if err != nil {
		return err
	}

	execRepo := uow.ExecutionRepository()

	executionID := cmd.ExecutionID()
	if executionID == nil {
		resolved, resolveErr := execRepo.FindActiveIDForWorker(ctx, process.ID(), cmd.WorkerID())
		if resolveErr != nil {
			return resolveErr
		}
		executionID = &resolved
	}

	if err = execRepo.Complete(ctx, *executionID, cmd.WorkerID(), time.Now()); err != nil {
		return err
	}

	if len(cmd.Variables()) > 0 {
		if err = execRepo.UpsertVariables(ctx, *executionID, cmd.Variables()); err != nil {
			return err
		}
	}

	total, active, err := execRepo.CountByProcess(ctx, process.ID())
	if err != nil {
		return err
	}

	process.RecomputeStatus(total, active)

	if err = orderRepo.UpdateProcessStatus(ctx, process); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
