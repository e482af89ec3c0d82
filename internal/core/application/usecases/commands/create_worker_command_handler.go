package commands

import (
	"context"
	"time"

	"printshop/internal/core/domain/model/worker"
)

// CreateWorkerCommandHandler handles worker account registration.
type CreateWorkerCommandHandler struct {
	uowFactory WorkerUoWFactory
}

// NewCreateWorkerCommandHandler creates a handler for worker registration.
func NewCreateWorkerCommandHandler(uowFactory WorkerUoWFactory) CreateWorkerCommandHandler {
	return CreateWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the create worker command. A duplicate username is
// rejected by the repository with a value-is-invalid error.
func (h *CreateWorkerCommandHandler) Handle(ctx context.Context, cmd CreateWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := worker.NewWorker(
		cmd.WorkerID(),
		cmd.Username(),
		cmd.Name(),
		cmd.PasswordHash(),
		cmd.Role(),
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WorkerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
