package postgres

import (
	"printshop/internal/adapters/out/postgres/executionrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/adapters/out/postgres/workerrepo"

	"gorm.io/gorm"
)

// Migrate creates the schema. GORM derives the tables and the order-to-
// process foreign key from the DTOs; the ledger's cross-package references
// are added explicitly because their delete behavior carries semantics:
// deleting an order takes its whole ledger with it, deleting a worker only
// severs the reference and keeps the history.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ProcessDTO{},
		&workerrepo.WorkerDTO{},
		&executionrepo.ExecutionDTO{},
		&executionrepo.VariableDTO{},
	)
	if err != nil {
		return err
	}

	constraints := []string{
		`ALTER TABLE order_processes
			DROP CONSTRAINT IF EXISTS fk_order_processes_order,
			ADD CONSTRAINT fk_order_processes_order
			FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE`,
		`ALTER TABLE process_executions
			DROP CONSTRAINT IF EXISTS fk_process_executions_process,
			ADD CONSTRAINT fk_process_executions_process
			FOREIGN KEY (process_id) REFERENCES order_processes (id) ON DELETE CASCADE`,
		`ALTER TABLE process_executions
			DROP CONSTRAINT IF EXISTS fk_process_executions_worker,
			ADD CONSTRAINT fk_process_executions_worker
			FOREIGN KEY (worker_id) REFERENCES workers (id) ON DELETE SET NULL`,
		`ALTER TABLE process_variables
			DROP CONSTRAINT IF EXISTS fk_process_variables_execution,
			ADD CONSTRAINT fk_process_variables_execution
			FOREIGN KEY (execution_id) REFERENCES process_executions (id) ON DELETE CASCADE`,
	}

	for _, constraint := range constraints {
		if err = db.Exec(constraint).Error; err != nil {
			return err
		}
	}

	return nil
}
