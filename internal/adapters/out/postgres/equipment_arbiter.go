package postgres

import (
	"context"
	"database/sql"
	"errors"

	"printshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEquipmentArbiter enforces mutual exclusion over named equipment.
//
// The naive check-then-insert is racy: two transactions can both observe the
// equipment as free and both insert a claiming execution. The arbiter closes
// the race with a transaction-scoped advisory lock keyed on the equipment
// name, taken before the scan. Concurrent claims on the same name serialize
// on the lock, so the loser's scan sees the winner's inserted execution.
// Claims on different equipment do not contend.
type GormEquipmentArbiter struct {
	db *gorm.DB
}

// NewGormEquipmentArbiter creates an arbiter bound to the given transaction.
func NewGormEquipmentArbiter(db *gorm.DB) *GormEquipmentArbiter {
	return &GormEquipmentArbiter{db: db}
}

// TryReserve checks that no active execution holds the named equipment.
// Must run in the same transaction as the subsequent execution insert; the
// advisory lock is released at transaction end, which is what makes the
// check-plus-insert atomic.
func (a *GormEquipmentArbiter) TryReserve(ctx context.Context, equipment string) error {
	if equipment == "" {
		return errs.NewValueIsRequiredError("equipment")
	}

	err := a.db.WithContext(ctx).
		Exec(`SELECT pg_advisory_xact_lock(hashtext(?))`, equipment).Error
	if err != nil {
		return err
	}

	row := a.db.WithContext(ctx).Raw(`
		SELECT
			o.order_number,
			COALESCE(w.name, '')
		FROM process_executions e
		JOIN order_processes p ON p.id = e.process_id
		JOIN orders o ON o.id = p.order_id
		LEFT JOIN workers w ON w.id = e.worker_id
		WHERE e.equipment = ? AND e.completed_at IS NULL
		LIMIT 1
	`, equipment).Row()

	var orderNumber, workerName string
	err = row.Scan(&orderNumber, &workerName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}

	return errs.NewEquipmentConflictError(equipment, orderNumber, workerName)
}
