package ports

import "context"

// EquipmentArbiter enforces mutual exclusion over named equipment shared
// across all in-flight executions system-wide. A die-cutting press is one
// physical resource regardless of which order wants it.
type EquipmentArbiter interface {
	// TryReserve checks that no active execution currently holds the named
	// equipment. It must be called inside the same transaction as the
	// subsequent execution insert; the implementation serializes concurrent
	// claims on the same name so that the check and the insert form one
	// atomic unit. Returns an EquipmentConflictError naming the holder's
	// order number and worker when the equipment is busy.
	TryReserve(ctx context.Context, equipment string) error
}
