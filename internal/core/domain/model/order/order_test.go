package order_test

import (
	"testing"
	"time"

	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, names ...order.ProcessName) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "1825", "", "", names, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates in_progress order with sequenced processes", func(t *testing.T) {
		o := newTestOrder(t, order.Printing, order.Lamination, order.Packaging)

		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Equal(t, "1825", o.OrderNumber())
		assert.Nil(t, o.CompletedAt())
		require.Len(t, o.Processes(), 3)

		for i, process := range o.Processes() {
			assert.Equal(t, i+1, process.Sequence())
			assert.Equal(t, order.ProcessStatusPending, process.Status())
			assert.True(t, process.OrderID().IsEqual(o.ID()))
		}
	})

	t.Run("order number is required", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "", "", nil, time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unknown process name is rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "1825", "", "",
			[]order.ProcessName{order.ProcessName("Forging")}, time.Now())
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("rejected while any process is incomplete", func(t *testing.T) {
		o := newTestOrder(t, order.Printing, order.Packaging)

		err := o.Complete(time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "2 of 2 processes are not completed")
		assert.Equal(t, order.StatusInProgress, o.Status())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("succeeds once all processes are completed", func(t *testing.T) {
		id := kernel.NewUUID()
		completedProcess, err := order.RestoreProcess(
			kernel.NewUUID(), id, order.Printing, 1, order.ProcessStatusCompleted)
		require.NoError(t, err)

		o, err := order.RestoreOrder(id, "1825", order.StatusInProgress, "", "",
			time.Now(), nil, []*order.Process{completedProcess})
		require.NoError(t, err)

		now := time.Now()
		require.NoError(t, o.Complete(now))
		assert.Equal(t, order.StatusCompleted, o.Status())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, now, *o.CompletedAt())
	})

	t.Run("completion is never reversed", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Complete(time.Now()))

		err := o.Complete(time.Now())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("completed order requires completion timestamp", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "1825", order.StatusCompleted,
			"", "", time.Now(), nil, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("in_progress order must not carry completion timestamp", func(t *testing.T) {
		now := time.Now()
		_, err := order.RestoreOrder(kernel.NewUUID(), "1825", order.StatusInProgress,
			"", "", now, &now, nil)
		require.Error(t, err)
	})

	t.Run("round-trips attributes", func(t *testing.T) {
		created := time.Now().Add(-time.Hour)
		completed := time.Now()
		o, err := order.RestoreOrder(kernel.NewUUID(), "1825", order.StatusCompleted,
			"magnets for trade fair", "https://photos/1825.jpg", created, &completed, nil)
		require.NoError(t, err)

		assert.Equal(t, "magnets for trade fair", o.Description())
		assert.Equal(t, "https://photos/1825.jpg", o.PhotoURL())
		assert.Equal(t, created, o.CreatedAt())
	})
}

func TestOrder_IncompleteProcessCount(t *testing.T) {
	id := kernel.NewUUID()
	done, err := order.RestoreProcess(kernel.NewUUID(), id, order.Printing, 1, order.ProcessStatusCompleted)
	require.NoError(t, err)
	pending, err := order.NewProcess(kernel.NewUUID(), id, order.Packaging, 2)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, "1825", order.StatusInProgress, "", "",
		time.Now(), nil, []*order.Process{done, pending})
	require.NoError(t, err)

	assert.Equal(t, 1, o.IncompleteProcessCount())
}
