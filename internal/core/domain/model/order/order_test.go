package order_test

import (
	"testing"
	"time"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTable(t *testing.T, raw string) kernel.TableNumber {
	t.Helper()
	table, err := kernel.NewTableNumber(raw)
	require.NoError(t, err)
	return table
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	lines := []order.CartLine{
		mustLine(t, 101, "Paneer Tikka", 180, 2),
		mustLine(t, 104, "Gulab Jamun", 90, 1),
	}
	o, err := order.NewOrder(1001, mustTable(t, "5"), lines, order.DefaultStageSequence(), time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in the first stage", func(t *testing.T) {
		createdAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 2)}

		o, err := order.NewOrder(1001, mustTable(t, "5"), lines, order.DefaultStageSequence(), createdAt)

		require.NoError(t, err)
		assert.Equal(t, int64(1001), o.ID())
		assert.Equal(t, "5", o.Table().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.Len(t, o.Lines(), 1)
		require.NoError(t, o.Validate())
	})

	t.Run("should start in the first stage of a custom sequence", func(t *testing.T) {
		stages, err := order.NewStageSequence(order.Status("Queued"), order.Completed)
		require.NoError(t, err)
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 1)}

		o, err := order.NewOrder(1001, mustTable(t, "5"), lines, stages, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Status("Queued"), o.Status())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 1)}

		_, err := order.NewOrder(0, mustTable(t, "5"), lines, order.DefaultStageSequence(), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed table", func(t *testing.T) {
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 1)}

		_, err := order.NewOrder(1001, kernel.TableNumber{}, lines, order.DefaultStageSequence(), time.Now())

		require.Error(t, err)
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		_, err := order.NewOrder(1001, mustTable(t, "5"), nil, order.DefaultStageSequence(), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 1)}

		_, err := order.NewOrder(1001, mustTable(t, "5"), lines, order.DefaultStageSequence(), time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed stage sequence", func(t *testing.T) {
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 1)}

		_, err := order.NewOrder(1001, mustTable(t, "5"), lines, order.StageSequence{}, time.Now())

		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted order with its stored status", func(t *testing.T) {
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 2)}

		o, err := order.RestoreOrder(1002, mustTable(t, "7"), lines, order.Preparing, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		require.NoError(t, o.Validate())
	})

	t.Run("should accept stage labels outside the current configuration", func(t *testing.T) {
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 2)}

		o, err := order.RestoreOrder(1002, mustTable(t, "7"), lines, order.Ready, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject empty status", func(t *testing.T) {
		lines := []order.CartLine{mustLine(t, 101, "Paneer Tikka", 180, 2)}

		_, err := order.RestoreOrder(1002, mustTable(t, "7"), lines, order.Status(""), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		_, err := order.RestoreOrder(1002, mustTable(t, "7"), nil, order.Pending, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("total sums the frozen snapshot", func(t *testing.T) {
		o := newTestOrder(t)

		assert.True(t, o.Total().Equal(decimal.NewFromInt(450)))
	})

	t.Run("total is stable across re-reads", func(t *testing.T) {
		o := newTestOrder(t)

		restored, err := order.RestoreOrder(o.ID(), o.Table(), o.Lines(), o.Status(), o.CreatedAt())
		require.NoError(t, err)

		assert.True(t, o.Total().Equal(restored.Total()))
	})

	t.Run("mutating the returned lines does not affect the order", func(t *testing.T) {
		o := newTestOrder(t)

		lines := o.Lines()
		lines[0] = order.CartLine{}

		assert.True(t, o.Total().Equal(decimal.NewFromInt(450)))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	stages := order.DefaultStageSequence()

	t.Run("should advance to the next stage", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Preparing, stages))
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should allow skipping stages", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed, stages))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("repeating the current stage is an idempotent no-op", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Pending, stages))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject backward transition and keep prior status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Served, stages))

		err := o.ChangeStatus(order.Preparing, stages)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("should reject statuses outside the sequence", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Ready, stages)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("orders are compared by id", func(t *testing.T) {
		first := newTestOrder(t)
		lines := []order.CartLine{mustLine(t, 102, "Chicken Biryani", 220, 1)}
		second, err := order.NewOrder(first.ID(), mustTable(t, "9"), lines, order.DefaultStageSequence(), time.Now())
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(nil))
	})
}
