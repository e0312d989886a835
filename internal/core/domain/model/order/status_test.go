package order_test

import (
	"fmt"
	"testing"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStageSequence(t *testing.T) {
	t.Run("should create sequence from ordered labels", func(t *testing.T) {
		stages, err := order.NewStageSequence(order.Pending, order.Preparing, order.Served, order.Completed)

		require.NoError(t, err)
		assert.Equal(t, []order.Status{order.Pending, order.Preparing, order.Served, order.Completed}, stages.Stages())
		assert.Equal(t, order.Pending, stages.First())
		assert.Equal(t, order.Completed, stages.Terminal())
	})

	t.Run("should support the Ready label variant", func(t *testing.T) {
		stages, err := order.NewStageSequence(order.Pending, order.Preparing, order.Ready, order.Completed)

		require.NoError(t, err)
		assert.True(t, stages.Contains(order.Ready))
		assert.False(t, stages.Contains(order.Served))
	})

	t.Run("should reject fewer than two stages", func(t *testing.T) {
		_, err := order.NewStageSequence(order.Pending)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty labels", func(t *testing.T) {
		_, err := order.NewStageSequence(order.Pending, order.Status("  "))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject duplicate labels", func(t *testing.T) {
		_, err := order.NewStageSequence(order.Pending, order.Preparing, order.Pending)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDefaultStageSequence(t *testing.T) {
	t.Run("should use the four standard stages", func(t *testing.T) {
		stages := order.DefaultStageSequence()

		assert.Equal(t, []order.Status{order.Pending, order.Preparing, order.Served, order.Completed}, stages.Stages())
	})
}

func TestStageSequence_Validate(t *testing.T) {
	t.Run("constructed sequence is valid", func(t *testing.T) {
		require.NoError(t, order.DefaultStageSequence().Validate())
	})

	t.Run("zero value sequence is invalid", func(t *testing.T) {
		var stages order.StageSequence

		err := stages.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrStageSequenceIsNotConstructed, err)
	})
}

func TestStageSequence_Index(t *testing.T) {
	stages := order.DefaultStageSequence()

	t.Run("should return positions in declared order", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected int
		}{
			{order.Pending, 0},
			{order.Preparing, 1},
			{order.Served, 2},
			{order.Completed, 3},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("index of %s", tc.status), func(t *testing.T) {
				idx, err := stages.Index(tc.status)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, idx)
			})
		}
	})

	t.Run("should reject statuses outside the sequence", func(t *testing.T) {
		_, err := stages.Index(order.Ready)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStageSequence_TransitionAllowed(t *testing.T) {
	stages := order.DefaultStageSequence()

	t.Run("same status is always allowed", func(t *testing.T) {
		for _, s := range stages.Stages() {
			allowed, err := stages.TransitionAllowed(s, s)
			require.NoError(t, err)
			assert.True(t, allowed, "transition %s -> %s should be idempotent", s, s)
		}
	})

	t.Run("forward transition is allowed", func(t *testing.T) {
		allowed, err := stages.TransitionAllowed(order.Pending, order.Preparing)

		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("skipping stages is allowed", func(t *testing.T) {
		allowed, err := stages.TransitionAllowed(order.Pending, order.Completed)

		require.NoError(t, err)
		assert.True(t, allowed)
	})

	t.Run("backward transition is rejected", func(t *testing.T) {
		allowed, err := stages.TransitionAllowed(order.Completed, order.Pending)

		require.NoError(t, err)
		assert.False(t, allowed)
	})

	t.Run("unknown status yields error", func(t *testing.T) {
		_, err := stages.TransitionAllowed(order.Pending, order.Status("Burnt"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStageSequence_ProgressFraction(t *testing.T) {
	stages := order.DefaultStageSequence()

	t.Run("should report fraction of completed stages", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected float64
		}{
			{order.Pending, 0.25},
			{order.Preparing, 0.5},
			{order.Served, 0.75},
			{order.Completed, 1.0},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("progress of %s", tc.status), func(t *testing.T) {
				progress, err := stages.ProgressFraction(tc.status)
				require.NoError(t, err)
				assert.InDelta(t, tc.expected, progress, 1e-9)
			})
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := stages.ProgressFraction(order.Status("Lost"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
