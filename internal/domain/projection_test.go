package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionTrace_ForObject(t *testing.T) {
	trace := buildWindowTrace(t)

	idA, ok := trace.ObjectID(objA)
	require.True(t, ok)
	idB, ok := trace.ObjectID(objB)
	require.True(t, ok)

	t.Run("keeps calls on the object and static code", func(t *testing.T) {
		r := trace.ForObject(idA)

		calls := r.FinishedCalls()
		assert.Equal(t, []string{"C.get", "."}, callNames(calls))
		assert.Equal(t, 1, calls[0].MethodID)
		assert.True(t, calls[1].IsRoot())
	})

	t.Run("preserves finish order", func(t *testing.T) {
		r := trace.ForObject(idB)

		calls := r.FinishedCalls()
		require.Len(t, calls, 3)
		assert.Equal(t, []int{2, 3, 0}, []int{calls[0].MethodID, calls[1].MethodID, calls[2].MethodID})
	})

	t.Run("unknown object keeps static calls only", func(t *testing.T) {
		r := trace.ForObject(99)
		assert.Equal(t, []string{"."}, callNames(r.FinishedCalls()))
	})

	t.Run("aggregate tables are copied", func(t *testing.T) {
		r := trace.ForObject(idA)
		assert.True(t, r.Coverage().Equal(trace.Coverage()))
		assert.Equal(t, trace.Counter(), r.Counter())
	})

	t.Run("idempotent", func(t *testing.T) {
		once := trace.ForObject(idB)
		twice := once.ForObject(idB)
		assert.True(t, once.Equal(twice))
	})
}

func TestExecutionTrace_InCounterRange(t *testing.T) {
	trace := buildWindowTrace(t)

	t.Run("drops control branch passes towards the target", func(t *testing.T) {
		r, err := trace.InCounterRange(useX, true, 1, 2)
		require.NoError(t, err)

		calls := r.FinishedCalls()
		require.Len(t, calls, 2)

		assert.Equal(t, 1, calls[0].MethodID)
		assert.Equal(t, []int{3}, calls[0].BranchTrace)
		assert.Equal(t, []int{1}, calls[0].DefUseCounterTrace)

		assert.Equal(t, 3, calls[1].MethodID)
		assert.Equal(t, []int{7}, calls[1].BranchTrace)
		assert.Equal(t, []float64{1.5}, calls[1].TrueDistanceTrace)
		assert.Equal(t, []float64{0}, calls[1].FalseDistanceTrace)

		for _, call := range calls {
			assert.True(t, call.Sane())
		}
	})

	t.Run("opposite outcome when not covering", func(t *testing.T) {
		r, err := trace.InCounterRange(useX, false, 1, 2)
		require.NoError(t, err)

		calls := r.FinishedCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, []int{7}, calls[1].BranchTrace)
		assert.Equal(t, []float64{4}, calls[1].FalseDistanceTrace)
	})

	t.Run("window keeps only in-range counters", func(t *testing.T) {
		r, err := trace.InCounterRange(useX, true, 0, 0)
		require.NoError(t, err)

		calls := r.FinishedCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, 1, calls[0].MethodID)
		assert.Equal(t, []int{-1}, calls[0].BranchTrace)
	})

	t.Run("target without control branch keeps every in-range position", func(t *testing.T) {
		target := useX
		target.ControlBranch = nil

		r, err := trace.InCounterRange(target, true, 0, 2)
		require.NoError(t, err)

		calls := r.FinishedCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, 3, calls[0].Len())
		assert.Equal(t, 2, calls[1].Len())
	})

	t.Run("other methods are dropped", func(t *testing.T) {
		r, err := trace.InCounterRange(defX, true, 0, 10)
		require.NoError(t, err)

		assert.Equal(t, []string{"C.set"}, callNames(r.FinishedCalls()))
	})

	t.Run("empty window", func(t *testing.T) {
		r, err := trace.InCounterRange(useX, true, 5, 5)
		require.NoError(t, err)
		assert.Empty(t, r.FinishedCalls())
	})

	t.Run("invalid range", func(t *testing.T) {
		r, err := trace.InCounterRange(useX, true, 3, 1)
		require.ErrorIs(t, err, ErrInvalidRange)
		assert.Nil(t, r)
	})

	t.Run("idempotent", func(t *testing.T) {
		once, err := trace.InCounterRange(useX, true, 1, 2)
		require.NoError(t, err)

		twice, err := once.InCounterRange(useX, true, 1, 2)
		require.NoError(t, err)

		assert.True(t, once.Equal(twice))
	})
}

func TestExecutionTrace_ProjectionsLeaveSourceUntouched(t *testing.T) {
	trace := buildWindowTrace(t)
	before := trace.Clone()

	_ = trace.ForObject(1)
	_, err := trace.InCounterRange(useX, true, 0, 2)
	require.NoError(t, err)

	assert.True(t, trace.Equal(before))
	assert.Len(t, trace.FinishedCalls(), 4)
}

func TestExecutionTrace_Clone(t *testing.T) {
	trace := buildWindowTrace(t)
	c := trace.Clone()

	assert.True(t, trace.Equal(c))
	assert.Equal(t, trace.ID(), c.ID())
	assert.Equal(t, trace.PassedDefinitions("x"), c.PassedDefinitions("x"))

	c.FinishedCalls()[0].BranchTrace[0] = 42
	c.Coverage().RecordBranch(9, 0, 1, true)
	require.NoError(t, c.DefinitionReached(objA, defX.ID))

	assert.Equal(t, 7, trace.FinishedCalls()[0].BranchTrace[0])
	assert.Equal(t, 0, trace.Coverage().CoveredCount(9))
	assert.Equal(t, 2, trace.Counter())
	assert.False(t, trace.Equal(c))
}
