package domain

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/covtrace/internal/model"
)

func TestNewExecutionTrace_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RecordCallContexts = true

	trace, err := NewExecutionTrace(cfg, nil)
	require.Error(t, err)
	assert.Nil(t, trace)
}

func TestExecutionTrace_ScenarioSingleCallTwoBranches(t *testing.T) {
	trace := newTestTrace(t)

	trace.EnterMethod("C", "m", m.NoObject)
	require.NoError(t, trace.BranchEvaluated(5, 101, 0.0, 3.2))
	require.NoError(t, trace.BranchEvaluated(5, 101, 2.0, 0.0))
	trace.ExitMethod("C", "m")

	calls := trace.FinishedCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "C.m", calls[0].FullName())
	assert.Equal(t, []int{5, 5}, calls[0].BranchTrace)
	assert.True(t, calls[0].Sane())

	cov := trace.Coverage()

	minTrue, ok := cov.MinTrueDistance(5)
	require.True(t, ok)
	assert.Equal(t, 0.0, minTrue)

	minFalse, ok := cov.MinFalseDistance(5)
	require.True(t, ok)
	assert.Equal(t, 0.0, minFalse)

	assert.Equal(t, 2, cov.CoveredCount(5))
	assert.Equal(t, 1, cov.TrueCoveredCount(5))
	assert.Equal(t, 1, cov.FalseCoveredCount(5))
	assert.Equal(t, 1, cov.MethodHits("C", "m"))
}

func TestExecutionTrace_ScenarioTwoObjectsDefineSameField(t *testing.T) {
	trace := newTestTrace(t)

	require.NoError(t, trace.DefinitionReached(objA, defX.ID))
	require.NoError(t, trace.DefinitionReached(objB, defY.ID))

	idA, ok := trace.ObjectID(objA)
	require.True(t, ok)
	idB, ok := trace.ObjectID(objB)
	require.True(t, ok)

	assert.NotZero(t, idA)
	assert.NotZero(t, idB)
	assert.NotEqual(t, idA, idB)

	assert.Equal(t, map[int]map[int]int{
		idA: {0: defX.ID},
		idB: {1: defY.ID},
	}, trace.PassedDefinitions("x"))
}

func TestExecutionTrace_ScenarioMismatchedExitDiscardsFrame(t *testing.T) {
	trace := newTestTrace(t)

	trace.EnterMethod("C", "outer", m.NoObject)
	trace.EnterMethod("C", "inner", m.NoObject)
	trace.ExitMethod("C", "outer")

	assert.Empty(t, trace.FinishedCalls())
	assert.Equal(t, 2, trace.StackDepth())

	trace.ExitMethod("C", "outer")
	assert.Equal(t, []string{"C.outer"}, callNames(trace.FinishedCalls()))
}

func TestExecutionTrace_ScenarioMutantMinimum(t *testing.T) {
	trace := newTestTrace(t)

	require.NoError(t, trace.MutantTouched(7, 0.4))
	require.NoError(t, trace.MutantTouched(7, 0.1))

	assert.True(t, trace.Coverage().MutantTouched(7))

	d, ok := trace.Coverage().MutantDistance(7)
	require.True(t, ok)
	assert.Equal(t, 0.1, d)
}

func TestExecutionTrace_RootFinishedOnMismatchWithPositions(t *testing.T) {
	trace := newTestTrace(t)

	require.NoError(t, trace.BranchEvaluated(5, 101, 0, 1))
	trace.ExitMethod("C", "m")

	calls := trace.FinishedCalls()
	require.Len(t, calls, 1)
	assert.True(t, calls[0].IsRoot())
	assert.Equal(t, 0, trace.StackDepth())

	// Further events on an empty stack still reach the aggregate tables.
	require.NoError(t, trace.BranchEvaluated(5, 101, 3, 0))
	trace.ExitMethod("C", "m")
	trace.LineReached("C", "m", 4)

	assert.Equal(t, 2, trace.Coverage().CoveredCount(5))
	assert.Equal(t, 1, trace.Coverage().LineHits("C", "m", 4))
	assert.Len(t, trace.FinishedCalls(), 1)
}

func TestExecutionTrace_ContractViolations(t *testing.T) {
	tests := []struct {
		name string
		t, f float64
	}{
		{"negative true", -1, 0},
		{"negative false", 0, -0.5},
		{"no zero side", 1, 2},
		{"nan", math.NaN(), 0},
		{"inf", 0, math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trace := newTestTrace(t)
			trace.EnterMethod("C", "m", m.NoObject)

			err := trace.BranchEvaluated(5, 101, tt.t, tt.f)
			require.ErrorIs(t, err, ErrContractViolation)
			assert.Empty(t, trace.Coverage().Branches())

			trace.FinishCalls()
			for _, call := range trace.FinishedCalls() {
				assert.Zero(t, call.Len())
			}
		})
	}

	t.Run("negative mutant distance", func(t *testing.T) {
		trace := newTestTrace(t)

		require.ErrorIs(t, trace.MutantTouched(1, -0.1), ErrContractViolation)
		assert.False(t, trace.Coverage().MutantTouched(1))
	})

	t.Run("both sides zero is accepted", func(t *testing.T) {
		trace := newTestTrace(t)
		require.NoError(t, trace.BranchEvaluated(5, 101, 0, 0))
	})
}

func TestExecutionTrace_UnknownDefUseIsFatal(t *testing.T) {
	trace := newTestTrace(t)

	err := trace.UseReached(objA, 999)
	require.ErrorIs(t, err, ErrUnknownDefUse)
	require.ErrorIs(t, trace.Err(), ErrUnknownDefUse)

	err = trace.DefinitionReached(objA, defX.ID)
	require.ErrorIs(t, err, ErrUnknownDefUse, "a failed trace rejects further dataflow events")
	assert.Equal(t, 0, trace.Counter())
}

func TestExecutionTrace_DefUseWithoutPool(t *testing.T) {
	trace, err := NewExecutionTrace(DefaultConfig(), nil)
	require.NoError(t, err)

	require.ErrorIs(t, trace.DefinitionReached(objA, 1), ErrUnknownDefUse)
}

func TestExecutionTrace_CounterIsSharedAndStrictlyIncreasing(t *testing.T) {
	trace := newTestTrace(t)

	trace.EnterMethod("C", "get", objA)
	require.NoError(t, trace.DefinitionReached(objA, defX.ID))
	require.NoError(t, trace.UseReached(objA, useX.ID))
	require.NoError(t, trace.BranchEvaluated(7, 700, 0, 1))
	require.NoError(t, trace.DefinitionReached(objA, defY.ID))
	require.NoError(t, trace.UseReached(objA, useX.ID))
	trace.ExitMethod("C", "get")

	assert.Equal(t, 4, trace.Counter())

	id, _ := trace.ObjectID(objA)
	assert.Equal(t, map[int]map[int]int{id: {0: defX.ID, 2: defY.ID}}, trace.PassedDefinitions("x"))
	assert.Equal(t, map[int]map[int]int{id: {1: useX.ID, 3: useX.ID}}, trace.PassedUses("x"))

	call := trace.FinishedCalls()[0]
	assert.Equal(t, []int{m.NoBranch, m.NoBranch, 7, m.NoBranch, m.NoBranch}, call.BranchTrace)
	assert.Equal(t, []int{0, 1, 2, 2, 3}, call.DefUseCounterTrace)
	assert.Equal(t, []float64{1, 1, 0, 1, 1}, call.TrueDistanceTrace)
	assert.Equal(t, []float64{0, 0, 1, 0, 0}, call.FalseDistanceTrace)
	assert.True(t, call.Sane())
}

func TestExecutionTrace_StaticVariablesFoldToObjectZero(t *testing.T) {
	trace := newTestTrace(t)

	require.NoError(t, trace.DefinitionReached(objA, staticDef.ID))
	require.NoError(t, trace.UseReached(objB, staticUse.ID))

	assert.Equal(t, map[int]map[int]int{0: {0: staticDef.ID}}, trace.PassedDefinitions("count"))
	assert.Equal(t, map[int]map[int]int{0: {1: staticUse.ID}}, trace.PassedUses("count"))
	assert.Equal(t, 2, trace.KnownObjects())
}

func TestExecutionTrace_LineReached(t *testing.T) {
	t.Run("appends to the matching frame", func(t *testing.T) {
		trace := newTestTrace(t)

		trace.EnterMethod("C", "m", m.NoObject)
		trace.LineReached("C", "m", 3)
		trace.LineReached("C", "m", 4)
		trace.ExitMethod("C", "m")

		assert.Equal(t, []int{3, 4}, trace.FinishedCalls()[0].LineTrace)
		assert.Equal(t, 1, trace.Coverage().LineHits("C", "m", 3))
	})

	t.Run("finishes a stale frame left by an exception", func(t *testing.T) {
		trace := newTestTrace(t)

		trace.EnterMethod("C", "outer", m.NoObject)
		trace.EnterMethod("C", "inner", m.NoObject)
		trace.LineReached("C", "outer", 9)

		assert.Equal(t, []string{"C.inner"}, callNames(trace.FinishedCalls()))

		trace.ExitMethod("C", "outer")
		calls := trace.FinishedCalls()
		require.Len(t, calls, 2)
		assert.Equal(t, []int{9}, calls[1].LineTrace)
	})

	t.Run("lines outside observed methods only count coverage", func(t *testing.T) {
		trace := newTestTrace(t)

		trace.LineReached("C", "m", 3)
		trace.FinishCalls()

		assert.Empty(t, trace.FinishedCalls()[0].LineTrace)
		assert.Equal(t, 1, trace.Coverage().LineHits("C", "m", 3))
	})
}

func TestExecutionTrace_Toggles(t *testing.T) {
	t.Run("call tracing off", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TraceCalls = false

		trace, err := NewExecutionTrace(cfg, newTestPool())
		require.NoError(t, err)

		trace.EnterMethod("C", "m", objA)
		require.NoError(t, trace.BranchEvaluated(5, 101, 0, 1))
		require.NoError(t, trace.DefinitionReached(objA, defX.ID))
		trace.ExitMethod("C", "m")
		trace.FinishCalls()

		calls := trace.FinishedCalls()
		require.Len(t, calls, 1)
		assert.True(t, calls[0].IsRoot())
		assert.Zero(t, calls[0].Len())
		assert.Equal(t, 0, trace.Counter())
		assert.Equal(t, 1, trace.Coverage().CoveredCount(5))
		assert.Equal(t, 1, trace.Coverage().MethodHits("C", "m"))
	})

	t.Run("coverage tracing off", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TraceCoverage = false

		trace, err := NewExecutionTrace(cfg, newTestPool())
		require.NoError(t, err)

		trace.EnterMethod("C", "m", objA)
		trace.LineReached("C", "m", 1)
		require.NoError(t, trace.BranchEvaluated(5, 101, 0, 1))
		trace.ExitMethod("C", "m")

		assert.Equal(t, 0, trace.Coverage().CoveredCount(5))
		assert.Equal(t, 0, trace.Coverage().LineHits("C", "m", 1))
		assert.Equal(t, 0, trace.Coverage().MethodHits("C", "m"))

		d, ok := trace.Coverage().MinFalseDistance(5)
		require.True(t, ok)
		assert.Equal(t, 1.0, d)
		assert.Equal(t, []int{5}, trace.FinishedCalls()[0].BranchTrace)
	})
}

func TestExecutionTrace_MarkMethodEntry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MarkMethodEntry = true

	trace, err := NewExecutionTrace(cfg, newTestPool())
	require.NoError(t, err)

	require.NoError(t, trace.DefinitionReached(objA, defX.ID))
	trace.EnterMethod("C", "m", objA)
	trace.ExitMethod("C", "m")

	call := trace.FinishedCalls()[0]
	assert.Equal(t, []int{m.NoBranch}, call.BranchTrace)
	assert.Equal(t, []int{1}, call.DefUseCounterTrace)
}

func TestExecutionTrace_BranchEvals(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RecordBranchEvals = true
	cfg.RecordCallContexts = true

	trace, err := NewExecutionTrace(cfg, nil)
	require.NoError(t, err)

	trace.EnterMethod("C", "f", m.NoObject)
	trace.EnterMethod("C", "g", m.NoObject)
	require.NoError(t, trace.BranchEvaluated(5, 101, 0, 2))

	evals := trace.BranchEvals()
	require.Len(t, evals, 1)
	assert.Equal(t, 5, evals[0].BranchID)
	assert.Equal(t, 2.0, evals[0].FalseDistance)
	require.NotNil(t, evals[0].Context)
	assert.Equal(t, []string{"C.f", "C.g"}, evals[0].Context.Frames)
}

func TestExecutionTrace_ReturnValues(t *testing.T) {
	trace := newTestTrace(t)

	trace.ReturnValueObserved("C", "m", 1)
	trace.ReturnValueObserved("C", "m", 1)

	assert.Equal(t, 2, trace.Coverage().ReturnValueCount("C", "m", 1))
}

func TestExecutionTrace_FinishCallsInnermostFirst(t *testing.T) {
	trace := newTestTrace(t)

	trace.EnterMethod("C", "f", m.NoObject)
	trace.EnterMethod("C", "g", m.NoObject)
	trace.FinishCalls()

	assert.Equal(t, []string{"C.g", "C.f", "."}, callNames(trace.FinishedCalls()))
	assert.Equal(t, 0, trace.StackDepth())
}

func TestExecutionTrace_Reset(t *testing.T) {
	trace := buildWindowTrace(t)
	id := trace.ID()

	trace.Reset()

	assert.NotEqual(t, id, trace.ID())
	assert.Empty(t, trace.FinishedCalls())
	assert.Equal(t, 1, trace.StackDepth())
	assert.Equal(t, 0, trace.Counter())
	assert.Equal(t, 0, trace.KnownObjects())
	assert.Empty(t, trace.Coverage().Branches())
	assert.Empty(t, trace.Variables())
	assert.NoError(t, trace.Err())

	fresh := newTestTrace(t)
	assert.True(t, trace.Equal(fresh))
}

func TestExecutionTrace_ConcurrentEventsDoNotRace(t *testing.T) {
	trace := newTestTrace(t)

	var wg sync.WaitGroup

	for w := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range 100 {
				trace.EnterMethod("C", "m", m.ObjectHandle(w+1))
				_ = trace.BranchEvaluated(w, 0, 0, float64(i))
				_ = trace.MutantTouched(w, float64(i))
				trace.LineReached("C", "m", i)
				trace.ExitMethod("C", "m")
			}
		}()
	}

	wg.Wait()
	trace.FinishCalls()

	for w := range 8 {
		assert.Equal(t, 100, trace.Coverage().CoveredCount(w))

		d, ok := trace.Coverage().MutantDistance(w)
		require.True(t, ok)
		assert.Equal(t, 0.0, d)
	}

	for _, call := range trace.FinishedCalls() {
		assert.True(t, call.Sane())
	}
}

func TestExecutionTrace_DefUseReport(t *testing.T) {
	trace := newTestTrace(t)

	require.NoError(t, trace.DefinitionReached(objA, defX.ID))
	require.NoError(t, trace.UseReached(objA, useX.ID))

	assert.Equal(t, "(0:Def 10), (1:Use 30)\n", trace.DefUseReport("x"))
	assert.Equal(t, []string{"x"}, trace.Variables())
}
