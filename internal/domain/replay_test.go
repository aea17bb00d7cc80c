package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/covtrace/internal/model"
)

func TestReplay(t *testing.T) {
	events := []m.Event{
		{Kind: m.EventEnter, ClassName: "C", MethodName: "get", Caller: objA},
		{Kind: m.EventLine, ClassName: "C", MethodName: "get", Line: 12},
		{Kind: m.EventBranch, BranchID: 7, InstructionID: 700, TrueDistance: 0, FalseDistance: 1},
		{Kind: m.EventUse, Caller: objA, DefUseID: useX.ID},
		{Kind: m.EventReturn, ClassName: "C", MethodName: "get", Value: 3},
		{Kind: m.EventMutant, MutantID: 8, Distance: 0.25},
		{Kind: m.EventExit, ClassName: "C", MethodName: "get"},
		{Kind: m.EventDefinition, Caller: objB, DefUseID: defX.ID},
	}

	trace := newTestTrace(t)
	require.NoError(t, Replay(context.Background(), trace, events))

	calls := trace.FinishedCalls()
	assert.Equal(t, []string{"C.get", "."}, callNames(calls))
	assert.Equal(t, []int{12}, calls[0].LineTrace)
	assert.Equal(t, []int{7, m.NoBranch}, calls[0].BranchTrace)
	assert.Equal(t, []int{m.NoBranch}, calls[1].BranchTrace)

	assert.Equal(t, 2, trace.Counter())
	assert.Equal(t, 1, trace.Coverage().ReturnValueCount("C", "get", 3))
	assert.True(t, trace.Coverage().MutantTouched(8))
	assert.Equal(t, 0, trace.StackDepth())
}

func TestReplay_Errors(t *testing.T) {
	t.Run("unknown kind", func(t *testing.T) {
		trace := newTestTrace(t)

		err := Replay(context.Background(), trace, []m.Event{
			{Kind: m.EventEnter, ClassName: "C", MethodName: "m"},
			{Kind: "jump"},
		})
		require.ErrorIs(t, err, ErrContractViolation)
		assert.Contains(t, err.Error(), "event 1 (jump)")
		assert.Equal(t, []string{"C.m", "."}, callNames(trace.FinishedCalls()))
	})

	t.Run("contract violation stops delivery", func(t *testing.T) {
		trace := newTestTrace(t)

		err := Replay(context.Background(), trace, []m.Event{
			{Kind: m.EventBranch, BranchID: 5, TrueDistance: 1, FalseDistance: 1},
			{Kind: m.EventBranch, BranchID: 5, TrueDistance: 0, FalseDistance: 1},
		})
		require.ErrorIs(t, err, ErrContractViolation)
		assert.Empty(t, trace.Coverage().Branches())
	})

	t.Run("unknown def-use id", func(t *testing.T) {
		trace := newTestTrace(t)

		err := Replay(context.Background(), trace, []m.Event{{Kind: m.EventUse, DefUseID: 404}})
		require.ErrorIs(t, err, ErrUnknownDefUse)
	})

	t.Run("cancelled context flushes the stack", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		trace := newTestTrace(t)
		trace.EnterMethod("C", "m", m.NoObject)

		err := Replay(ctx, trace, []m.Event{{Kind: m.EventExit, ClassName: "C", MethodName: "m"}})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, trace.StackDepth())
		assert.Equal(t, []string{"C.m", "."}, callNames(trace.FinishedCalls()))
	})
}
