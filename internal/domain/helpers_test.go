package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/covtrace/internal/adapter"
	m "gooze.dev/pkg/covtrace/internal/model"
)

const (
	objA m.ObjectHandle = 0xA
	objB m.ObjectHandle = 0xB
)

var (
	defX = m.DefUse{ID: 10, Variable: "x", ClassName: "C", MethodName: "set"}
	defY = m.DefUse{ID: 20, Variable: "x", ClassName: "C", MethodName: "reset"}
	useX = m.DefUse{
		ID: 30, Variable: "x", ClassName: "C", MethodName: "get",
		ControlBranch: &m.Branch{ID: 7, InstructionID: 700}, ControlValue: true,
	}
	staticDef = m.DefUse{ID: 40, Variable: "count", ClassName: "C", MethodName: "inc", Static: true}
	staticUse = m.DefUse{ID: 41, Variable: "count", ClassName: "C", MethodName: "inc", Static: true}
)

func newTestPool() *adapter.StaticPool {
	pool := adapter.NewStaticPool()
	pool.AddDefinition(defX)
	pool.AddDefinition(defY)
	pool.AddUse(useX)
	pool.AddDefinition(staticDef)
	pool.AddUse(staticUse)
	pool.AddBranch(m.Branch{ID: 5, InstructionID: 101})
	pool.AddBranch(m.Branch{ID: 7, InstructionID: 700})
	pool.AddMutant(7)
	pool.AddMutant(8)

	return pool
}

func newTestTrace(t *testing.T) *ExecutionTrace {
	t.Helper()

	trace, err := NewExecutionTrace(DefaultConfig(), newTestPool())
	require.NoError(t, err)

	return trace
}

// buildWindowTrace records two objects calling get and set so that counter
// windows and object projections have something to cut:
//
//	get#1 on A: (7,0,1,c0) (-1,1,0,c0 use) (3,2,0,c1)
//	set#2 on B: (-1,1,0,c1 def)
//	get#3 on B: (7,1.5,0,c2) (7,0,4,c2)
//	root
func buildWindowTrace(t *testing.T) *ExecutionTrace {
	t.Helper()

	trace := newTestTrace(t)

	trace.EnterMethod("C", "get", objA)
	require.NoError(t, trace.BranchEvaluated(7, 700, 0, 1))
	require.NoError(t, trace.UseReached(objA, useX.ID))
	require.NoError(t, trace.BranchEvaluated(3, 300, 2, 0))
	trace.ExitMethod("C", "get")

	trace.EnterMethod("C", "set", objB)
	require.NoError(t, trace.DefinitionReached(objB, defX.ID))
	trace.ExitMethod("C", "set")

	trace.EnterMethod("C", "get", objB)
	require.NoError(t, trace.BranchEvaluated(7, 700, 1.5, 0))
	require.NoError(t, trace.BranchEvaluated(7, 700, 0, 4))
	trace.ExitMethod("C", "get")

	trace.FinishCalls()

	return trace
}

func callNames(calls []*m.MethodCall) []string {
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.FullName()
	}

	return names
}
