package domain

import (
	"fmt"
	"log/slog"

	m "gooze.dev/pkg/covtrace/internal/model"
)

const (
	projectionObject = "object"
	projectionRange  = "counter_range"
)

// ForObject returns a copy of t whose finished calls are limited to calls made
// on objectID or from static code (id 0).
//
// Only the finished calls are filtered. Aggregate tables such as minimum branch
// distances cannot be attributed to a single object and are copied unchanged.
func (t *ExecutionTrace) ForObject(objectID int) *ExecutionTrace {
	r := t.Clone()

	r.stack.finished = keepCalls(r.stack.finished, func(call *m.MethodCall) bool {
		return call.CallingObjectID == 0 || call.CallingObjectID == objectID
	})

	projectionsTotal.WithLabelValues(projectionObject, "ok").Inc()
	projectionRetainedCalls.WithLabelValues(projectionObject).Observe(float64(len(r.stack.finished)))

	return r
}

// InCounterRange returns a copy of t reduced to the window [start, end] of the
// def-use counter inside the method that owns target.
//
// Calls of other methods are removed, and so are positions whose counter falls
// outside the window. A remaining position on target's control branch is also
// removed when it took the outcome leading to target, or the opposite outcome
// when wantToCover is false: such a pass is evidence about a later window, not
// this one. Calls left without positions are removed.
//
// The control branch test is a heuristic and misattributes positions when the
// reaching definitions of a branch change within one call.
func (t *ExecutionTrace) InCounterRange(target m.DefUse, wantToCover bool, start, end int) (*ExecutionTrace, error) {
	if start > end {
		projectionsTotal.WithLabelValues(projectionRange, "invalid").Inc()
		slog.Error("Rejected counter range", "trace", t.id, "start", start, "end", end)

		return nil, fmt.Errorf("%w: start %d is after end %d", ErrInvalidRange, start, end)
	}

	side := target.ControlValue
	if !wantToCover {
		side = !side
	}

	r := t.Clone()

	r.stack.finished = keepCalls(r.stack.finished, func(call *m.MethodCall) bool {
		if !ownsTarget(call, target) {
			return false
		}

		call.Keep(func(i int) bool {
			counter := call.DefUseCounterTrace[i]
			if counter < start || counter > end {
				return false
			}

			if target.ControlBranch == nil || call.BranchTrace[i] != target.ControlBranch.ID {
				return true
			}

			if side {
				return call.TrueDistanceTrace[i] != 0
			}

			return call.FalseDistanceTrace[i] != 0
		})

		return call.Len() > 0
	})

	projectionsTotal.WithLabelValues(projectionRange, "ok").Inc()
	projectionRetainedCalls.WithLabelValues(projectionRange).Observe(float64(len(r.stack.finished)))

	return r, nil
}

func ownsTarget(call *m.MethodCall, target m.DefUse) bool {
	if call.MethodName != target.MethodName {
		return false
	}

	return target.ClassName == "" || call.ClassName == target.ClassName
}

// keepCalls filters in place, preserving finish order.
func keepCalls(calls []*m.MethodCall, keep func(*m.MethodCall) bool) []*m.MethodCall {
	n := 0

	for _, call := range calls {
		if keep(call) {
			calls[n] = call
			n++
		}
	}

	clear(calls[n:])

	return calls[:n]
}
