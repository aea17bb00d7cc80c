// Package model defines the data structures recorded while a test executes.
package model

import (
	"fmt"
	"strings"
)

// NoBranch marks a synthetic trace position that is not a branch evaluation.
// Definitions, uses and (optionally) method entries occupy such positions so that
// they line up with real branch evaluations when a call is sliced by counter.
const NoBranch = -1

// ObjectHandle is the opaque per-object correlation handle supplied by the
// instrumentation layer. Two events carry the same handle iff they were raised
// on the same runtime object.
type ObjectHandle uint64

// NoObject is the handle of static code or a nil receiver.
const NoObject ObjectHandle = 0

// MethodCall is one observed invocation.
//
// BranchTrace, TrueDistanceTrace, FalseDistanceTrace and DefUseCounterTrace are
// parallel: index i of each describes the same trace position. LineTrace is
// independent.
type MethodCall struct {
	ClassName          string    `yaml:"class"`
	MethodName         string    `yaml:"method"`
	MethodID           int       `yaml:"id"`
	CallingObjectID    int       `yaml:"object"`
	CallDepth          int       `yaml:"depth"`
	LineTrace          []int     `yaml:"lines,flow"`
	BranchTrace        []int     `yaml:"branches,flow"`
	TrueDistanceTrace  []float64 `yaml:"true_distances,flow"`
	FalseDistanceTrace []float64 `yaml:"false_distances,flow"`
	DefUseCounterTrace []int     `yaml:"counters,flow"`
}

// NewMethodCall creates an empty call record.
func NewMethodCall(className, methodName string, methodID, callingObjectID, callDepth int) *MethodCall {
	return &MethodCall{
		ClassName:       className,
		MethodName:      methodName,
		MethodID:        methodID,
		CallingObjectID: callingObjectID,
		CallDepth:       callDepth,
	}
}

// IsRoot reports whether the call is the sentinel frame standing for code that
// runs outside of any observed method.
func (c *MethodCall) IsRoot() bool {
	return c.MethodID == 0 && c.MethodName == "" && c.ClassName == ""
}

// Len returns the number of aligned trace positions.
func (c *MethodCall) Len() int {
	return len(c.BranchTrace)
}

// AddPosition appends one aligned position.
func (c *MethodCall) AddPosition(branch int, trueDistance, falseDistance float64, counter int) {
	c.BranchTrace = append(c.BranchTrace, branch)
	c.TrueDistanceTrace = append(c.TrueDistanceTrace, trueDistance)
	c.FalseDistanceTrace = append(c.FalseDistanceTrace, falseDistance)
	c.DefUseCounterTrace = append(c.DefUseCounterTrace, counter)
}

// Keep retains only the positions for which keep returns true, preserving order.
func (c *MethodCall) Keep(keep func(i int) bool) {
	n := 0

	for i := range c.BranchTrace {
		if !keep(i) {
			continue
		}

		c.BranchTrace[n] = c.BranchTrace[i]
		c.TrueDistanceTrace[n] = c.TrueDistanceTrace[i]
		c.FalseDistanceTrace[n] = c.FalseDistanceTrace[i]
		c.DefUseCounterTrace[n] = c.DefUseCounterTrace[i]
		n++
	}

	c.BranchTrace = c.BranchTrace[:n]
	c.TrueDistanceTrace = c.TrueDistanceTrace[:n]
	c.FalseDistanceTrace = c.FalseDistanceTrace[:n]
	c.DefUseCounterTrace = c.DefUseCounterTrace[:n]
}

// Sane reports whether the aligned slices share one length.
func (c *MethodCall) Sane() bool {
	n := len(c.BranchTrace)

	return len(c.TrueDistanceTrace) == n &&
		len(c.FalseDistanceTrace) == n &&
		len(c.DefUseCounterTrace) == n
}

// Clone returns a copy that shares no backing arrays with c.
func (c *MethodCall) Clone() *MethodCall {
	return &MethodCall{
		ClassName:          c.ClassName,
		MethodName:         c.MethodName,
		MethodID:           c.MethodID,
		CallingObjectID:    c.CallingObjectID,
		CallDepth:          c.CallDepth,
		LineTrace:          cloneSlice(c.LineTrace),
		BranchTrace:        cloneSlice(c.BranchTrace),
		TrueDistanceTrace:  cloneSlice(c.TrueDistanceTrace),
		FalseDistanceTrace: cloneSlice(c.FalseDistanceTrace),
		DefUseCounterTrace: cloneSlice(c.DefUseCounterTrace),
	}
}

// FullName returns "class.method".
func (c *MethodCall) FullName() string {
	return c.ClassName + "." + c.MethodName
}

func (c *MethodCall) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:%s\n", c.ClassName, c.MethodName)
	fmt.Fprintf(&b, "Branches: %v\n", c.BranchTrace)
	fmt.Fprintf(&b, "True Distances: %v\n", c.TrueDistanceTrace)
	fmt.Fprintf(&b, "False Distances: %v\n", c.FalseDistanceTrace)

	return b.String()
}

// cloneSlice keeps nil as nil so that clones compare equal to their source.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}

	out := make([]T, len(in))
	copy(out, in)

	return out
}
