package model

import (
	"fmt"
	"strings"
)

// CallContext is a snapshot of the active frames at the moment a branch was
// evaluated, outermost first.
type CallContext struct {
	Frames []string
}

func (c CallContext) String() string {
	return strings.Join(c.Frames, " > ")
}

// BranchEval is one branch evaluation kept in chronological order.
type BranchEval struct {
	BranchID      int
	TrueDistance  float64
	FalseDistance float64
	Context       *CallContext
}

func (e BranchEval) String() string {
	return fmt.Sprintf("BranchEval [branchId=%d, trueDistance=%g, falseDistance=%g]",
		e.BranchID, e.TrueDistance, e.FalseDistance)
}
