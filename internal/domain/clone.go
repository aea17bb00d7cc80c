package domain

import (
	"reflect"
	"slices"
)

// Clone returns a deep copy sharing no mutable state with t. Both projections
// start from it, so the source trace stays reusable for further fitness
// evaluation.
func (t *ExecutionTrace) Clone() *ExecutionTrace {
	t.mu.Lock()
	defer t.mu.Unlock()

	return &ExecutionTrace{
		id:          t.id,
		config:      t.config,
		pool:        t.pool,
		stack:       t.stack.Clone(),
		coverage:    t.coverage.Clone(),
		identities:  t.identities.Clone(),
		defUse:      t.defUse.Clone(),
		branchEvals: slices.Clone(t.branchEvals),
		err:         t.err,
	}
}

// Equal reports whether two traces hold the same calls, active frames and
// aggregate tables. Run ids are not compared.
func (t *ExecutionTrace) Equal(other *ExecutionTrace) bool {
	if t == other {
		return true
	}

	if other == nil {
		return false
	}

	a, b := t.Clone(), other.Clone()

	return reflect.DeepEqual(a.stack.finished, b.stack.finished) &&
		reflect.DeepEqual(a.stack.frames, b.stack.frames) &&
		a.coverage.Equal(b.coverage)
}
