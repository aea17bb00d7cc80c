package domain

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"

	"gooze.dev/pkg/covtrace/internal/adapter"
	m "gooze.dev/pkg/covtrace/internal/model"
)

// ExecutionTrace records everything observed while one test executes.
//
// Event methods are called by instrumentation and serialise on the trace's
// mutex, so a multi-threaded test cannot corrupt the tables. The call stack is
// still a single chronological stack: interleaved enter/exit events from
// several threads are absorbed by the mismatch recovery of ExitMethod.
type ExecutionTrace struct {
	id     string
	config Config
	pool   adapter.DefUsePool

	mu          sync.Mutex
	stack       *CallStack
	coverage    *Coverage
	identities  *IdentityRegistry
	defUse      *DefUseLog
	branchEvals []m.BranchEval
	err         error
}

// NewExecutionTrace creates a trace for one test execution. pool resolves the
// definition and use ids reported by instrumentation and may be nil when no
// dataflow events are expected.
func NewExecutionTrace(cfg Config, pool adapter.DefUsePool) (*ExecutionTrace, error) {
	if err := cfg.Validate(); err != nil {
		slog.Error("Rejected trace config", "error", err)
		return nil, err
	}

	return &ExecutionTrace{
		id:         uuid.NewString(),
		config:     cfg,
		pool:       pool,
		stack:      NewCallStack(cfg.InitialCallCapacity),
		coverage:   NewCoverage(),
		identities: NewIdentityRegistry(),
		defUse:     NewDefUseLog(),
	}, nil
}

// ID identifies the run in logs.
func (t *ExecutionTrace) ID() string {
	return t.id
}

// Config returns the switches the trace was created with.
func (t *ExecutionTrace) Config() Config {
	return t.config
}

// EnterMethod opens a frame for className.methodName called on caller.
func (t *ExecutionTrace) EnterMethod(className, methodName string, caller m.ObjectHandle) {
	eventsTotal.WithLabelValues(string(m.EventEnter)).Inc()

	if t.config.TraceCoverage {
		t.coverage.RecordMethod(className, methodName)
	}

	if !t.config.TraceCalls {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	call := t.stack.Push(className, methodName, t.identities.Register(caller))
	if t.config.MarkMethodEntry {
		call.AddPosition(m.NoBranch, 1, 0, t.defUse.Counter())
	}
}

// ExitMethod closes the innermost frame. Mismatched or missing frames are
// repaired, never reported.
func (t *ExecutionTrace) ExitMethod(className, methodName string) {
	eventsTotal.WithLabelValues(string(m.EventExit)).Inc()

	if !t.config.TraceCalls {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	expected := ""
	if top := t.stack.Top(); top != nil {
		expected = top.MethodName
	}

	switch t.stack.Exit(methodName) {
	case exitMatched:
	case exitRootFinished:
		stackRecoveriesTotal.WithLabelValues(recoveryRootFinished).Inc()
		slog.Debug("Finished root frame on mismatched exit", "trace", t.id, "class", className, "method", methodName)
	case exitDiscarded:
		stackRecoveriesTotal.WithLabelValues(recoveryDiscarded).Inc()
		slog.Debug("Discarded mismatched frame", "trace", t.id, "expected", expected, "got", methodName)
	case exitEmpty:
		stackRecoveriesTotal.WithLabelValues(recoveryEmptyStack).Inc()
		slog.Debug("Exit on empty call stack", "trace", t.id, "class", className, "method", methodName)
	}
}

// BranchEvaluated records one evaluation of a conditional. Exactly one of the
// distances is expected to be 0; both must be non-negative. instructionID names
// the code site and is only used for diagnostics.
func (t *ExecutionTrace) BranchEvaluated(branchID, instructionID int, trueDistance, falseDistance float64) error {
	eventsTotal.WithLabelValues(string(m.EventBranch)).Inc()

	if !validDistance(trueDistance) || !validDistance(falseDistance) || (trueDistance != 0 && falseDistance != 0) {
		contractViolationsTotal.WithLabelValues(string(m.EventBranch)).Inc()
		slog.Error("Rejected branch distances",
			"trace", t.id, "branch", branchID, "instruction", instructionID,
			"true", trueDistance, "false", falseDistance)

		return fmt.Errorf("%w: branch %d distances (%g, %g)", ErrContractViolation, branchID, trueDistance, falseDistance)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.config.TraceCalls {
		if top := t.stack.Top(); top != nil {
			top.AddPosition(branchID, trueDistance, falseDistance, t.defUse.Counter())
		} else {
			stackRecoveriesTotal.WithLabelValues(recoveryEmptyStack).Inc()
			slog.Debug("Branch on empty call stack", "trace", t.id, "branch", branchID)
		}
	}

	t.coverage.RecordBranch(branchID, trueDistance, falseDistance, t.config.TraceCoverage)

	if t.config.RecordBranchEvals {
		eval := m.BranchEval{BranchID: branchID, TrueDistance: trueDistance, FalseDistance: falseDistance}
		if t.config.RecordCallContexts {
			ctx := t.stack.Context()
			eval.Context = &ctx
		}

		t.branchEvals = append(t.branchEvals, eval)
	}

	return nil
}

// LineReached records a line hit in className.methodName.
func (t *ExecutionTrace) LineReached(className, methodName string, line int) {
	eventsTotal.WithLabelValues(string(m.EventLine)).Inc()

	if t.config.TraceCalls {
		t.traceLine(className, methodName, line)
	}

	if t.config.TraceCoverage {
		t.coverage.RecordLine(className, methodName, line)
	}
}

func (t *ExecutionTrace) traceLine(className, methodName string, line int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stack.FinishStale(methodName) {
		stackRecoveriesTotal.WithLabelValues(recoveryStaleFrame).Inc()
		slog.Warn("Finished stale frame on line event", "trace", t.id, "class", className, "method", methodName, "line", line)
	}

	top := t.stack.Top()
	if top == nil {
		stackRecoveriesTotal.WithLabelValues(recoveryEmptyStack).Inc()
		slog.Debug("Line on empty call stack", "trace", t.id, "class", className, "method", methodName, "line", line)

		return
	}

	if top.MethodName != methodName {
		// Only the root is left; lines outside observed methods have no call.
		return
	}

	top.LineTrace = append(top.LineTrace, line)
}

// DefinitionReached records that caller executed definition defID.
func (t *ExecutionTrace) DefinitionReached(caller m.ObjectHandle, defID int) error {
	eventsTotal.WithLabelValues(string(m.EventDefinition)).Inc()

	return t.passDefUse(caller, defID, m.KindDefinition)
}

// UseReached records that caller executed use useID.
func (t *ExecutionTrace) UseReached(caller m.ObjectHandle, useID int) error {
	eventsTotal.WithLabelValues(string(m.EventUse)).Inc()

	return t.passDefUse(caller, useID, m.KindUse)
}

func (t *ExecutionTrace) passDefUse(caller m.ObjectHandle, id int, kind m.DefUseKind) error {
	if !t.config.TraceCalls {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return t.err
	}

	du, err := t.resolve(id, kind)
	if err != nil {
		t.err = err
		slog.Error("Static analysis and instrumentation diverged", "trace", t.id, "kind", kind, "id", id, "error", err)

		return err
	}

	objectID := t.identities.Register(caller)
	if du.Static {
		objectID = 0
	}

	var counter int
	if kind == m.KindDefinition {
		counter = t.defUse.AddDefinition(du.Variable, objectID, id)
	} else {
		counter = t.defUse.AddUse(du.Variable, objectID, id)
	}

	if top := t.stack.Top(); top != nil {
		top.AddPosition(m.NoBranch, 1, 0, counter)
	}

	return nil
}

func (t *ExecutionTrace) resolve(id int, kind m.DefUseKind) (m.DefUse, error) {
	if t.pool == nil {
		return m.DefUse{}, fmt.Errorf("%w: %s %d reported without a def-use pool", ErrUnknownDefUse, kind, id)
	}

	var (
		du m.DefUse
		ok bool
	)

	if kind == m.KindDefinition {
		du, ok = t.pool.Definition(id)
	} else {
		du, ok = t.pool.Use(id)
	}

	if !ok {
		return m.DefUse{}, fmt.Errorf("%w: %s %d", ErrUnknownDefUse, kind, id)
	}

	return du, nil
}

// ReturnValueObserved counts a value returned by className.methodName.
func (t *ExecutionTrace) ReturnValueObserved(className, methodName string, value int) {
	eventsTotal.WithLabelValues(string(m.EventReturn)).Inc()
	t.coverage.RecordReturnValue(className, methodName, value)
}

// MutantTouched records that execution reached a mutant at the given distance;
// 0 means the mutant was detected.
func (t *ExecutionTrace) MutantTouched(mutantID int, distance float64) error {
	eventsTotal.WithLabelValues(string(m.EventMutant)).Inc()

	if !validDistance(distance) {
		contractViolationsTotal.WithLabelValues(string(m.EventMutant)).Inc()
		slog.Error("Rejected mutant distance", "trace", t.id, "mutant", mutantID, "distance", distance)

		return fmt.Errorf("%w: mutant %d distance %g", ErrContractViolation, mutantID, distance)
	}

	t.coverage.RecordMutant(mutantID, distance)

	return nil
}

// FinishCalls flushes every active frame, root included, into the finished
// calls. The harness calls it when a test ends, normally or not.
func (t *ExecutionTrace) FinishCalls() {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := t.stack.FinishAll()
	slog.Debug("Flushed call stack", "trace", t.id, "frames", n)
}

// Reset returns the trace to its freshly created state under a new id.
func (t *ExecutionTrace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.id = uuid.NewString()
	t.stack.Reset()
	t.coverage.Reset()
	t.identities.Reset()
	t.defUse.Reset()
	t.branchEvals = t.branchEvals[:0]
	t.err = nil
}

func validDistance(d float64) bool {
	return d >= 0 && !math.IsNaN(d) && !math.IsInf(d, 0)
}

// FinishedCalls returns the finished calls in finish order. Callers must treat
// the records as read-only; use Clone or a projection to obtain a mutable copy.
func (t *ExecutionTrace) FinishedCalls() []*m.MethodCall {
	t.mu.Lock()
	defer t.mu.Unlock()

	finished := t.stack.Finished()
	out := make([]*m.MethodCall, len(finished))
	copy(out, finished)

	return out
}

// StackDepth returns the number of active frames.
func (t *ExecutionTrace) StackDepth() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.stack.Depth()
}

// Coverage returns the aggregate tables.
func (t *ExecutionTrace) Coverage() *Coverage {
	return t.coverage
}

// ObjectID returns the identity assigned to a handle.
func (t *ExecutionTrace) ObjectID(h m.ObjectHandle) (int, bool) {
	return t.identities.Lookup(h)
}

// KnownObjects returns how many distinct objects were seen.
func (t *ExecutionTrace) KnownObjects() int {
	return t.identities.Len()
}

// Counter returns the value the next definition or use will consume.
func (t *ExecutionTrace) Counter() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.defUse.Counter()
}

// Variables lists variables with recorded definitions or uses.
func (t *ExecutionTrace) Variables() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.defUse.Variables()
}

// PassedDefinitions returns a copy of object id -> counter -> definition id
// for variable.
func (t *ExecutionTrace) PassedDefinitions(variable string) map[int]map[int]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.defUse.definitions.copyOf(variable)
}

// PassedUses returns a copy of object id -> counter -> use id for variable.
func (t *ExecutionTrace) PassedUses(variable string) map[int]map[int]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.defUse.uses.copyOf(variable)
}

// DefUseReport renders the definition/use timeline of a variable.
func (t *ExecutionTrace) DefUseReport(variable string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.defUse.Report(variable)
}

// BranchEvals returns the kept branch evaluations in order.
func (t *ExecutionTrace) BranchEvals() []m.BranchEval {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]m.BranchEval, len(t.branchEvals))
	copy(out, t.branchEvals)

	return out
}

// Err returns the error that made the trace unusable, if any.
func (t *ExecutionTrace) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

func (t *ExecutionTrace) String() string {
	var b strings.Builder

	for _, call := range t.FinishedCalls() {
		b.WriteString(call.String())
	}

	cov := t.coverage
	b.WriteString("\nCovered predicates: ")

	for _, id := range cov.Branches() {
		fmt.Fprintf(&b, "%d: %d, ", id, cov.CoveredCount(id))
	}

	b.WriteString("\nTrue distances: ")

	for _, id := range cov.Branches() {
		d, _ := cov.MinTrueDistance(id)
		fmt.Fprintf(&b, "%d: %g, ", id, d)
	}

	b.WriteString("\nFalse distances: ")

	for _, id := range cov.Branches() {
		d, _ := cov.MinFalseDistance(id)
		fmt.Fprintf(&b, "%d: %g, ", id, d)
	}

	return b.String()
}
