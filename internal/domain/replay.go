package domain

import (
	"context"
	"fmt"
	"log/slog"

	m "gooze.dev/pkg/covtrace/internal/model"
)

// Replay feeds recorded events into trace the way instrumentation would, then
// flushes the call stack. When ctx ends first, delivery stops and the stack is
// flushed anyway, leaving an incomplete but usable trace, as a harness timeout
// does.
func Replay(ctx context.Context, trace *ExecutionTrace, events []m.Event) error {
	defer trace.FinishCalls()

	for i, event := range events {
		if err := ctx.Err(); err != nil {
			slog.Debug("Replay interrupted", "trace", trace.ID(), "delivered", i, "total", len(events))
			return err
		}

		if err := apply(trace, event); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, event.Kind, err)
		}
	}

	return nil
}

func apply(trace *ExecutionTrace, e m.Event) error {
	switch e.Kind {
	case m.EventEnter:
		trace.EnterMethod(e.ClassName, e.MethodName, e.Caller)
	case m.EventExit:
		trace.ExitMethod(e.ClassName, e.MethodName)
	case m.EventBranch:
		return trace.BranchEvaluated(e.BranchID, e.InstructionID, e.TrueDistance, e.FalseDistance)
	case m.EventLine:
		trace.LineReached(e.ClassName, e.MethodName, e.Line)
	case m.EventDefinition:
		return trace.DefinitionReached(e.Caller, e.DefUseID)
	case m.EventUse:
		return trace.UseReached(e.Caller, e.DefUseID)
	case m.EventReturn:
		trace.ReturnValueObserved(e.ClassName, e.MethodName, e.Value)
	case m.EventMutant:
		return trace.MutantTouched(e.MutantID, e.Distance)
	default:
		contractViolationsTotal.WithLabelValues("replay").Inc()
		return fmt.Errorf("%w: unknown event kind %q", ErrContractViolation, e.Kind)
	}

	return nil
}
