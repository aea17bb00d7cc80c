package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/covtrace/internal/adapter"
	"gooze.dev/pkg/covtrace/internal/controller"
	m "gooze.dev/pkg/covtrace/internal/model"
)

// NoObjectFilter disables the per-object projection in ReplayArgs.
const NoObjectFilter = -1

// WindowArgs selects a counter-range projection around a use.
type WindowArgs struct {
	UseID       int
	WantToCover bool
	Start       int
	End         int
}

// ReplayArgs describes one replay run.
type ReplayArgs struct {
	Scripts m.Path
	// Pool is the static analysis output; empty means no branches, mutants or
	// def-use sites are known.
	Pool m.Path
	// ObjectID additionally shows the ForObject projection of every trace.
	ObjectID int
	// Window additionally shows an InCounterRange projection of every trace.
	Window *WindowArgs
	// Variables whose def-use timeline is printed. "*" selects all.
	Variables []string
	// Output, when set, is the directory the per-script summaries are saved to.
	Output m.Path
}

// Workflow replays recorded executions and reports their traces.
type Workflow interface {
	Replay(ctx context.Context, args ReplayArgs) error
}

type workflow struct {
	adapter.ScriptSource
	adapter.PoolSource
	adapter.SummaryStore
	controller.UI
	config Config
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	scripts adapter.ScriptSource,
	pools adapter.PoolSource,
	store adapter.SummaryStore,
	ui controller.UI,
	cfg Config,
) Workflow {
	return &workflow{
		ScriptSource: scripts,
		PoolSource:   pools,
		SummaryStore: store,
		UI:           ui,
		config:       cfg,
	}
}

func (w *workflow) Replay(ctx context.Context, args ReplayArgs) error {
	pool, err := w.loadPool(args.Pool)
	if err != nil {
		return err
	}

	traces, err := NewTracePool(w.config, pool)
	if err != nil {
		return err
	}

	scripts, err := w.ScriptSource.Load(args.Scripts)
	if err != nil {
		return fmt.Errorf("load scripts: %w", err)
	}

	slog.Info("Replaying scripts", "path", args.Scripts, "count", len(scripts))

	criteria := []Criterion{
		NewBranchCriterion(pool),
		NewMutationCriterion(pool),
		NewDefUseCriterion(pool),
	}

	executed := make([]*ExecutionTrace, 0, len(scripts))
	summaries := make([]m.Summary, 0, len(scripts))

	defer func() {
		for _, trace := range executed {
			traces.Put(trace)
		}
	}()

	for i, script := range scripts {
		name := script.Name
		if name == "" {
			name = fmt.Sprintf("script-%d", i)
		}

		trace := traces.Get()
		executed = append(executed, trace)

		if err := Replay(ctx, trace, script.Events); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return err
			}

			slog.Warn("Replay failed", "script", name, "trace", trace.ID(), "error", err)
			w.DisplayError(ctx, name, err)
		}

		summary, err := w.report(ctx, name, trace, pool, criteria, args)
		if err != nil {
			return err
		}

		summaries = append(summaries, summary)
	}

	fitness, err := EvaluateAll(ctx, criteria, executed)
	if err != nil {
		return err
	}

	w.DisplaySuiteFitness(ctx, len(executed), fitness)

	if args.Output != "" {
		if err := w.SaveSummaries(args.Output, summaries); err != nil {
			return fmt.Errorf("save summaries: %w", err)
		}
	}

	return nil
}

func (w *workflow) loadPool(path m.Path) (*adapter.StaticPool, error) {
	if path == "" {
		return adapter.NewStaticPool(), nil
	}

	pool, err := w.PoolSource.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load pool: %w", err)
	}

	return pool, nil
}

func (w *workflow) report(
	ctx context.Context,
	name string,
	trace *ExecutionTrace,
	pool adapter.DefUsePool,
	criteria []Criterion,
	args ReplayArgs,
) (m.Summary, error) {
	fitness, err := EvaluateAll(ctx, criteria, []*ExecutionTrace{trace})
	if err != nil {
		return m.Summary{}, err
	}

	summary := trace.Summary(name)
	summary.Fitness = fitness

	if err := w.DisplaySummary(ctx, summary); err != nil {
		return m.Summary{}, err
	}

	if args.ObjectID != NoObjectFilter {
		label := fmt.Sprintf("%s [object %d]", name, args.ObjectID)
		if err := w.DisplaySummary(ctx, trace.ForObject(args.ObjectID).Summary(label)); err != nil {
			return m.Summary{}, err
		}
	}

	if args.Window != nil {
		w.reportWindow(ctx, name, trace, pool, *args.Window)
	}

	for _, variable := range w.variables(trace, args.Variables) {
		w.DisplayDefUse(ctx, variable, trace.DefUseReport(variable))
	}

	return summary, nil
}

func (w *workflow) reportWindow(ctx context.Context, name string, trace *ExecutionTrace, pool adapter.DefUsePool, window WindowArgs) {
	use, ok := pool.Use(window.UseID)
	if !ok {
		w.DisplayError(ctx, name, fmt.Errorf("%w: use %d", ErrUnknownDefUse, window.UseID))
		return
	}

	sliced, err := trace.InCounterRange(use, window.WantToCover, window.Start, window.End)
	if err != nil {
		w.DisplayError(ctx, name, err)
		return
	}

	label := fmt.Sprintf("%s [use %d, counters %d..%d]", name, window.UseID, window.Start, window.End)
	if err := w.DisplaySummary(ctx, sliced.Summary(label)); err != nil {
		slog.Warn("Failed to display window", "script", name, "error", err)
	}
}

func (w *workflow) variables(trace *ExecutionTrace, requested []string) []string {
	for _, v := range requested {
		if v == "*" {
			return trace.Variables()
		}
	}

	return requested
}
