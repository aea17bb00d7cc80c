package domain

import (
	"context"
	"fmt"
	"sort"

	"gooze.dev/pkg/covtrace/internal/adapter"
	m "gooze.dev/pkg/covtrace/internal/model"
)

// DefUseGoal asks for Use to execute while Definition is its reaching
// definition on the same object.
type DefUseGoal struct {
	Definition m.DefUse
	Use        m.DefUse
}

// Covered implements Goal.
func (g DefUseGoal) Covered(trace *ExecutionTrace) bool {
	defs := trace.PassedDefinitions(g.Definition.Variable)
	uses := trace.PassedUses(g.Use.Variable)

	for objectID, entries := range uses {
		for counter, useID := range entries {
			if useID != g.Use.ID {
				continue
			}

			if defID, ok := reachingDefinition(defs[objectID], counter); ok && defID == g.Definition.ID {
				return true
			}
		}
	}

	return false
}

// Fitness implements Goal.
//
// Goals whose definition never ran score in [0.5, 1] by the distance to the
// definition's control branch. Otherwise the score is in [0, 0.5) by the best
// distance to the use's control branch inside any window in which the
// definition was live.
func (g DefUseGoal) Fitness(trace *ExecutionTrace) float64 {
	if g.Covered(trace) {
		return 0
	}

	windows := liveWindows(trace.PassedDefinitions(g.Definition.Variable), g.Definition.ID, trace.Counter())
	if len(windows) == 0 {
		return (1 + controlFitness(trace, g.Definition)) / 2
	}

	best := 1.0

	for _, w := range windows {
		view := trace
		if !g.Definition.Static {
			view = trace.ForObject(w.objectID)
		}

		sliced, err := view.InCounterRange(g.Use, true, w.start, w.end)
		if err != nil {
			continue
		}

		best = min(best, useDistance(sliced, g.Use))
	}

	return best / 2
}

func (g DefUseGoal) String() string {
	return fmt.Sprintf("%s: def %d -> use %d", g.Definition.Variable, g.Definition.ID, g.Use.ID)
}

// reachingDefinition returns the definition with the largest counter below
// counter.
func reachingDefinition(defs map[int]int, counter int) (int, bool) {
	best, id, found := -1, 0, false

	for c, defID := range defs {
		if c < counter && c > best {
			best, id, found = c, defID, true
		}
	}

	return id, found
}

type liveWindow struct {
	objectID   int
	start, end int
}

// liveWindows returns, per object, the counter ranges from each pass of defID up
// to the next definition of the same variable on that object. Positions carry
// the counter of the next def-use event, so the bound is inclusive.
func liveWindows(defs map[int]map[int]int, defID, traceCounter int) []liveWindow {
	var windows []liveWindow

	for objectID, entries := range defs {
		counters := make([]int, 0, len(entries))
		for c := range entries {
			counters = append(counters, c)
		}

		sort.Ints(counters)

		for i, c := range counters {
			if entries[c] != defID {
				continue
			}

			end := traceCounter
			if i+1 < len(counters) {
				end = counters[i+1]
			}

			windows = append(windows, liveWindow{objectID: objectID, start: c, end: end})
		}
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].objectID != windows[j].objectID {
			return windows[i].objectID < windows[j].objectID
		}

		return windows[i].start < windows[j].start
	})

	return windows
}

func controlFitness(trace *ExecutionTrace, du m.DefUse) float64 {
	if du.ControlBranch == nil {
		return 1
	}

	return BranchGoal{Branch: *du.ControlBranch, Value: du.ControlValue}.Fitness(trace)
}

// useDistance scans the sliced calls for evaluations of the use's control
// branch and returns the best normalised distance towards the use.
func useDistance(sliced *ExecutionTrace, use m.DefUse) float64 {
	if use.ControlBranch == nil {
		return 1
	}

	best := 1.0

	for _, call := range sliced.FinishedCalls() {
		for i, branchID := range call.BranchTrace {
			if branchID != use.ControlBranch.ID {
				continue
			}

			d := call.FalseDistanceTrace[i]
			if use.ControlValue {
				d = call.TrueDistanceTrace[i]
			}

			best = min(best, Normalize(d))
		}
	}

	return best
}

type defUseCriterion struct {
	pool adapter.DefUsePool
}

// NewDefUseCriterion builds the criterion with one goal per definition/use pair
// of the same variable and class.
func NewDefUseCriterion(pool adapter.DefUsePool) Criterion {
	return &defUseCriterion{pool: pool}
}

func (c *defUseCriterion) Name() string {
	return "defuse"
}

func (c *defUseCriterion) Goals(ctx context.Context) ([]Goal, error) {
	if c.pool == nil {
		return nil, fmt.Errorf("%w: def-use criterion without def-use pool", ErrContractViolation)
	}

	var goals []Goal

	uses := c.pool.Uses()

	for _, def := range c.pool.Definitions() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, use := range uses {
			if use.Variable == def.Variable && use.ClassName == def.ClassName {
				goals = append(goals, DefUseGoal{Definition: def, Use: use})
			}
		}
	}

	return goals, nil
}

func (c *defUseCriterion) Fitness(ctx context.Context, traces []*ExecutionTrace) (float64, error) {
	goals, err := c.Goals(ctx)
	if err != nil {
		return 0, err
	}

	return SuiteFitness(ctx, goals, traces)
}
